package match

import (
	"sort"
)

// Candidate is a known name ranked against a query.
type Candidate struct {
	Name string

	// Distance is the edit distance between the normalized names.
	Distance int
	// Score is the normalized similarity (0-1, higher is better).
	Score float64

	// Metadata for debugging/explanation
	NormalizedName  string
	NormalizedQuery string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Suggest ranks known names by similarity to query. Names are compared
// after NormalizeIdent, so "player_name" finds "PlayerName".
// Returns candidates sorted by score (descending).
func Suggest(query string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	queryNorm := NormalizeIdent(query)

	for _, name := range known {
		nameNorm := NormalizeIdent(name)

		candidates = append(candidates, Candidate{
			Name:            name,
			Distance:        Distance(queryNorm, nameNorm),
			Score:           Similarity(queryNorm, nameNorm),
			NormalizedName:  nameNorm,
			NormalizedQuery: queryNorm,
		})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// WithinDistance returns candidates at most maxDistance edits away.
func (c CandidateList) WithinDistance(maxDistance int) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Distance <= maxDistance {
			result = append(result, cand)
		}
	}

	return result
}

// DefaultMaxDistance is the largest edit distance still offered as a
// "did you mean" hint.
const DefaultMaxDistance = 3
