package match

import "unicode/utf8"

// Distance returns the Levenshtein edit distance between a and b, counted
// in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// row[j] is the distance between the prefix of ra seen so far and rb[:j].
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i, ca := range ra {
		diag := row[0]
		row[0] = i + 1

		for j, cb := range rb {
			up := row[j+1]

			sub := diag
			if ca != cb {
				sub++
			}

			row[j+1] = min(up+1, row[j]+1, sub)
			diag = up
		}
	}

	return row[len(rb)]
}

// Similarity maps Distance onto [0, 1]; 1 means equal strings.
func Similarity(a, b string) float64 {
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if n == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(n)
}
