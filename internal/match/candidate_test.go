package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var surfaceNames = []string{"AuthLogin", "AuthLogout", "Join", "JoinVer6", "JoinVer7", "PlayerName", "PlayerNew"}

func TestSuggest(t *testing.T) {
	candidates := Suggest("player_name", surfaceNames)
	require.Len(t, candidates, len(surfaceNames))

	best := candidates.Best()
	require.NotNil(t, best)
	assert.Equal(t, "PlayerName", best.Name)
	assert.Equal(t, 0, best.Distance)
	assert.InDelta(t, 1.0, best.Score, 0.001)
	assert.Equal(t, "playername", best.NormalizedQuery)

	assert.Equal(t, "PlayerNew", candidates[1].Name)
}

func TestSuggest_Typo(t *testing.T) {
	candidates := Suggest("AuthLogn", surfaceNames).WithinDistance(DefaultMaxDistance)
	require.NotEmpty(t, candidates)
	assert.Equal(t, "AuthLogin", candidates[0].Name)

	for _, c := range candidates {
		assert.LessOrEqual(t, c.Distance, DefaultMaxDistance)
	}
}

func TestSuggest_Determinism(t *testing.T) {
	first := Suggest("JoinVer", surfaceNames)

	for range 10 {
		again := Suggest("JoinVer", surfaceNames)
		assert.Equal(t, first, again)
	}

	// JoinVer6 and JoinVer7 tie; the name breaks the tie.
	assert.Equal(t, "JoinVer6", first[0].Name)
	assert.Equal(t, "JoinVer7", first[1].Name)
}

func TestCandidateList_Best(t *testing.T) {
	assert.Nil(t, CandidateList(nil).Best())
	assert.Nil(t, Suggest("Zzzzzzzzzz", surfaceNames).WithinDistance(DefaultMaxDistance).Best())
}
