package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"join", "join", 0},
		{"", "drop", 4},
		{"eos", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"Join", "join", 1},
		{"joinver6", "joinver7", 1},
		{"authlogin", "authlogout", 3},
		{"teamsavesuccess", "teamloadsuccess", 4},
		{"größe", "grösse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"drop", "drop", 1},
		{"abc", "xyz", 0},
		{"kitten", "sitting", 1 - 3.0/7.0},
		{"playernew", "playername", 1 - 3.0/10.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 0.001)
		})
	}
}

func BenchmarkDistance(b *testing.B) {
	for b.Loop() {
		Distance("teamsavesuccess", "teamloadsuccess")
	}
}
