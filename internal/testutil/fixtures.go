//go:build !production

package testutil

// Inputs used throughout the walkthroughs.
const (
	Word = "abacaxi"
	Text = "Python: simples e correta"
)

// WordCounts is the tally expected after including Word rune by rune.
var WordCounts = map[rune]int{'a': 3, 'b': 1, 'c': 1, 'x': 1, 'i': 1}
