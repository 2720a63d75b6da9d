package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card     Card
		expected string
	}{
		{Card{Rank: Ace, Suit: Copas}, "<A de copas>"},
		{Card{Rank: Rank10, Suit: Ouros}, "<10 de ouros>"},
		{Card{Rank: Queen, Suit: Espadas}, "<Q de espadas>"},
		{Card{Rank: King, Suit: Paus}, "<K de paus>"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.card.String())
		})
	}
}

func TestRankAndSuit_UnknownValues(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Rank(0).String())
	assert.Empty(t, Rank(14).String())
	assert.Empty(t, Suit(9).String())
}

func TestSuit_IsRed(t *testing.T) {
	t.Parallel()

	assert.True(t, Copas.IsRed())
	assert.True(t, Ouros.IsRed())
	assert.False(t, Espadas.IsRed())
	assert.False(t, Paus.IsRed())
}

func TestRanks(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, 13)
	for _, r := range Ranks() {
		names = append(names, r.String())
	}
	assert.Equal(t, []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}, names)
}

func TestSuits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Suit{Copas, Ouros, Espadas, Paus}, Suits())
}

func TestSuit_Symbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "♥", Copas.Symbol())
	assert.Equal(t, "♦", Ouros.Symbol())
	assert.Equal(t, "♠", Espadas.Symbol())
	assert.Equal(t, "♣", Paus.Symbol())
	assert.Empty(t, Suit(-1).Symbol())
}
