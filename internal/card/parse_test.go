package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/baralho/internal/apperrors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Card
		hasError bool
	}{
		{name: "Bracketed", input: "<Q de espadas>", expected: Card{Rank: Queen, Suit: Espadas}},
		{name: "Bare", input: "10 de ouros", expected: Card{Rank: Rank10, Suit: Ouros}},
		{name: "Case insensitive", input: " a de COPAS ", expected: Card{Rank: Ace, Suit: Copas}},
		{name: "Missing suit", input: "K", hasError: true},
		{name: "Unknown rank", input: "1 de paus", hasError: true},
		{name: "Unknown suit", input: "K de hearts", hasError: true},
		{name: "Empty", input: "", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse(tt.input)
			if tt.hasError {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParse_RoundTripsEveryCard(t *testing.T) {
	t.Parallel()

	for _, c := range NewDeck().Cards() {
		got, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
