package card

import (
	"fmt"
	"strings"

	"github.com/palemoky/baralho/internal/apperrors"
)

// nameToRank 用于快速查找名称对应的 Rank
var nameToRank = func() map[string]Rank {
	m := make(map[string]Rank, len(rankNames))
	for r, name := range rankNames {
		m[name] = r
	}
	return m
}()

// nameToSuit 用于快速查找名称对应的 Suit
var nameToSuit = func() map[string]Suit {
	m := make(map[string]Suit, len(suitNames))
	for s, name := range suitNames {
		m[name] = s
	}
	return m
}()

// Parse reads a card written as "<Q de espadas>" or "Q de espadas". Rank and
// suit names are case-insensitive.
func Parse(s string) (Card, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(body, "<"), ">"))

	rankName, suitName, ok := strings.Cut(body, " de ")
	if !ok {
		return Card{}, fmt.Errorf("%q: %w", s, apperrors.ErrInvalidCard)
	}

	rank, ok := nameToRank[strings.ToUpper(strings.TrimSpace(rankName))]
	if !ok {
		return Card{}, fmt.Errorf("rank %q: %w", rankName, apperrors.ErrInvalidCard)
	}
	suit, ok := nameToSuit[strings.ToLower(strings.TrimSpace(suitName))]
	if !ok {
		return Card{}, fmt.Errorf("suit %q: %w", suitName, apperrors.ErrInvalidCard)
	}
	return Card{Rank: rank, Suit: suit}, nil
}
