package card

import "github.com/palemoky/baralho/internal/sequence"

// DeckSize 一副牌的张数
const DeckSize = 52

// Deck 定义一副牌，支持按位置或区间读取以及按位置替换
type Deck struct {
	sequence.List[Card]
}

// NewDeck builds the 52 cards suit by suit, ranks A..K within each suit.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{List: *sequence.Of(cards...)}
}

// Cards returns a copy of the cards in their current order.
func (d *Deck) Cards() []Card {
	return d.Values()
}
