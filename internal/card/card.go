// Package card models the French-suited 52 card deck used to demonstrate the
// sequence protocol.
package card

import "fmt"

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// Card 定义一张牌
type Card struct {
	Rank Rank
	Suit Suit
}

// 花色顺序即发牌顺序
const (
	Copas   Suit = iota // hearts
	Ouros               // diamonds
	Espadas             // spades
	Paus                // clubs
)

// suitNames 花色名称映射表
var suitNames = map[Suit]string{
	Copas:   "copas",
	Ouros:   "ouros",
	Espadas: "espadas",
	Paus:    "paus",
}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Copas:   "♥",
	Ouros:   "♦",
	Espadas: "♠",
	Paus:    "♣",
}

// Symbol returns the suit glyph used in compact displays.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return ""
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Copas || s == Ouros
}

const (
	Ace Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	Jack
	Queen
	King
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Ace:    "A",
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	Jack:   "J",
	Queen:  "Q",
	King:   "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return ""
}

// Suits returns the four suits in deck order.
func Suits() []Suit {
	return []Suit{Copas, Ouros, Espadas, Paus}
}

// Ranks returns the thirteen ranks in deck order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, King)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// String renders the card as <rank de suit>, e.g. <A de copas>.
func (c Card) String() string {
	return fmt.Sprintf("<%s de %s>", c.Rank, c.Suit)
}
