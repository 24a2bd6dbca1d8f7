package shared

import "fmt"

// Color represents the suit of a card (Black, Red, Green, Yellow).
type Color string

const (
	Black  Color = "Black"
	Red    Color = "Red"
	Green  Color = "Green"
	Yellow Color = "Yellow"
)

// Colors lists the four suits in deck order.
var Colors = []Color{Black, Red, Green, Yellow}

// Valid reports whether c is one of the four playable colors.
func (c Color) Valid() bool {
	switch c {
	case Black, Red, Green, Yellow:
		return true
	}
	return false
}

const (
	MinRank = 5
	MaxRank = 14
)

// Card represents a single card. The Rook is the only card with Wild set;
// it carries no color and no rank. Cards are compared by value.
type Card struct {
	Color Color `json:"color,omitempty"`
	Rank  int   `json:"rank,omitempty"`
	Wild  bool  `json:"wild,omitempty"`
}

// Rook is the wild card.
var Rook = Card{Wild: true}

// NewCard builds a suited card.
func NewCard(color Color, rank int) Card {
	return Card{Color: color, Rank: rank}
}

// Valid reports whether the card exists in the deck.
func (c Card) Valid() bool {
	if c.Wild {
		return c.Color == "" && c.Rank == 0
	}
	return c.Color.Valid() && c.Rank >= MinRank && c.Rank <= MaxRank
}

func (c Card) String() string {
	if c.Wild {
		return "Rook"
	}
	return fmt.Sprintf("%s %d", c.Color, c.Rank)
}
