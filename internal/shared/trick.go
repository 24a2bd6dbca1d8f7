package shared

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat int  `json:"seat"`
}

// Trick represents the cards on the table for the current trick.
type Trick struct {
	Cards []PlayedCard `json:"cards"`
	// CalledColor is set when the Rook was led and its player named a color.
	CalledColor Color `json:"called_color,omitempty"`
}

// AddCard appends a play to the trick.
func (t *Trick) AddCard(card Card, seat int) {
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: seat})
}

// Len returns the number of cards played so far.
func (t *Trick) Len() int {
	return len(t.Cards)
}

// RookLed reports whether the first card of the trick is the Rook.
func (t *Trick) RookLed() bool {
	return len(t.Cards) > 0 && t.Cards[0].Card.Wild
}

// AwaitingColor reports whether the leader played the Rook and has not yet called a color.
func (t *Trick) AwaitingColor() bool {
	return t.RookLed() && t.CalledColor == ""
}

// LedColor derives the suit players must follow. It is empty for an empty
// trick or while a led Rook awaits its color call.
func (t *Trick) LedColor() Color {
	if len(t.Cards) == 0 {
		return ""
	}
	if t.RookLed() {
		return t.CalledColor
	}
	return t.Cards[0].Card.Color
}

// Points sums the card points of the trick under the given ruleset.
func (t *Trick) Points(rules Ruleset) int {
	total := 0
	for _, pc := range t.Cards {
		total += rules.CardPoints(pc.Card)
	}
	return total
}

// WinningIndex returns the index into cards of the entry currently winning,
// or -1 for an empty slice. It accepts partial tricks.
//
// The Rook beats everything. Otherwise each entry is compared against the
// running winner: trump beats non-trump, the led color beats an off-color
// non-trump winner, and within a color the higher rank wins.
func WinningIndex(cards []PlayedCard, trump, led Color) int {
	if len(cards) == 0 {
		return -1
	}
	for i, pc := range cards {
		if pc.Card.Wild {
			return i
		}
	}

	best := 0
	for i := 1; i < len(cards); i++ {
		cand := cards[i].Card
		win := cards[best].Card
		winTrump := trump != "" && win.Color == trump

		switch {
		case trump != "" && cand.Color == trump && !winTrump:
			best = i
		case !winTrump && cand.Color == led && win.Color != led:
			best = i
		case cand.Color == win.Color && cand.Rank > win.Rank:
			best = i
		}
	}
	return best
}

// DetermineWinner returns the seat that wins the trick, or -1 if it is empty.
func (t *Trick) DetermineWinner(trump Color) int {
	idx := WinningIndex(t.Cards, trump, t.LedColor())
	if idx < 0 {
		return -1
	}
	return t.Cards[idx].Seat
}
