package bot

import (
	"sort"

	"rook-game/internal/shared"
)

// suitStrength scores a color as a trump candidate: length, counters and
// the top card. With honors the 13 and 12 add a point each.
func suitStrength(hand []shared.Card, color shared.Color, honors bool) int {
	cards := shared.OfColor(hand, color)
	score := len(cards) * 2
	for _, c := range cards {
		if c.Rank >= 10 {
			score += 2
		}
	}
	if shared.Contains(cards, shared.NewCard(color, 14)) {
		score += 3
	}
	if honors {
		if shared.Contains(cards, shared.NewCard(color, 13)) {
			score++
		}
		if shared.Contains(cards, shared.NewCard(color, 12)) {
			score++
		}
	}
	return score
}

// bestSuitStrength is the strongest suitStrength across the colors.
func bestSuitStrength(hand []shared.Card) int {
	best := 0
	for _, color := range shared.Colors {
		if s := suitStrength(hand, color, false); s > best {
			best = s
		}
	}
	return best
}

// rankColors orders the colors by score, best first. Ties keep deck order.
func rankColors(score func(shared.Color) int) []shared.Color {
	ranked := append([]shared.Color(nil), shared.Colors...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	return ranked
}

// byCount ranks colors by how many cards of each the hand holds.
func byCount(hand []shared.Card) []shared.Color {
	counts := shared.CountColors(hand)
	return rankColors(func(c shared.Color) int { return counts[c] })
}

func withoutRook(cards []shared.Card) []shared.Card {
	out := make([]shared.Card, 0, len(cards))
	for _, c := range cards {
		if !c.Wild {
			out = append(out, c)
		}
	}
	shared.SortByRank(out)
	return out
}

func ofColor(cards []shared.Card, color shared.Color) []shared.Card {
	var out []shared.Card
	for _, c := range cards {
		if !c.Wild && c.Color == color {
			out = append(out, c)
		}
	}
	return out
}

// winningSeat returns the seat currently taking the trick, or -1.
func winningSeat(v viewTrick) int {
	idx := shared.WinningIndex(v.cards, v.trump, v.led)
	if idx < 0 {
		return -1
	}
	return v.cards[idx].Seat
}

// viewTrick is the part of a View the play heuristics look at.
type viewTrick struct {
	seat  int
	cards []shared.PlayedCard
	trump shared.Color
	led   shared.Color
}

// wins reports whether card would take the trick if played now.
func (t viewTrick) wins(card shared.Card) bool {
	cards := make([]shared.PlayedCard, len(t.cards), len(t.cards)+1)
	copy(cards, t.cards)
	cards = append(cards, shared.PlayedCard{Card: card, Seat: t.seat})
	return shared.WinningIndex(cards, t.trump, t.led) == len(cards)-1
}

// cheapestWinner returns the first card in candidates that would win.
// Candidates are expected lowest first.
func (t viewTrick) cheapestWinner(candidates []shared.Card) (shared.Card, bool) {
	for _, c := range candidates {
		if t.wins(c) {
			return c, true
		}
	}
	return shared.Card{}, false
}

func (t viewTrick) partnerWinning() bool {
	return len(t.cards) > 0 && winningSeat(t) == shared.Partner(t.seat)
}
