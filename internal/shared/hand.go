package shared

import "sort"

// RemoveCard removes the first card equal to card and returns the updated hand.
// The second result is false when the card was not held.
func RemoveCard(hand []Card, card Card) ([]Card, bool) {
	for i, c := range hand {
		if c == card {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			return append(out, hand[i+1:]...), true
		}
	}
	return hand, false
}

// Contains reports whether hand holds card.
func Contains(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

// HasColor reports whether hand holds at least one suited card of color.
func HasColor(hand []Card, color Color) bool {
	for _, c := range hand {
		if !c.Wild && c.Color == color {
			return true
		}
	}
	return false
}

// HasRook reports whether the Rook is in hand.
func HasRook(hand []Card) bool {
	return Contains(hand, Rook)
}

// OfColor returns the suited cards of color, lowest rank first.
func OfColor(hand []Card, color Color) []Card {
	var out []Card
	for _, c := range hand {
		if !c.Wild && c.Color == color {
			out = append(out, c)
		}
	}
	SortByRank(out)
	return out
}

// CountColors counts suited cards per color.
func CountColors(hand []Card) map[Color]int {
	counts := make(map[Color]int, len(Colors))
	for _, color := range Colors {
		counts[color] = 0
	}
	for _, c := range hand {
		if !c.Wild {
			counts[c.Color]++
		}
	}
	return counts
}

// SortByRank orders cards by ascending rank; the Rook sorts last.
func SortByRank(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].Wild != cards[j].Wild {
			return !cards[i].Wild
		}
		return cards[i].Rank < cards[j].Rank
	})
}

// SortForDisplay groups a hand by color in deck order, highest rank first,
// with the Rook at the end.
func SortForDisplay(hand []Card) {
	order := make(map[Color]int, len(Colors))
	for i, c := range Colors {
		order[c] = i
	}
	sort.SliceStable(hand, func(i, j int) bool {
		a, b := hand[i], hand[j]
		if a.Wild != b.Wild {
			return !a.Wild
		}
		if a.Color != b.Color {
			return order[a.Color] < order[b.Color]
		}
		return a.Rank > b.Rank
	})
}
