package bot

import (
	"sort"

	"rook-game/internal/game"
	"rook-game/internal/shared"
)

// chooseDiscard buries the cheapest card, keeping the Rook, the color that
// looks like trump and the counters for as long as it can.
func (h *heuristic) chooseDiscard(v game.View) shared.Card {
	t := h.tuning
	rules := v.Rules
	hand := append([]shared.Card(nil), v.Hand...)
	probableTrump := byCount(hand)[0]

	sort.SliceStable(hand, func(i, j int) bool {
		pi, pj := rules.CardPoints(hand[i]), rules.CardPoints(hand[j])
		if pi != pj {
			return pi < pj
		}
		return hand[i].Rank < hand[j].Rank
	})

	for _, c := range hand {
		if c.Wild {
			continue
		}
		if c.Color == probableTrump && v.DiscardCount < t.KeepTrumpDiscards {
			continue
		}
		if t.KeepCountersOnDeck && rules.CardPoints(c) >= 10 && len(hand) > 6 {
			continue
		}
		return c
	}
	for _, c := range hand {
		if !c.Wild {
			return c
		}
	}
	return hand[0]
}

func (h *heuristic) chooseTrump(v game.View) shared.Color {
	ranked := rankColors(func(c shared.Color) int {
		return suitStrength(v.Hand, c, h.tuning.HonorBonus)
	})
	if h.chance(h.tuning.TrumpRunnerUp) {
		return ranked[1]
	}
	return ranked[0]
}

// chooseColor names the color the bot is longest in after leading the Rook.
func (h *heuristic) chooseColor(v game.View) shared.Color {
	ranked := byCount(v.Hand)
	if h.chance(h.tuning.ColorRunnerUp) {
		return ranked[1]
	}
	return ranked[0]
}
