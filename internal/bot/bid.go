package bot

import (
	"math"

	"rook-game/internal/game"
	"rook-game/internal/shared"
)

// Thresholds in Tuning are written against a 120 point hand.
const referencePot = 120

func (h *heuristic) chooseBid(v game.View) game.Action {
	rules := v.Rules
	t := h.tuning

	points := shared.PointsOf(rules, v.Hand)
	weak := t.WeakHand * pot(rules) / referencePot
	if points < weak && h.chance(t.WeakPassChance) {
		return game.Pass()
	}
	if h.chance(t.PassAnyChance) {
		return game.Pass()
	}

	if next := v.MinimumBid; next <= rules.MaxBid && next <= h.estimate(v.Hand, rules) {
		return game.Bid(next)
	}
	return game.Pass()
}

// estimate is the most the bot is willing to bid on this hand.
func (h *heuristic) estimate(hand []shared.Card, rules shared.Ruleset) int {
	t := h.tuning
	target := shared.PointsOf(rules, hand) + t.BidOffset
	if shared.HasRook(hand) {
		target += t.RookBonus
	}
	target += int(math.Round(float64(bestSuitStrength(hand)) * t.StrengthScale))

	inc := float64(rules.BidIncrement)
	target = int(math.Round(float64(target)/inc)) * rules.BidIncrement
	return max(rules.MinOpeningBid, min(rules.MaxBid, target))
}

func pot(rules shared.Ruleset) int {
	return shared.PointsOf(rules, shared.NewDeck().Cards)
}
