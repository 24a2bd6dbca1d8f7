package bot

import (
	"rook-game/internal/game"
	"rook-game/internal/shared"
)

// Fallback returns the plainest legal action for the seat: pass, continue,
// the first card that may go, the first color, or the first legal card.
// Callers use it when a brain's choice was refused so a table never stalls.
func Fallback(v game.View) (game.Action, bool) {
	owner := v.Seat == v.WidowOwner
	switch v.Phase {
	case game.PhaseBidding:
		if v.CurrentBidder == v.Seat {
			return game.Pass(), true
		}
	case game.PhaseReveal:
		if v.CanContinue {
			return game.ContinueToDiscard(), true
		}
	case game.PhaseDiscard:
		if !owner {
			break
		}
		for _, c := range v.Hand {
			if !c.Wild {
				return game.Discard(c), true
			}
		}
	case game.PhaseTrump:
		if owner {
			return game.ChooseTrump(shared.Colors[0]), true
		}
	case game.PhasePlay:
		if v.CurrentPlayer != v.Seat {
			break
		}
		if v.MustCallColor {
			return game.CallColor(shared.Colors[0]), true
		}
		if len(v.LegalCards) > 0 {
			return game.PlayCard(v.LegalCards[0]), true
		}
	}
	return game.Action{}, false
}
