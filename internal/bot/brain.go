package bot

import (
	"fmt"
	"math/rand/v2"

	"rook-game/internal/game"
)

// Brain picks an action for a seat from what that seat can see.
type Brain interface {
	// Decide returns a legal action for the seat, or false when the seat has
	// nothing to do right now.
	Decide(v game.View) (game.Action, bool)
	Difficulty() Difficulty
}

// NewBrain creates a heuristic brain for the given tier. A nil rng gets a
// randomly seeded source.
func NewBrain(d Difficulty, rng *rand.Rand) (Brain, error) {
	tuning, ok := DefaultTuning[d]
	if !ok {
		return nil, fmt.Errorf("unknown bot difficulty: %q", d)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &heuristic{difficulty: d, tuning: tuning, rng: rng}, nil
}

type heuristic struct {
	difficulty Difficulty
	tuning     Tuning
	rng        *rand.Rand
}

func (h *heuristic) Difficulty() Difficulty {
	return h.difficulty
}

func (h *heuristic) Decide(v game.View) (game.Action, bool) {
	owner := v.Seat == v.WidowOwner
	switch v.Phase {
	case game.PhaseBidding:
		if v.CurrentBidder != v.Seat {
			return game.Action{}, false
		}
		return h.chooseBid(v), true
	case game.PhaseReveal:
		if !owner {
			return game.Action{}, false
		}
		return game.ContinueToDiscard(), true
	case game.PhaseDiscard:
		if !owner || len(v.Hand) == 0 {
			return game.Action{}, false
		}
		return game.Discard(h.chooseDiscard(v)), true
	case game.PhaseTrump:
		if !owner {
			return game.Action{}, false
		}
		return game.ChooseTrump(h.chooseTrump(v)), true
	case game.PhasePlay:
		if v.CurrentPlayer != v.Seat {
			return game.Action{}, false
		}
		if v.MustCallColor {
			return game.CallColor(h.chooseColor(v)), true
		}
		if len(v.LegalCards) == 0 {
			return game.Action{}, false
		}
		return game.PlayCard(h.choosePlay(v)), true
	}
	return game.Action{}, false
}

func (h *heuristic) chance(p float64) bool {
	return p > 0 && h.rng.Float64() < p
}
