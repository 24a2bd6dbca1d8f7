package game

import (
	"rook-game/internal/shared"

	"go.uber.org/zap"
)

type handler func(g *Game, seat int, a Action) Result

// handlers routes each (phase, action) pair. A pair missing from the table
// is not allowed in that phase.
var handlers = map[Phase]map[ActionKind]handler{
	PhaseBidding: {
		ActionBid: (*Game).handleBid,
	},
	PhaseReveal: {
		ActionContinue: (*Game).handleContinue,
	},
	PhaseDiscard: {
		ActionDiscard:  (*Game).handleDiscard,
		ActionCheck200: (*Game).handleCheck200,
	},
	PhaseTrump: {
		ActionChooseTrump: (*Game).handleChooseTrump,
		ActionCheck200:    (*Game).handleCheck200,
	},
	PhasePlay: {
		ActionPlayCard:  (*Game).handlePlayCard,
		ActionCallColor: (*Game).handleCallColor,
	},
	PhaseScore: {
		ActionDealAgain: (*Game).handleDealAgain,
	},
	PhaseGameOver: {
		ActionDealAgain: (*Game).handleDealAgain,
	},
}

var knownActions = map[ActionKind]bool{
	ActionBid:         true,
	ActionContinue:    true,
	ActionDiscard:     true,
	ActionChooseTrump: true,
	ActionCallColor:   true,
	ActionPlayCard:    true,
	ActionDealAgain:   true,
	ActionCheck200:    true,
}

// Dispatch applies an action from a seat. Invalid input of any kind leaves
// the game untouched and is reported through Result.Reason; it never panics.
func (g *Game) Dispatch(seat int, a Action) Result {
	var res Result
	switch {
	case seat < 0 || seat >= shared.NumSeats:
		res = reject(ErrInvalidSeat)
	case !knownActions[a.Kind]:
		res = reject(ErrUnknownAction)
	default:
		h, ok := handlers[g.phase][a.Kind]
		if !ok {
			res = reject(ErrWrongPhase)
		} else {
			res = h(g, seat, a)
		}
	}

	if res.Changed {
		g.version++
	}
	if res.Reason != nil {
		g.logger.Debug("action rejected",
			zap.Int("seat", seat),
			zap.String("action", string(a.Kind)),
			zap.String("phase", string(g.phase)),
			zap.Error(res.Reason))
	}
	return res
}
