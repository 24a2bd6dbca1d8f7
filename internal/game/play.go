package game

import (
	"rook-game/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (g *Game) handlePlayCard(seat int, a Action) Result {
	r := g.r
	if seat != g.CurrentPlayer() {
		return reject(ErrNotYourTurn)
	}
	if r.trick.AwaitingColor() {
		return reject(ErrAwaitingColorCall)
	}
	if !a.Card.Valid() {
		return reject(ErrInvalidCard)
	}
	hand := r.hands[seat]
	if !shared.Contains(hand, a.Card) {
		return reject(ErrCardNotInHand)
	}
	if !IsLegalPlay(hand, &r.trick, a.Card) {
		return reject(ErrMustFollowSuit)
	}

	r.hands[seat], _ = shared.RemoveCard(hand, a.Card)
	r.trick.AddCard(a.Card, seat)

	// A led Rook holds the trick until its color is called.
	if r.trick.AwaitingColor() {
		return applied()
	}
	if r.trick.Len() == shared.NumSeats {
		g.finishTrick()
	}
	return applied()
}

func (g *Game) handleCallColor(seat int, a Action) Result {
	r := g.r
	if !r.trick.AwaitingColor() {
		return reject(ErrNoColorCallPending)
	}
	if seat != r.trick.Cards[0].Seat {
		return reject(ErrNotYourTurn)
	}
	if !a.Color.Valid() {
		return reject(ErrInvalidColor)
	}
	r.trick.CalledColor = a.Color
	g.logger.Debug("rook color called", zap.Int("seat", seat), zap.String("color", string(a.Color)))
	return applied()
}

// IsLegalPlay applies the follow-suit rule: holding the led color forces it,
// except that the Rook may always be played.
func IsLegalPlay(hand []shared.Card, trick *shared.Trick, card shared.Card) bool {
	if trick.Len() == 0 || card.Wild {
		return true
	}
	led := trick.LedColor()
	if card.Color == led {
		return true
	}
	return !shared.HasColor(hand, led)
}

// LegalCards returns the cards in hand that may be played to the trick.
func LegalCards(hand []shared.Card, trick *shared.Trick) []shared.Card {
	if trick.AwaitingColor() {
		return nil
	}
	var out []shared.Card
	for _, c := range hand {
		if IsLegalPlay(hand, trick, c) {
			out = append(out, c)
		}
	}
	return out
}

// finishTrick resolves a full trick and scores the hand after the last one.
func (g *Game) finishTrick() {
	r := g.r
	winner := r.trick.DetermineWinner(r.trump)
	team := shared.TeamOf(winner)

	for _, pc := range r.trick.Cards {
		r.captured[team] = append(r.captured[team], pc.Card)
	}
	r.tricksWon[team]++
	r.lastTrick = append([]shared.PlayedCard(nil), r.trick.Cards...)
	r.lastWinner = winner
	r.trickLeader = winner
	r.trick = shared.Trick{}

	g.logger.Debug("trick won", zap.Int("seat", winner), zap.Stringer("team", team))

	for _, h := range r.hands {
		if len(h) > 0 {
			return
		}
	}
	g.scoreHand()
}

func (g *Game) scoreHand() {
	r := g.r
	totals, res := shared.ScoreHand(g.rules, g.scores, shared.HandTally{
		HandNumber: g.handNumber,
		Bidder:     r.widowOwner,
		Bid:        r.highBid,
		Trump:      r.trump,
		Captured:   r.captured,
		Discarded:  r.discarded,
	})
	g.scores = totals
	r.result = &res
	g.history = append(g.history, res)
	g.phase = PhaseScore

	g.logger.Info("hand scored",
		zap.Int("hand", g.handNumber),
		zap.Stringer("bidding_team", res.BiddingTeam),
		zap.Int("bid", res.BidAmount),
		zap.Ints("points", res.TeamPoints[:]),
		zap.Bool("made", res.Made),
		zap.Ints("totals", totals[:]))

	if out, over := shared.CheckMatchEnd(g.rules, totals); over {
		g.outcome = &out
		g.phase = PhaseGameOver
		g.logger.Info("match over",
			zap.Bool("tie", out.Tie),
			zap.Stringer("winner", out.Winner),
			zap.Ints("final", out.Final[:]))
	}
}

func (g *Game) handleDealAgain(_ int, _ Action) Result {
	if g.phase == PhaseGameOver {
		g.ID = uuid.NewString()
		g.scores = [2]int{}
		g.history = nil
		g.outcome = nil
		g.handNumber = 1
		g.logger.Info("new match", zap.String("new_game_id", g.ID))
	} else {
		g.handNumber++
	}
	g.startHand()
	return applied()
}
