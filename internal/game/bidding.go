package game

import (
	"rook-game/internal/shared"

	"go.uber.org/zap"
)

func (g *Game) handleBid(seat int, a Action) Result {
	r := g.r
	if seat != r.currentBidder {
		return reject(ErrNotYourTurn)
	}
	if r.passed[seat] {
		return reject(ErrAlreadyPassed)
	}

	if a.Amount == nil {
		r.passed[seat] = true
		r.bids[seat] = nil
		g.logger.Debug("bid pass", zap.Int("seat", seat))
	} else {
		amount := *a.Amount
		if !g.rules.ValidBid(amount, r.highBid) {
			return reject(ErrInvalidBid)
		}
		r.bids[seat] = &amount
		r.highBid = amount
		r.highBidder = seat
		g.logger.Debug("bid", zap.Int("seat", seat), zap.Int("amount", amount))
	}

	g.advanceBidding()
	return applied()
}

// advanceBidding resolves the auction or moves to the next seat still in it.
func (g *Game) advanceBidding() {
	r := g.r
	active := 0
	for _, p := range r.passed {
		if !p {
			active++
		}
	}

	switch {
	case active <= 1 && r.highBidder < 0:
		g.logger.Info("no bids, redealing", zap.Int("hand", g.handNumber))
		g.startHand()
		return
	case active == 1:
		r.widowOwner = r.highBidder
		g.phase = PhaseReveal
		g.logger.Info("bidding won",
			zap.Int("seat", r.widowOwner),
			zap.Int("bid", r.highBid))
		return
	}

	next := (r.currentBidder + 1) % shared.NumSeats
	for r.passed[next] {
		next = (next + 1) % shared.NumSeats
	}
	r.currentBidder = next
}
