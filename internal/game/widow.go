package game

import (
	"fmt"

	"rook-game/internal/shared"

	"go.uber.org/zap"
)

func (g *Game) handleContinue(seat int, _ Action) Result {
	r := g.r
	if seat != r.widowOwner && seat != g.host {
		return reject(ErrNotWidowOwner)
	}
	owner := r.widowOwner
	merged := make([]shared.Card, 0, len(r.hands[owner])+len(r.widow))
	merged = append(merged, r.hands[owner]...)
	merged = append(merged, r.widow...)
	r.hands[owner] = merged
	r.widow = nil
	g.phase = PhaseDiscard
	g.logger.Debug("widow taken", zap.Int("seat", owner), zap.Int("by", seat))
	return applied()
}

func (g *Game) handleDiscard(seat int, a Action) Result {
	r := g.r
	if seat != r.widowOwner {
		return reject(ErrNotWidowOwner)
	}
	if !a.Card.Valid() {
		return reject(ErrInvalidCard)
	}
	hand, ok := shared.RemoveCard(r.hands[seat], a.Card)
	if !ok {
		return reject(ErrCardNotInHand)
	}
	r.hands[seat] = hand
	r.discarded = append(r.discarded, a.Card)

	if len(r.discarded) == shared.WidowSize {
		g.phase = PhaseTrump
		g.logger.Debug("discard complete", zap.Int("seat", seat))
	}
	return applied()
}

func (g *Game) handleChooseTrump(seat int, a Action) Result {
	r := g.r
	if seat != r.widowOwner {
		return reject(ErrNotWidowOwner)
	}
	if !a.Color.Valid() {
		return reject(ErrInvalidColor)
	}
	r.trump = a.Color
	r.trickLeader = r.widowOwner
	r.trick = shared.Trick{}
	g.phase = PhasePlay
	g.logger.Info("trump chosen", zap.Int("seat", seat), zap.String("trump", string(a.Color)))
	return applied()
}

// handleCheck200 answers the widow owner's question about a prospective trump
// without touching state.
func (g *Game) handleCheck200(seat int, a Action) Result {
	r := g.r
	if seat != r.widowOwner {
		return reject(ErrNotWidowOwner)
	}
	if !a.Color.Valid() {
		return reject(ErrInvalidColor)
	}

	owner := r.hands[seat]
	partner := r.hands[shared.Partner(seat)]
	shutOut := CanShutOut(owner, partner, a.Color)
	perfect := IsPerfectHand(owner, a.Color)

	var notice string
	switch {
	case perfect:
		notice = fmt.Sprintf("Perfect hand: every trick can be taken with trump %s.", a.Color)
	case shutOut:
		notice = fmt.Sprintf("Opponents can be held to 0 points with trump %s.", a.Color)
	default:
		notice = fmt.Sprintf("Opponents may be able to score points with trump %s.", a.Color)
	}
	return Result{Notice: notice}
}

// CanShutOut reports a sufficient condition for holding the defenders to zero:
// the partnership holds the Rook, the 14 of every color and at least one trump.
func CanShutOut(owner, partner []shared.Card, trump shared.Color) bool {
	team := make([]shared.Card, 0, len(owner)+len(partner))
	team = append(team, owner...)
	team = append(team, partner...)

	if !shared.HasRook(team) || !shared.HasColor(team, trump) {
		return false
	}
	for _, color := range shared.Colors {
		if !shared.Contains(team, shared.NewCard(color, shared.MaxRank)) {
			return false
		}
	}
	return true
}

// IsPerfectHand reports whether a 9-card hand is unbeatable: the nine top
// trumps 6-14, or the Rook with the eight top trumps 7-14.
func IsPerfectHand(hand []shared.Card, trump shared.Color) bool {
	if len(hand) != shared.CardsPerPlayer {
		return false
	}
	low := 6
	if shared.HasRook(hand) {
		low = 7
	}
	for rank := low; rank <= shared.MaxRank; rank++ {
		if !shared.Contains(hand, shared.NewCard(trump, rank)) {
			return false
		}
	}
	return true
}
