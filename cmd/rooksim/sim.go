package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"rook-game/internal/bot"
	"rook-game/internal/game"
	"rook-game/internal/shared"

	"go.uber.org/zap"
)

// maxSteps bounds one match so a stuck table fails instead of spinning.
const maxSteps = 100000

var errStuck = errors.New("match did not finish")

type matchReport struct {
	Hands   []shared.HandResult
	Outcome shared.MatchOutcome
	Redeals int
}

// playMatch runs one bot-only match. Seats 0 and 2 use teamA, 1 and 3 teamB.
func playMatch(rules shared.Ruleset, teamA, teamB bot.Difficulty, seed uint64, logger *zap.Logger) (matchReport, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g, err := game.NewGame(rules, game.WithRand(rng), game.WithLogger(logger))
	if err != nil {
		return matchReport{}, err
	}

	var brains [shared.NumSeats]bot.Brain
	for i := range brains {
		d := teamA
		if shared.TeamOf(i) == shared.TeamB {
			d = teamB
		}
		if brains[i], err = bot.NewBrain(d, rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))); err != nil {
			return matchReport{}, err
		}
	}

	var report matchReport
	hand := g.HandNumber()
	for step := 0; step < maxSteps; step++ {
		switch g.Phase() {
		case game.PhaseGameOver:
			report.Hands = g.History()
			report.Outcome, _ = g.Outcome()
			return report, nil
		case game.PhaseScore:
			if res := g.Dispatch(0, game.DealAgain()); res.Rejected() {
				return report, res.Reason
			}
			hand = g.HandNumber()
			continue
		}

		seat, ok := g.SeatToAct()
		if !ok {
			return report, fmt.Errorf("no seat to act in phase %s", g.Phase())
		}
		a, ok := brains[seat].Decide(g.ViewFor(seat))
		if !ok {
			return report, fmt.Errorf("seat %d has no move in phase %s", seat, g.Phase())
		}
		if res := g.Dispatch(seat, a); res.Rejected() {
			return report, fmt.Errorf("seat %d %s: %w", seat, a.Kind, res.Reason)
		}
		// Three passes without a bid deal the same hand number again.
		if g.Phase() == game.PhaseBidding && a.Kind == game.ActionBid && a.Amount == nil && g.HandNumber() == hand && allOpen(g) {
			report.Redeals++
		}
	}
	return report, errStuck
}

// allOpen reports a freshly dealt bidding round.
func allOpen(g *game.Game) bool {
	v := g.ViewFor(-1)
	for i := range v.Passed {
		if v.Passed[i] || v.Bids[i] != nil {
			return false
		}
	}
	return true
}

type tally struct {
	Wins    [2]int
	Ties    int
	Hands   int
	Made    int
	Redeals int
	Points  [2]int
}

func (t *tally) add(r matchReport) {
	t.Hands += len(r.Hands)
	t.Redeals += r.Redeals
	for _, h := range r.Hands {
		if h.Made {
			t.Made++
		}
	}
	t.Points[0] += r.Outcome.Final[0]
	t.Points[1] += r.Outcome.Final[1]
	if r.Outcome.Tie {
		t.Ties++
		return
	}
	t.Wins[r.Outcome.Winner]++
}
