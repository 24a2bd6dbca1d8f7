package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardPoints(t *testing.T) {
	robinson := RobinsonRules()
	classic := ClassicRules()

	tests := []struct {
		card     Card
		robinson int
		classic  int
	}{
		{NewCard(Red, 5), 5, 5},
		{NewCard(Red, 10), 10, 10},
		{NewCard(Black, 14), 10, 10},
		{NewCard(Green, 13), 0, 0},
		{NewCard(Yellow, 6), 0, 0},
		{Rook, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.card.String(), func(t *testing.T) {
			assert.Equal(t, tt.robinson, robinson.CardPoints(tt.card))
			assert.Equal(t, tt.classic, classic.CardPoints(tt.card))
		})
	}

	assert.Equal(t, 100, PointsOf(robinson, NewDeck().Cards))
	assert.Equal(t, 120, PointsOf(classic, NewDeck().Cards))
}

// cardsWorth builds a pile of exactly pts points out of 5s, 10s and 14s.
func cardsWorth(t *testing.T, pts int) []Card {
	t.Helper()
	var pile []Card
	for _, c := range NewDeck().Cards {
		if pts == 0 {
			break
		}
		p := RobinsonRules().CardPoints(c)
		if p > 0 && p <= pts {
			pile = append(pile, c)
			pts -= p
		}
	}
	require.Zero(t, pts)
	return pile
}

func TestScoreHandSetPenaltyIsFullBid(t *testing.T) {
	rules := RobinsonRules()
	tally := HandTally{
		Bidder:   1,
		Bid:      70,
		Captured: [2][]Card{TeamA: cardsWorth(t, 35), TeamB: cardsWorth(t, 65)},
	}

	totals, res := ScoreHand(rules, [2]int{100, 100}, tally)
	assert.False(t, res.Made)
	assert.Equal(t, 65, res.TeamPoints[TeamB])
	assert.Equal(t, [2]int{35, -70}, res.Delta)
	assert.Equal(t, [2]int{135, 30}, totals)
	assert.Equal(t, totals, res.TotalsAfter)
}

func TestScoreHandDiscardsGoToBidders(t *testing.T) {
	rules := RobinsonRules()
	tally := HandTally{
		Bidder:    2,
		Bid:       60,
		Captured:  [2][]Card{TeamA: cardsWorth(t, 45), TeamB: cardsWorth(t, 40)},
		Discarded: []Card{NewCard(Red, 5), NewCard(Red, 10), NewCard(Red, 6)},
	}

	totals, res := ScoreHand(rules, [2]int{}, tally)
	assert.True(t, res.Made)
	assert.Equal(t, TeamA, res.BiddingTeam)
	assert.Equal(t, 15, res.DiscardPoints)
	assert.Equal(t, [2]int{60, 40}, res.TeamPoints)
	assert.Equal(t, [2]int{60, 40}, totals)
}

func TestCheckMatchEnd(t *testing.T) {
	rules := RobinsonRules()

	tests := []struct {
		name   string
		totals [2]int
		over   bool
		want   MatchOutcome
	}{
		{"neither over", [2]int{499, 320}, false, MatchOutcome{}},
		{"team a crosses", [2]int{505, 320}, true, MatchOutcome{Winner: TeamA, Final: [2]int{505, 320}}},
		{"team b crosses", [2]int{300, 500}, true, MatchOutcome{Winner: TeamB, Final: [2]int{300, 500}}},
		{"both cross, higher wins", [2]int{510, 540}, true, MatchOutcome{Winner: TeamB, Final: [2]int{510, 540}}},
		{"both cross equal is a tie", [2]int{520, 520}, true, MatchOutcome{Tie: true, Final: [2]int{520, 520}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, over := CheckMatchEnd(rules, tt.totals)
			assert.Equal(t, tt.over, over)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRulesetBids(t *testing.T) {
	r := ClassicRules()
	assert.True(t, r.ValidBid(70, 0))
	assert.False(t, r.ValidBid(65, 0), "below opening minimum")
	assert.False(t, r.ValidBid(72, 0), "not a multiple of the increment")
	assert.False(t, r.ValidBid(75, 75), "must exceed the high bid")
	assert.True(t, r.ValidBid(80, 75))
	assert.False(t, r.ValidBid(125, 75), "over the maximum")
	assert.Equal(t, 70, r.NextMinimumBid(0))
	assert.Equal(t, 80, r.NextMinimumBid(75))

	require.NoError(t, RobinsonRules().Validate())
	bad := r
	bad.BidIncrement = 0
	bad.MaxBid = 10
	assert.Error(t, bad.Validate())

	_, err := RulesFor("bogus")
	assert.Error(t, err)
	got, err := RulesFor("Classic")
	require.NoError(t, err)
	assert.Equal(t, ClassicRules(), got)
}
