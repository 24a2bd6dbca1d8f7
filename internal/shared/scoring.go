package shared

// HandResult is the immutable summary of a scored hand.
type HandResult struct {
	HandNumber    int    `json:"hand_number"`
	BiddingTeam   Team   `json:"bidding_team"`
	Bidder        int    `json:"bidder"`
	BidAmount     int    `json:"bid_amount"`
	Trump         Color  `json:"trump"`
	TeamPoints    [2]int `json:"team_points"`
	DiscardPoints int    `json:"discard_points"`
	Made          bool   `json:"made"`
	Delta         [2]int `json:"delta"`
	TotalsAfter   [2]int `json:"totals_after"`
}

// MatchOutcome records how a match ended.
type MatchOutcome struct {
	Tie    bool   `json:"tie"`
	Winner Team   `json:"winner"`
	Final  [2]int `json:"final"`
}

// HandTally is the input to hand scoring.
type HandTally struct {
	HandNumber int
	Bidder     int
	Bid        int
	Trump      Color
	Captured   [2][]Card
	Discarded  []Card
}

// PointsOf sums the card points in cards.
func PointsOf(rules Ruleset, cards []Card) int {
	total := 0
	for _, c := range cards {
		total += rules.CardPoints(c)
	}
	return total
}

// ScoreHand applies a finished hand to the cumulative totals and returns the
// new totals with the hand's record.
//
// Discards always count for the bidding team. A bidding team that falls short
// loses its full bid; the defenders keep whatever they took.
func ScoreHand(rules Ruleset, totals [2]int, tally HandTally) ([2]int, HandResult) {
	bidding := TeamOf(tally.Bidder)
	defending := bidding.Other()

	var points [2]int
	for _, t := range Teams {
		points[t] = PointsOf(rules, tally.Captured[t])
	}
	discardPts := PointsOf(rules, tally.Discarded)
	points[bidding] += discardPts

	var delta [2]int
	made := points[bidding] >= tally.Bid
	if made {
		delta[bidding] = points[bidding]
	} else {
		delta[bidding] = -tally.Bid
	}
	delta[defending] = points[defending]

	next := totals
	next[TeamA] += delta[TeamA]
	next[TeamB] += delta[TeamB]

	return next, HandResult{
		HandNumber:    tally.HandNumber,
		BiddingTeam:   bidding,
		Bidder:        tally.Bidder,
		BidAmount:     tally.Bid,
		Trump:         tally.Trump,
		TeamPoints:    points,
		DiscardPoints: discardPts,
		Made:          made,
		Delta:         delta,
		TotalsAfter:   next,
	}
}

// CheckMatchEnd reports the outcome once either total reaches the threshold.
// Both teams over the line on equal totals is a tie.
func CheckMatchEnd(rules Ruleset, totals [2]int) (MatchOutcome, bool) {
	a, b := totals[TeamA], totals[TeamB]
	if a < rules.MatchThreshold && b < rules.MatchThreshold {
		return MatchOutcome{}, false
	}
	out := MatchOutcome{Final: totals}
	switch {
	case a == b:
		out.Tie = true
	case a > b:
		out.Winner = TeamA
	default:
		out.Winner = TeamB
	}
	return out, true
}
