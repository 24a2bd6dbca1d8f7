package game

import "rook-game/internal/shared"

// View is what one seat is allowed to know about the table. Other hands are
// reduced to counts, the widow is shown only during the reveal (and to its
// owner while discarding) and the discard pile only to the widow owner.
type View struct {
	GameID     string         `json:"game_id"`
	Seat       int            `json:"seat"`
	Phase      Phase          `json:"phase"`
	HandNumber int            `json:"hand_number"`
	Version    uint64         `json:"version"`
	Rules      shared.Ruleset `json:"rules"`
	Host       int            `json:"host"`
	SeatToAct  int            `json:"seat_to_act"`

	Hand         []shared.Card         `json:"hand"`
	HandCounts   [shared.NumSeats]int  `json:"hand_counts"`
	Widow        []shared.Card         `json:"widow,omitempty"`
	WidowCount   int                   `json:"widow_count"`
	Discards     []shared.Card         `json:"discards,omitempty"`
	DiscardCount int                   `json:"discard_count"`
	Bids         [shared.NumSeats]*int `json:"bids"`
	Passed       [shared.NumSeats]bool `json:"passed"`

	CurrentBidder int  `json:"current_bidder"`
	HighBid       int  `json:"high_bid"`
	HighBidder    int  `json:"high_bidder"`
	MinimumBid    int  `json:"minimum_bid"`
	WidowOwner    int  `json:"widow_owner"`
	CanContinue   bool `json:"can_continue"`

	Trump           shared.Color        `json:"trump,omitempty"`
	Trick           []shared.PlayedCard `json:"trick"`
	LedColor        shared.Color        `json:"led_color,omitempty"`
	CalledColor     shared.Color        `json:"called_color,omitempty"`
	TrickLeader     int                 `json:"trick_leader"`
	CurrentPlayer   int                 `json:"current_player"`
	MustCallColor   bool                `json:"must_call_color"`
	LegalCards      []shared.Card       `json:"legal_cards,omitempty"`
	LastTrick       []shared.PlayedCard `json:"last_trick,omitempty"`
	LastTrickWinner int                 `json:"last_trick_winner"`
	TricksWon       [2]int              `json:"tricks_won"`

	Scores     [2]int               `json:"scores"`
	HandResult *shared.HandResult   `json:"hand_result,omitempty"`
	Outcome    *shared.MatchOutcome `json:"outcome,omitempty"`
}

// ViewFor projects the game for one seat. An out-of-range seat gets the
// public information only.
func (g *Game) ViewFor(seat int) View {
	r := g.r
	valid := seat >= 0 && seat < shared.NumSeats
	toAct, ok := g.SeatToAct()
	if !ok {
		toAct = -1
	}

	v := View{
		GameID:          g.ID,
		Seat:            seat,
		Phase:           g.phase,
		HandNumber:      g.handNumber,
		Version:         g.version,
		Rules:           g.rules,
		Host:            g.host,
		SeatToAct:       toAct,
		WidowCount:      len(r.widow),
		DiscardCount:    len(r.discarded),
		Passed:          r.passed,
		CurrentBidder:   r.currentBidder,
		HighBid:         r.highBid,
		HighBidder:      r.highBidder,
		MinimumBid:      g.rules.NextMinimumBid(r.highBid),
		WidowOwner:      r.widowOwner,
		Trump:           r.trump,
		Trick:           append([]shared.PlayedCard{}, r.trick.Cards...),
		LedColor:        r.trick.LedColor(),
		CalledColor:     r.trick.CalledColor,
		TrickLeader:     r.trickLeader,
		CurrentPlayer:   g.CurrentPlayer(),
		LastTrick:       append([]shared.PlayedCard(nil), r.lastTrick...),
		LastTrickWinner: r.lastWinner,
		TricksWon:       r.tricksWon,
		Scores:          g.scores,
	}
	if g.phase != PhaseBidding {
		v.CurrentBidder = -1
	}
	for i, h := range r.hands {
		v.HandCounts[i] = len(h)
	}
	for i, b := range r.bids {
		if b != nil {
			amount := *b
			v.Bids[i] = &amount
		}
	}
	if r.result != nil && (g.phase == PhaseScore || g.phase == PhaseGameOver) {
		res := *r.result
		v.HandResult = &res
	}
	if g.outcome != nil {
		out := *g.outcome
		v.Outcome = &out
	}

	if g.phase == PhaseReveal {
		v.Widow = append([]shared.Card(nil), r.widow...)
	}
	if !valid {
		return v
	}

	v.Hand = append([]shared.Card{}, r.hands[seat]...)
	shared.SortForDisplay(v.Hand)

	isOwner := seat == r.widowOwner
	if g.phase == PhaseDiscard && isOwner {
		v.Widow = append([]shared.Card(nil), r.widowDealt...)
	}
	if isOwner {
		v.Discards = append([]shared.Card(nil), r.discarded...)
	}
	v.CanContinue = g.phase == PhaseReveal && (isOwner || seat == g.host)

	if g.phase == PhasePlay && seat == g.CurrentPlayer() {
		v.MustCallColor = r.trick.AwaitingColor()
		v.LegalCards = LegalCards(r.hands[seat], &r.trick)
	}
	return v
}
