package game

import "rook-game/internal/shared"

// ActionKind tags the Action union. The values double as wire names.
type ActionKind string

const (
	ActionBid         ActionKind = "BID"
	ActionContinue    ActionKind = "CONTINUE_TO_DISCARD"
	ActionDiscard     ActionKind = "DISCARD"
	ActionChooseTrump ActionKind = "CHOOSE_TRUMP"
	ActionCallColor   ActionKind = "CALL_ROOK_COLOR"
	ActionPlayCard    ActionKind = "PLAY_CARD"
	ActionDealAgain   ActionKind = "DEAL_AGAIN"
	ActionCheck200    ActionKind = "CHECK_200"
)

// Action is a request from a seat. Only the fields relevant to Kind are read:
// Amount for BID (nil passes), Card for DISCARD and PLAY_CARD, Color for
// CHOOSE_TRUMP, CALL_ROOK_COLOR and CHECK_200.
type Action struct {
	Kind   ActionKind
	Amount *int
	Card   shared.Card
	Color  shared.Color
}

func Bid(amount int) Action {
	return Action{Kind: ActionBid, Amount: &amount}
}

func Pass() Action {
	return Action{Kind: ActionBid}
}

func ContinueToDiscard() Action {
	return Action{Kind: ActionContinue}
}

func Discard(c shared.Card) Action {
	return Action{Kind: ActionDiscard, Card: c}
}

func ChooseTrump(color shared.Color) Action {
	return Action{Kind: ActionChooseTrump, Color: color}
}

func CallColor(color shared.Color) Action {
	return Action{Kind: ActionCallColor, Color: color}
}

func PlayCard(c shared.Card) Action {
	return Action{Kind: ActionPlayCard, Card: c}
}

func DealAgain() Action {
	return Action{Kind: ActionDealAgain}
}

func Check200(color shared.Color) Action {
	return Action{Kind: ActionCheck200, Color: color}
}

// Result reports what Dispatch did. Reason is set when the action was
// rejected; Notice carries advisory text for the acting seat.
type Result struct {
	Changed bool
	Notice  string
	Reason  error
}

// Rejected reports whether the action was refused.
func (r Result) Rejected() bool {
	return r.Reason != nil
}

func applied() Result {
	return Result{Changed: true}
}

func reject(err error) Result {
	return Result{Reason: err}
}
