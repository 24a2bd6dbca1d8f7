package game

import "errors"

// Rejection reasons reported in Result.Reason. A rejected action never changes state.
var (
	ErrInvalidSeat        = errors.New("invalid seat")
	ErrUnknownAction      = errors.New("unknown action")
	ErrWrongPhase         = errors.New("action not allowed in this phase")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrAlreadyPassed      = errors.New("seat already passed this round")
	ErrInvalidBid         = errors.New("invalid bid amount")
	ErrNotWidowOwner      = errors.New("only the widow owner may do that")
	ErrCardNotInHand      = errors.New("card not in hand")
	ErrInvalidCard        = errors.New("invalid card")
	ErrInvalidColor       = errors.New("invalid color")
	ErrMustFollowSuit     = errors.New("must follow the led color")
	ErrAwaitingColorCall  = errors.New("the Rook was led; a color must be called first")
	ErrNoColorCallPending = errors.New("no color call pending")
)
