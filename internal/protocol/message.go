package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"rook-game/internal/game"
	"rook-game/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // e.g. "BID", "START_GAME", "game_state"
	Payload json.RawMessage `json:"payload,omitempty"` // shape depends on Type
}

// Room-level message types sent by clients.
const (
	TypeSetName        = "SET_NAME"
	TypeAddBot         = "ADD_BOT"
	TypeAddBotAtSeat   = "ADD_BOT_AT_SEAT"
	TypeReplaceWithBot = "REPLACE_WITH_BOT"
	TypeStartGame      = "START_GAME"
)

// Message types sent by the server.
const (
	TypeWelcome   = "welcome"
	TypeLobby     = "lobby_update"
	TypeGameState = "game_state"
	TypeNotify    = "notify"
	TypeError     = "error"
)

var ErrNotAnAction = errors.New("not a game action")

// --- Client -> Server Payload Structs ---

// ActionPayload carries the arguments of every game action. A BID with a
// null or missing amount is a pass.
type ActionPayload struct {
	Amount *int         `json:"amount,omitempty"`
	Card   *shared.Card `json:"card,omitempty"`
	Suit   shared.Color `json:"suit,omitempty"`
	Color  shared.Color `json:"color,omitempty"`
}

type SetNamePayload struct {
	Name string `json:"name"`
}

// BotPayload is used by ADD_BOT, ADD_BOT_AT_SEAT and REPLACE_WITH_BOT. Seat
// is ignored by ADD_BOT.
type BotPayload struct {
	Seat       *int   `json:"seat,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// --- Server -> Client Payload Structs ---

type WelcomePayload struct {
	Room     string `json:"room"`
	Seat     int    `json:"seat"`
	ClientID string `json:"client_id"`
}

// SeatInfo describes who sits where.
type SeatInfo struct {
	Seat       int    `json:"seat"`
	Name       string `json:"name,omitempty"`
	Occupied   bool   `json:"occupied"`
	Bot        bool   `json:"bot"`
	Difficulty string `json:"difficulty,omitempty"`
}

type LobbyUpdatePayload struct {
	Room     string     `json:"room"`
	Seats    []SeatInfo `json:"seats"`
	CanStart bool       `json:"can_start"`
}

// GameStatePayload is one seat's view of the table plus the seating.
type GameStatePayload struct {
	Room  string     `json:"room"`
	Seats []SeatInfo `json:"seats"`
	game.View
}

type NotifyPayload struct {
	Message string `json:"message"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}

// IsAction reports whether a message type names a game action.
func IsAction(msgType string) bool {
	switch game.ActionKind(msgType) {
	case game.ActionBid, game.ActionContinue, game.ActionDiscard, game.ActionChooseTrump,
		game.ActionCallColor, game.ActionPlayCard, game.ActionDealAgain, game.ActionCheck200:
		return true
	}
	return false
}

// DecodeAction turns a client message into an engine action. Only the shape
// is checked here; the engine decides legality.
func DecodeAction(msg Message) (game.Action, error) {
	if !IsAction(msg.Type) {
		return game.Action{}, fmt.Errorf("%w: %q", ErrNotAnAction, msg.Type)
	}
	var p ActionPayload
	if len(msg.Payload) > 0 && string(msg.Payload) != "null" {
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return game.Action{}, fmt.Errorf("decode %s payload: %w", msg.Type, err)
		}
	}

	a := game.Action{Kind: game.ActionKind(msg.Type), Amount: p.Amount}
	if p.Card != nil {
		a.Card = *p.Card
	}
	// CHOOSE_TRUMP and CHECK_200 send "suit"; CALL_ROOK_COLOR sends "color".
	a.Color = p.Color
	if p.Suit != "" {
		a.Color = p.Suit
	}
	return a, nil
}

// DecodePayload unmarshals a message payload into v, treating an empty
// payload as the zero value.
func DecodePayload(msg Message, v interface{}) error {
	if len(msg.Payload) == 0 || string(msg.Payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", msg.Type, err)
	}
	return nil
}
