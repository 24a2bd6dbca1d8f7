package server

import (
	"fmt"
	"strings"

	"rook-game/internal/bot"
	"rook-game/internal/game"
	"rook-game/internal/protocol"
	"rook-game/internal/shared"
)

const maxNameLength = 16

// seat is one chair at a table: empty, a connected human or a bot.
type seat struct {
	client *Client
	brain  bot.Brain
	name   string
}

func (s *seat) occupied() bool {
	return s.client != nil || s.brain != nil
}

// Room is a table identified by its code. All fields are owned by the hub
// goroutine.
type Room struct {
	Code  string
	seats [shared.NumSeats]seat
	game  *game.Game

	archivedGameID string
}

func newRoom(code string) *Room {
	return &Room{Code: code}
}

func (r *Room) started() bool {
	return r.game != nil
}

func (r *Room) firstFreeSeat() int {
	for i := range r.seats {
		if !r.seats[i].occupied() {
			return i
		}
	}
	return -1
}

func (r *Room) occupiedCount() int {
	n := 0
	for i := range r.seats {
		if r.seats[i].occupied() {
			n++
		}
	}
	return n
}

func (r *Room) humanCount() int {
	n := 0
	for i := range r.seats {
		if r.seats[i].client != nil {
			n++
		}
	}
	return n
}

func (r *Room) canStart() bool {
	return !r.started() && r.occupiedCount() == shared.NumSeats
}

func (r *Room) isBot(i int) bool {
	return i >= 0 && i < shared.NumSeats && r.seats[i].brain != nil
}

func (r *Room) seatHuman(i int, c *Client) {
	r.seats[i] = seat{client: c, name: defaultName(i)}
	c.room = r.Code
	c.seat = i
}

func (r *Room) seatBot(i int, b bot.Brain) {
	r.seats[i] = seat{brain: b, name: fmt.Sprintf("Bot %d", i+1)}
}

func (r *Room) setName(i int, name string) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) > maxNameLength {
		name = string([]rune(name)[:maxNameLength])
	}
	if name == "" {
		name = defaultName(i)
	}
	r.seats[i].name = name
}

func (r *Room) seatInfos() []protocol.SeatInfo {
	infos := make([]protocol.SeatInfo, shared.NumSeats)
	for i := range r.seats {
		s := &r.seats[i]
		info := protocol.SeatInfo{Seat: i, Occupied: s.occupied(), Bot: s.brain != nil}
		if s.occupied() {
			info.Name = s.name
		}
		if s.brain != nil {
			info.Difficulty = string(s.brain.Difficulty())
		}
		infos[i] = info
	}
	return infos
}

func (r *Room) names() [shared.NumSeats]string {
	var out [shared.NumSeats]string
	for i := range r.seats {
		out[i] = r.seats[i].name
	}
	return out
}

func defaultName(i int) string {
	return fmt.Sprintf("Player %d", i+1)
}
