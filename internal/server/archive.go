package server

import (
	"context"
	"time"

	"rook-game/internal/database"
	"rook-game/internal/game"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maybeArchive stores a finished match once. The write runs off the hub
// goroutine.
func (h *Hub) maybeArchive(room *Room) {
	g := room.game
	if g == nil || g.Phase() != game.PhaseGameOver || room.archivedGameID == g.ID {
		return
	}
	room.archivedGameID = g.ID
	if h.archiver == nil {
		return
	}

	result, ok := matchResult(room, time.Now())
	if !ok {
		return
	}
	h.archives.Add(1)
	go func() {
		defer h.archives.Done()
		ctx, cancel := context.WithTimeout(context.Background(), h.archiveTTL)
		defer cancel()
		if err := h.archiver.Insert(ctx, result); err != nil {
			h.logger.Error("archive match", zap.String("room", result.RoomCode), zap.Error(err))
			return
		}
		h.logger.Info("match archived", zap.String("room", result.RoomCode), zap.String("id", result.ID))
	}()
}

func matchResult(room *Room, now time.Time) (database.MatchResult, bool) {
	g := room.game
	out, over := g.Outcome()
	if !over {
		return database.MatchResult{}, false
	}
	names := room.names()
	winner := out.Winner.String()
	if out.Tie {
		winner = database.WinnerTie
	}
	return database.MatchResult{
		ID:         uuid.NewString(),
		GameID:     g.ID,
		RoomCode:   room.Code,
		CreatedAt:  now.UTC().Format(time.RFC3339),
		Variant:    string(g.Rules().Variant),
		Player1:    names[0],
		Player2:    names[1],
		Player3:    names[2],
		Player4:    names[3],
		Team1Score: out.Final[0],
		Team2Score: out.Final[1],
		Winner:     winner,
		Hands:      len(g.History()),
	}, true
}
