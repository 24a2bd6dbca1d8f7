package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"rook-game/internal/database"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ResultStore is the read side of the match archive.
type ResultStore interface {
	GetAll(ctx context.Context) ([]database.MatchResult, error)
	GetByID(ctx context.Context, id string) (database.MatchResult, error)
	GetByPlayer(ctx context.Context, playerName string) ([]database.MatchResult, error)
}

// NewRouter wires the websocket endpoint, the results API and the static
// client. A nil store leaves the results API out; an empty staticDir skips
// the file server.
func NewRouter(hub *Hub, store ResultStore, staticDir string, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		rooms, err := hub.RoomCount(r.Context())
		if err != nil {
			http.Error(w, "hub unavailable", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, logger, map[string]any{"status": "ok", "rooms": rooms})
	})

	if store != nil {
		r.Route("/api/results", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				GetResultsHandler(store, logger, w, r)
			})
			r.Get("/player/{name}", func(w http.ResponseWriter, r *http.Request) {
				GetResultsByPlayerHandler(store, logger, w, r)
			})
			r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
				GetResultHandler(store, logger, w, r)
			})
		})
		logger.Info("registered results routes", zap.String("prefix", "/api/results"))
	}

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}
	return r
}

func GetResultsHandler(store ResultStore, logger *zap.Logger, w http.ResponseWriter, r *http.Request) {
	results, err := store.GetAll(r.Context())
	if err != nil {
		logger.Error("list results", zap.Error(err))
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []database.MatchResult{}
	}
	writeJSON(w, logger, results)
}

func GetResultHandler(store ResultStore, logger *zap.Logger, w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := store.GetByID(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "Result not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("get result", zap.String("id", id), zap.Error(err))
		http.Error(w, "Failed to fetch result", http.StatusInternalServerError)
		return
	}
	writeJSON(w, logger, result)
}

func GetResultsByPlayerHandler(store ResultStore, logger *zap.Logger, w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "name")
	if player == "" {
		http.Error(w, "Player name is required", http.StatusBadRequest)
		return
	}

	results, err := store.GetByPlayer(r.Context(), player)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "No results found for player", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("results by player", zap.String("player", player), zap.Error(err))
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}
	writeJSON(w, logger, results)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("write response", zap.Error(err))
	}
}
