package bot

import (
	"testing"

	"rook-game/internal/game"
	"rook-game/internal/shared"

	"github.com/stretchr/testify/assert"
)

func TestFallback(t *testing.T) {
	red9 := card(shared.Red, 9)
	tests := []struct {
		name string
		view game.View
		want game.Action
		ok   bool
	}{
		{"bidding passes", game.View{Seat: 1, Phase: game.PhaseBidding, CurrentBidder: 1}, game.Pass(), true},
		{"bidding out of turn", game.View{Seat: 1, Phase: game.PhaseBidding, CurrentBidder: 2}, game.Action{}, false},
		{"reveal continues", game.View{Seat: 0, Phase: game.PhaseReveal, WidowOwner: 2, CanContinue: true}, game.ContinueToDiscard(), true},
		{"reveal waits", game.View{Seat: 1, Phase: game.PhaseReveal, WidowOwner: 2}, game.Action{}, false},
		{"discard skips the Rook", game.View{Seat: 2, Phase: game.PhaseDiscard, WidowOwner: 2, Hand: []shared.Card{shared.Rook, red9}}, game.Discard(red9), true},
		{"trump", game.View{Seat: 2, Phase: game.PhaseTrump, WidowOwner: 2}, game.ChooseTrump(shared.Black), true},
		{"color call", game.View{Seat: 3, Phase: game.PhasePlay, CurrentPlayer: 3, MustCallColor: true}, game.CallColor(shared.Black), true},
		{"first legal card", game.View{Seat: 3, Phase: game.PhasePlay, CurrentPlayer: 3, LegalCards: []shared.Card{red9}}, game.PlayCard(red9), true},
		{"not our trick turn", game.View{Seat: 3, Phase: game.PhasePlay, CurrentPlayer: 0, LegalCards: []shared.Card{red9}}, game.Action{}, false},
		{"score", game.View{Seat: 0, Phase: game.PhaseScore}, game.Action{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Fallback(tt.view)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
