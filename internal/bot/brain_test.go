package bot

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"rook-game/internal/game"
	"rook-game/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func card(c shared.Color, rank int) shared.Card {
	return shared.NewCard(c, rank)
}

func newTestBrain(t *testing.T, d Difficulty) Brain {
	t.Helper()
	b, err := NewBrain(d, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return b
}

func playView(seat int, trump shared.Color, trick []shared.PlayedCard, legal ...shared.Card) game.View {
	v := game.View{
		Seat:          seat,
		Phase:         game.PhasePlay,
		Rules:         shared.RobinsonRules(),
		CurrentPlayer: seat,
		Trump:         trump,
		Trick:         trick,
		Hand:          legal,
		LegalCards:    legal,
	}
	if len(trick) > 0 {
		v.LedColor = trick[0].Card.Color
		if trick[0].Card.Wild {
			v.LedColor = shared.Yellow
		}
	}
	return v
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{" HARD ", Hard, false},
		{"Medium", Medium, false},
		{"", Medium, false},
		{"godlike", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, Medium, Difficulty("nope").OrDefault())
	assert.Equal(t, Hard, Difficulty("hard").OrDefault())
}

func TestNewBrain(t *testing.T) {
	for _, d := range Difficulties {
		b, err := NewBrain(d, nil)
		require.NoError(t, err)
		assert.Equal(t, d, b.Difficulty())
	}
	_, err := NewBrain("expert", nil)
	assert.Error(t, err)
}

func TestDecideOnlyOnOwnTurn(t *testing.T) {
	b := newTestBrain(t, Medium)

	_, ok := b.Decide(game.View{Seat: 1, Phase: game.PhaseBidding, CurrentBidder: 2})
	assert.False(t, ok)
	_, ok = b.Decide(game.View{Seat: 1, Phase: game.PhaseDiscard, WidowOwner: 3, Hand: []shared.Card{shared.Rook}})
	assert.False(t, ok)
	v := playView(0, shared.Red, nil, card(shared.Red, 5))
	v.CurrentPlayer = 2
	_, ok = b.Decide(v)
	assert.False(t, ok)
	_, ok = b.Decide(game.View{Seat: 0, Phase: game.PhaseScore})
	assert.False(t, ok)
}

func TestBidStrongHandOpensAtMinimum(t *testing.T) {
	b := newTestBrain(t, Medium)
	v := game.View{
		Seat:          0,
		Phase:         game.PhaseBidding,
		Rules:         shared.RobinsonRules(),
		CurrentBidder: 0,
		MinimumBid:    5,
		Hand: []shared.Card{
			card(shared.Red, 14), card(shared.Red, 10), card(shared.Red, 5),
			card(shared.Black, 14), card(shared.Black, 10), card(shared.Green, 14),
			card(shared.Green, 5), card(shared.Yellow, 10), shared.Rook,
		},
	}
	a, ok := b.Decide(v)
	require.True(t, ok)
	require.NotNil(t, a.Amount)
	assert.Equal(t, 5, *a.Amount)
}

func TestBidPassesAboveMaximum(t *testing.T) {
	b := newTestBrain(t, Hard)
	v := game.View{
		Seat:          1,
		Phase:         game.PhaseBidding,
		Rules:         shared.RobinsonRules(),
		CurrentBidder: 1,
		HighBid:       100,
		MinimumBid:    105,
		Hand:          []shared.Card{card(shared.Red, 14), card(shared.Red, 10)},
	}
	a, ok := b.Decide(v)
	require.True(t, ok)
	assert.Equal(t, game.ActionBid, a.Kind)
	assert.Nil(t, a.Amount)
}

func TestEasyOpensOnFairHand(t *testing.T) {
	h := newTestBrain(t, Easy).(*heuristic)
	h.tuning.PassAnyChance = 0
	v := game.View{
		Seat:          0,
		Phase:         game.PhaseBidding,
		Rules:         shared.RobinsonRules(),
		CurrentBidder: 0,
		MinimumBid:    5,
		Hand: []shared.Card{
			card(shared.Red, 14), card(shared.Red, 10), card(shared.Black, 5),
			card(shared.Green, 7), card(shared.Green, 8), card(shared.Yellow, 9),
			card(shared.Yellow, 6), card(shared.Black, 11), card(shared.Red, 12),
		},
	}
	// 25 points clears Easy's weak-hand line on a 100 point pot.
	require.Equal(t, 25, shared.PointsOf(v.Rules, v.Hand))
	a, ok := h.Decide(v)
	require.True(t, ok)
	require.NotNil(t, a.Amount)
	assert.Equal(t, 5, *a.Amount)
}

func TestEstimateStaysInBounds(t *testing.T) {
	h := newTestBrain(t, Hard).(*heuristic)
	rules := shared.RobinsonRules()

	rich := shared.NewDeck().Cards
	assert.Equal(t, rules.MaxBid, h.estimate(rich, rules))

	poor := []shared.Card{card(shared.Red, 6)}
	est := h.estimate(poor, rules)
	assert.GreaterOrEqual(t, est, rules.MinOpeningBid)
	assert.Zero(t, est%rules.BidIncrement)
}

func TestChooseTrumpPrefersLongStrongSuit(t *testing.T) {
	hand := []shared.Card{
		card(shared.Red, 14), card(shared.Red, 13), card(shared.Red, 10), card(shared.Red, 7),
		card(shared.Black, 6), card(shared.Black, 8), card(shared.Green, 9), shared.Rook,
		card(shared.Yellow, 11),
	}
	for _, d := range []Difficulty{Medium, Hard} {
		b := newTestBrain(t, d)
		a, ok := b.Decide(game.View{Seat: 2, WidowOwner: 2, Phase: game.PhaseTrump, Hand: hand})
		require.True(t, ok)
		assert.Equal(t, game.ChooseTrump(shared.Red), a, string(d))
	}
}

func TestDiscardKeepsRookAndCounters(t *testing.T) {
	hand := []shared.Card{
		shared.Rook,
		card(shared.Red, 14), card(shared.Red, 13), card(shared.Red, 10), card(shared.Red, 8), card(shared.Red, 6),
		card(shared.Black, 5), card(shared.Black, 14), card(shared.Black, 7),
		card(shared.Green, 10), card(shared.Green, 6),
		card(shared.Yellow, 9), card(shared.Yellow, 12), card(shared.Yellow, 11),
	}
	h := newTestBrain(t, Medium).(*heuristic)
	v := game.View{Seat: 0, WidowOwner: 0, Phase: game.PhaseDiscard, Rules: shared.RobinsonRules(), Hand: hand}

	for i := 0; i < shared.WidowSize; i++ {
		c := h.chooseDiscard(v)
		assert.False(t, c.Wild)
		if i < 4 {
			assert.NotEqual(t, shared.Red, c.Color, "probable trump kept")
		}
		assert.Zero(t, v.Rules.CardPoints(c), "counters kept while blanks remain")
		v.Hand, _ = shared.RemoveCard(v.Hand, c)
		v.DiscardCount++
	}
	assert.True(t, shared.HasRook(v.Hand))
}

func TestCallColorPicksLongestColor(t *testing.T) {
	b := newTestBrain(t, Hard)
	v := playView(1, shared.Red, []shared.PlayedCard{{Card: shared.Rook, Seat: 1}},
		card(shared.Green, 5), card(shared.Green, 9), card(shared.Black, 14))
	v.LegalCards = nil
	v.MustCallColor = true
	a, ok := b.Decide(v)
	require.True(t, ok)
	assert.Equal(t, game.CallColor(shared.Green), a)
}

func TestFollowing(t *testing.T) {
	led := []shared.PlayedCard{{Card: card(shared.Black, 11), Seat: 0}}
	partnerAhead := []shared.PlayedCard{
		{Card: card(shared.Black, 13), Seat: 0},
		{Card: card(shared.Black, 9), Seat: 1},
	}

	tests := []struct {
		name  string
		d     Difficulty
		seat  int
		trick []shared.PlayedCard
		legal []shared.Card
		want  shared.Card
	}{
		{"medium plays lowest in suit", Medium, 1, led,
			[]shared.Card{card(shared.Black, 10), card(shared.Black, 12), card(shared.Black, 14)}, card(shared.Black, 10)},
		{"hard wins cheaply", Hard, 1, led,
			[]shared.Card{card(shared.Black, 10), card(shared.Black, 12), card(shared.Black, 14)}, card(shared.Black, 12)},
		{"hard ducks under partner", Hard, 2, partnerAhead,
			[]shared.Card{card(shared.Black, 10), card(shared.Black, 14)}, card(shared.Black, 10)},
		{"void trumps low", Medium, 1, led,
			[]shared.Card{card(shared.Red, 12), card(shared.Red, 6), card(shared.Green, 5)}, card(shared.Red, 6)},
		{"void without trump sloughs lowest", Medium, 1, led,
			[]shared.Card{card(shared.Green, 9), card(shared.Yellow, 6)}, card(shared.Yellow, 6)},
		{"hard sloughs instead of trumping partner", Hard, 2, partnerAhead,
			[]shared.Card{card(shared.Red, 6), card(shared.Green, 8)}, card(shared.Green, 8)},
		{"rook kept while other cards remain", Medium, 1, led,
			[]shared.Card{shared.Rook, card(shared.Black, 6)}, card(shared.Black, 6)},
		{"rook played as last card", Medium, 1, led,
			[]shared.Card{shared.Rook}, shared.Rook},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBrain(t, tt.d)
			a, ok := b.Decide(playView(tt.seat, shared.Red, tt.trick, tt.legal...))
			require.True(t, ok)
			assert.Equal(t, game.PlayCard(tt.want), a)
		})
	}
}

func TestHardSpendsRookOnRichTrick(t *testing.T) {
	trick := []shared.PlayedCard{
		{Card: card(shared.Black, 14), Seat: 0},
		{Card: card(shared.Black, 10), Seat: 1},
	}
	v := playView(3, shared.Red, trick, shared.Rook, card(shared.Black, 6))
	b := newTestBrain(t, Hard)
	a, ok := b.Decide(v)
	require.True(t, ok)
	assert.Equal(t, game.PlayCard(shared.Rook), a)
}

func TestLeads(t *testing.T) {
	legal := []shared.Card{
		card(shared.Black, 6), card(shared.Black, 9), card(shared.Green, 8),
		card(shared.Yellow, 13), card(shared.Red, 5), shared.Rook,
	}
	medium := newTestBrain(t, Medium)
	a, ok := medium.Decide(playView(0, shared.Red, nil, legal...))
	require.True(t, ok)
	assert.Equal(t, game.PlayCard(card(shared.Green, 8)), a, "lowest card of the shortest side suit")

	hard := newTestBrain(t, Hard)
	a, ok = hard.Decide(playView(0, shared.Red, nil, legal...))
	require.True(t, ok)
	assert.Equal(t, game.PlayCard(card(shared.Yellow, 13)), a)
}

// Bots only ever see their own View, and every action they choose must be
// accepted by the engine all the way to the end of a match.
func TestBotsPlayFullMatches(t *testing.T) {
	for i, rules := range []shared.Ruleset{shared.RobinsonRules(), shared.ClassicRules()} {
		for _, d := range Difficulties {
			t.Run(fmt.Sprintf("%s/%s", rules.Variant, d), func(t *testing.T) {
				seed := uint64(i*10) + uint64(len(d))
				g, err := game.NewGame(rules, game.WithSeed(seed), game.WithLogger(zaptest.NewLogger(t)))
				require.NoError(t, err)

				var brains [shared.NumSeats]Brain
				for s := range brains {
					tier := Difficulties[(s+int(seed))%len(Difficulties)]
					if s%2 == 0 {
						tier = d
					}
					brains[s], err = NewBrain(tier, rand.New(rand.NewPCG(seed, uint64(s))))
					require.NoError(t, err)
				}

				for step := 0; ; step++ {
					require.Less(t, step, 50000, "match did not finish")
					switch g.Phase() {
					case game.PhaseGameOver:
						out, ok := g.Outcome()
						require.True(t, ok)
						assert.True(t, out.Tie || out.Final[out.Winner] >= rules.MatchThreshold)
						return
					case game.PhaseScore:
						require.False(t, g.Dispatch(0, game.DealAgain()).Rejected())
						continue
					}

					seat, ok := g.SeatToAct()
					require.True(t, ok)
					a, ok := brains[seat].Decide(g.ViewFor(seat))
					require.True(t, ok, "seat %d has nothing to do in %s", seat, g.Phase())
					res := g.Dispatch(seat, a)
					require.NoError(t, res.Reason, "seat %d %+v in %s", seat, a, g.Phase())
					require.Len(t, g.AccountedCards(), shared.DeckSize)
				}
			})
		}
	}
}
