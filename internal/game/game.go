package game

import (
	"math/rand/v2"

	"rook-game/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase represents the current stage of a hand.
type Phase string

const (
	PhaseWaiting  Phase = "waiting" // Room exists but no hand has been dealt
	PhaseBidding  Phase = "bidding"
	PhaseReveal   Phase = "reveal" // Widow face up for everyone
	PhaseDiscard  Phase = "discard"
	PhaseTrump    Phase = "trump"
	PhasePlay     Phase = "play"
	PhaseScore    Phase = "score"
	PhaseGameOver Phase = "game_over"
)

// round holds everything that belongs to a single hand. It is replaced
// wholesale on every new hand or redeal.
type round struct {
	hands      [shared.NumSeats][]shared.Card
	widow      []shared.Card
	widowDealt []shared.Card // what the widow held, kept for the owner's view
	discarded  []shared.Card
	deck       *shared.Deck // undealt remainder

	firstBidder   int
	currentBidder int
	bids          [shared.NumSeats]*int
	passed        [shared.NumSeats]bool
	highBid       int
	highBidder    int

	widowOwner  int
	trump       shared.Color
	trick       shared.Trick
	trickLeader int
	lastTrick   []shared.PlayedCard
	lastWinner  int
	tricksWon   [2]int
	captured    [2][]shared.Card

	result *shared.HandResult
}

// Game is the authoritative state for one match at one table. It is not
// safe for concurrent use; its owner serializes calls.
type Game struct {
	ID string

	rules      shared.Ruleset
	host       int
	phase      Phase
	scores     [2]int
	history    []shared.HandResult
	outcome    *shared.MatchOutcome
	handNumber int
	version    uint64

	r      *round
	rng    *rand.Rand
	logger *zap.Logger
}

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRand sets the shuffle source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSeed makes deals reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithHost names the seat allowed to move the table on from the reveal
// alongside the widow owner.
func WithHost(seat int) Option {
	return func(g *Game) {
		if seat >= 0 && seat < shared.NumSeats {
			g.host = seat
		}
	}
}

// NewGame validates the ruleset, deals the first hand and opens bidding.
func NewGame(rules shared.Ruleset, opts ...Option) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		ID:     uuid.NewString(),
		rules:  rules,
		phase:  PhaseWaiting,
		logger: zap.NewNop(),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("game_id", g.ID))
	g.handNumber = 1
	g.startHand()
	return g, nil
}

// startHand shuffles, deals a fresh round and opens bidding. Cumulative
// scores are untouched.
func (g *Game) startHand() {
	deck := shared.NewDeck()
	deck.Shuffle(g.rng)
	hands, widow := deck.Deal(shared.NumSeats, shared.CardsPerPlayer, shared.WidowSize)
	if hands == nil {
		g.logger.Error("deal failed", zap.Int("deck_size", len(deck.Cards)))
		return
	}

	first := (g.handNumber - 1) % shared.NumSeats
	r := &round{
		widow:         widow,
		widowDealt:    append([]shared.Card(nil), widow...),
		deck:          deck,
		firstBidder:   first,
		currentBidder: first,
		highBidder:    -1,
		widowOwner:    -1,
		trickLeader:   -1,
		lastWinner:    -1,
	}
	for i := range hands {
		r.hands[i] = hands[i]
	}
	g.r = r
	g.phase = PhaseBidding
	g.logger.Info("hand dealt", zap.Int("hand", g.handNumber), zap.Int("first_bidder", first))
}

// Rules returns the ruleset the game was created with.
func (g *Game) Rules() shared.Ruleset {
	return g.rules
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Version increases by one for every applied action.
func (g *Game) Version() uint64 {
	return g.version
}

// Scores returns the cumulative team totals.
func (g *Game) Scores() [2]int {
	return g.scores
}

// HandNumber returns the 1-based number of the current hand in the match.
func (g *Game) HandNumber() int {
	return g.handNumber
}

// History returns the results of every hand scored this match.
func (g *Game) History() []shared.HandResult {
	return append([]shared.HandResult(nil), g.history...)
}

// Outcome returns the match outcome once the game is over.
func (g *Game) Outcome() (shared.MatchOutcome, bool) {
	if g.outcome == nil {
		return shared.MatchOutcome{}, false
	}
	return *g.outcome, true
}

// CurrentPlayer returns the seat due to play a card or call a color, or -1
// outside the play phase. While a led Rook awaits its color the leader stays
// current.
func (g *Game) CurrentPlayer() int {
	if g.phase != PhasePlay {
		return -1
	}
	if g.r.trick.AwaitingColor() {
		return g.r.trickLeader
	}
	return (g.r.trickLeader + g.r.trick.Len()) % shared.NumSeats
}

// SeatToAct returns the seat the table is waiting on, if any.
func (g *Game) SeatToAct() (int, bool) {
	switch g.phase {
	case PhaseBidding:
		return g.r.currentBidder, true
	case PhaseReveal, PhaseDiscard, PhaseTrump:
		return g.r.widowOwner, true
	case PhasePlay:
		return g.CurrentPlayer(), true
	}
	return -1, false
}

// AccountedCards lists every card the game holds in any location: hands,
// widow, discard pile, the trick on the table, captured tricks and the
// undealt deck. It always contains the full deck exactly once.
func (g *Game) AccountedCards() []shared.Card {
	r := g.r
	var all []shared.Card
	for _, h := range r.hands {
		all = append(all, h...)
	}
	all = append(all, r.widow...)
	all = append(all, r.discarded...)
	for _, pc := range r.trick.Cards {
		all = append(all, pc.Card)
	}
	all = append(all, r.captured[shared.TeamA]...)
	all = append(all, r.captured[shared.TeamB]...)
	if r.deck != nil {
		all = append(all, r.deck.Cards...)
	}
	return all
}
