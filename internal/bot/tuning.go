package bot

// Tuning holds the knobs that separate the difficulty tiers.
type Tuning struct {
	// Bidding
	BidOffset      int     // added to the hand estimate
	StrengthScale  float64 // weight of the best suit's strength
	RookBonus      int
	WeakHand       int     // below this many points the bot may pass outright
	WeakPassChance float64 // chance of passing a weak hand
	PassAnyChance  float64 // chance of passing regardless of the hand

	// Widow and trump
	HonorBonus         bool    // count 13s and 12s when scoring a trump color
	TrumpRunnerUp      float64 // chance of naming the second-best trump
	KeepTrumpDiscards  int     // discards made before probable trump may go
	KeepCountersOnDeck bool    // avoid discarding 10 and 14 point cards

	// Play
	ColorRunnerUp  float64 // chance of calling the second-best color
	RandomPlay     float64 // chance of a random legal card
	LeadStrong     bool
	PlayToWin      bool // follow and trump with the cheapest winning card
	DuckForPartner bool
	RookSaveTrick  int // trick points worth spending the Rook on; 0 never
}

// DefaultTuning maps each tier to its settings.
var DefaultTuning = map[Difficulty]Tuning{
	Easy: {
		BidOffset:         10,
		StrengthScale:     0.5,
		RookBonus:         15,
		WeakHand:          30,
		WeakPassChance:    0.8,
		PassAnyChance:     0.4,
		TrumpRunnerUp:     0.3,
		KeepTrumpDiscards: 3,
		ColorRunnerUp:     0.2,
		RandomPlay:        0.3,
	},
	Medium: {
		BidOffset:          30,
		StrengthScale:      1,
		RookBonus:          15,
		WeakHand:           40,
		WeakPassChance:     0.6,
		KeepTrumpDiscards:  4,
		KeepCountersOnDeck: true,
	},
	Hard: {
		BidOffset:          45,
		StrengthScale:      1.5,
		RookBonus:          15,
		WeakHand:           30,
		WeakPassChance:     0.4,
		HonorBonus:         true,
		KeepTrumpDiscards:  4,
		KeepCountersOnDeck: true,
		LeadStrong:         true,
		PlayToWin:          true,
		DuckForPartner:     true,
		RookSaveTrick:      15,
	},
}
