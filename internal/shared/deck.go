package shared

import (
	"math/rand/v2"
)

const (
	NumSeats       = 4
	NumColors      = 4
	CardsPerPlayer = 9
	WidowSize      = 5
	DeckSize       = NumColors*(MaxRank-MinRank+1) + 1
)

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the 41-card Rook deck: ranks 5-14 in every color plus the Rook.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, color := range Colors {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, NewCard(color, rank))
		}
	}
	cards = append(cards, Rook)
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal hands out cardsPerPlayer cards round-robin to numPlayers seats and
// then sets aside widowSize cards. Dealt cards leave the deck. Returns nil
// hands if the deck is too small.
func (d *Deck) Deal(numPlayers, cardsPerPlayer, widowSize int) ([][]Card, []Card) {
	needed := numPlayers*cardsPerPlayer + widowSize
	if len(d.Cards) < needed {
		return nil, nil
	}

	hands := make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = make([]Card, 0, cardsPerPlayer)
	}
	idx := 0
	for ; idx < numPlayers*cardsPerPlayer; idx++ {
		hands[idx%numPlayers] = append(hands[idx%numPlayers], d.Cards[idx])
	}
	widow := make([]Card, widowSize)
	copy(widow, d.Cards[idx:idx+widowSize])

	d.Cards = append([]Card(nil), d.Cards[needed:]...)
	return hands, widow
}
