package shared

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	require.Len(t, d.Cards, 41)
	assert.Equal(t, DeckSize, len(d.Cards))
	assert.Len(t, Colors, NumColors)
	assert.Equal(t, DeckSize, NumSeats*CardsPerPlayer+WidowSize)

	seen := make(map[Card]bool)
	rooks := 0
	for _, c := range d.Cards {
		assert.True(t, c.Valid(), "invalid card %v", c)
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
		if c.Wild {
			rooks++
		}
	}
	assert.Equal(t, 1, rooks)
	assert.Len(t, CountColors(d.Cards), 4)
	for _, n := range CountColors(d.Cards) {
		assert.Equal(t, 10, n)
	}
}

func TestDeal(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewPCG(1, 2)))

	hands, widow := d.Deal(NumSeats, CardsPerPlayer, WidowSize)
	require.Len(t, hands, NumSeats)
	require.Len(t, widow, WidowSize)
	assert.Empty(t, d.Cards)

	all := append([]Card(nil), widow...)
	for _, h := range hands {
		assert.Len(t, h, CardsPerPlayer)
		all = append(all, h...)
	}
	assert.ElementsMatch(t, NewDeck().Cards, all)
}

func TestDealNotEnoughCards(t *testing.T) {
	d := &Deck{Cards: NewDeck().Cards[:10]}
	hands, widow := d.Deal(NumSeats, CardsPerPlayer, WidowSize)
	assert.Nil(t, hands)
	assert.Nil(t, widow)
	assert.Len(t, d.Cards, 10)
}

func TestRemoveCardByValue(t *testing.T) {
	hand := []Card{NewCard(Red, 5), Rook, NewCard(Black, 14)}

	out, ok := RemoveCard(hand, Card{Wild: true})
	require.True(t, ok)
	assert.Equal(t, []Card{NewCard(Red, 5), NewCard(Black, 14)}, out)
	assert.Len(t, hand, 3, "input slice must not be modified")

	_, ok = RemoveCard(hand, NewCard(Green, 9))
	assert.False(t, ok)
}

func TestHasColorIgnoresRook(t *testing.T) {
	hand := []Card{Rook, NewCard(Green, 7)}
	assert.True(t, HasColor(hand, Green))
	assert.False(t, HasColor(hand, Black))
	assert.True(t, HasRook(hand))
}
