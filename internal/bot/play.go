package bot

import (
	"rook-game/internal/game"
	"rook-game/internal/shared"
)

// choosePlay picks from the seat's legal cards. The Rook is held back until
// it is the only card left, unless a hard bot uses it to save a rich trick.
func (h *heuristic) choosePlay(v game.View) shared.Card {
	t := h.tuning
	legal := v.LegalCards
	plain := withoutRook(legal)
	if len(plain) == 0 {
		return legal[0]
	}
	if h.chance(t.RandomPlay) {
		return plain[h.rng.IntN(len(plain))]
	}

	if len(v.Trick) == 0 {
		return h.lead(v, plain)
	}

	trick := viewTrick{seat: v.Seat, cards: v.Trick, trump: v.Trump, led: v.LedColor}
	partner := t.DuckForPartner && trick.partnerWinning()

	if t.RookSaveTrick > 0 && shared.HasRook(legal) && !partner &&
		shared.PointsOf(v.Rules, trickCards(v.Trick)) >= t.RookSaveTrick {
		if _, ok := trick.cheapestWinner(plain); !ok {
			return shared.Rook
		}
	}

	if inSuit := ofColor(plain, v.LedColor); len(inSuit) > 0 {
		if t.PlayToWin && !partner {
			if c, ok := trick.cheapestWinner(inSuit); ok {
				return c
			}
		}
		return inSuit[0]
	}

	trumps := ofColor(plain, v.Trump)
	if len(trumps) == 0 {
		return plain[0]
	}
	if partner {
		for _, c := range plain {
			if c.Color != v.Trump {
				return c
			}
		}
	}
	if t.PlayToWin {
		if c, ok := trick.cheapestWinner(trumps); ok {
			return c
		}
	}
	return trumps[0]
}

// lead opens a trick. Strong bots cash a high card; the rest lead low from
// their shortest side suit.
func (h *heuristic) lead(v game.View, plain []shared.Card) shared.Card {
	if h.tuning.LeadStrong {
		for _, c := range plain {
			if c.Rank >= 12 {
				return c
			}
		}
	}

	counts := shared.CountColors(plain)
	var weakest shared.Color
	for _, color := range shared.Colors {
		if color == v.Trump || counts[color] == 0 {
			continue
		}
		if weakest == "" || counts[color] < counts[weakest] {
			weakest = color
		}
	}
	if weakest == "" {
		return plain[0]
	}
	return ofColor(plain, weakest)[0]
}

func trickCards(played []shared.PlayedCard) []shared.Card {
	cards := make([]shared.Card, len(played))
	for i, pc := range played {
		cards[i] = pc.Card
	}
	return cards
}
