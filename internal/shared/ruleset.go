package shared

import (
	"errors"
	"fmt"
	"strings"
)

// Variant names a family of rule constants.
type Variant string

const (
	VariantRobinson Variant = "robinson"
	VariantClassic  Variant = "classic"
)

// Ruleset holds the constants fixed for a room at creation.
type Ruleset struct {
	Variant        Variant `json:"variant" mapstructure:"variant"`
	WildCardPoints int     `json:"wild_card_points" mapstructure:"wild_card_points"`
	MaxBid         int     `json:"max_bid" mapstructure:"max_bid"`
	MinOpeningBid  int     `json:"min_opening_bid" mapstructure:"min_opening_bid"`
	BidIncrement   int     `json:"bid_increment" mapstructure:"bid_increment"`
	MatchThreshold int     `json:"match_threshold" mapstructure:"match_threshold"`
}

// RobinsonRules: the Rook is worth nothing and the 100 points on the colored
// cards are the whole pot.
func RobinsonRules() Ruleset {
	return Ruleset{
		Variant:        VariantRobinson,
		WildCardPoints: 0,
		MaxBid:         100,
		MinOpeningBid:  5,
		BidIncrement:   5,
		MatchThreshold: 500,
	}
}

// ClassicRules counts the Rook for 20, making 120 points per hand.
func ClassicRules() Ruleset {
	return Ruleset{
		Variant:        VariantClassic,
		WildCardPoints: 20,
		MaxBid:         120,
		MinOpeningBid:  70,
		BidIncrement:   5,
		MatchThreshold: 500,
	}
}

// RulesFor returns the preset for a variant name.
func RulesFor(name string) (Ruleset, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(name))) {
	case VariantRobinson, "":
		return RobinsonRules(), nil
	case VariantClassic:
		return ClassicRules(), nil
	default:
		return Ruleset{}, fmt.Errorf("unknown rules variant %q", name)
	}
}

// Validate checks the ruleset is internally consistent.
func (r Ruleset) Validate() error {
	var errs []error
	if r.BidIncrement <= 0 {
		errs = append(errs, fmt.Errorf("bid_increment must be positive, got %d", r.BidIncrement))
	}
	if r.MinOpeningBid <= 0 {
		errs = append(errs, fmt.Errorf("min_opening_bid must be positive, got %d", r.MinOpeningBid))
	}
	if r.MaxBid < r.MinOpeningBid {
		errs = append(errs, fmt.Errorf("max_bid %d below min_opening_bid %d", r.MaxBid, r.MinOpeningBid))
	}
	if r.WildCardPoints < 0 {
		errs = append(errs, fmt.Errorf("wild_card_points must not be negative, got %d", r.WildCardPoints))
	}
	if r.MatchThreshold <= 0 {
		errs = append(errs, fmt.Errorf("match_threshold must be positive, got %d", r.MatchThreshold))
	}
	return errors.Join(errs...)
}

// CardPoints returns the point value of a card: 5s count 5, 10s and 14s
// count 10, the Rook counts WildCardPoints and everything else is blank.
func (r Ruleset) CardPoints(c Card) int {
	if c.Wild {
		return r.WildCardPoints
	}
	switch c.Rank {
	case 5:
		return 5
	case 10, 14:
		return 10
	}
	return 0
}

// NextMinimumBid is the lowest legal bid given the current high bid (0 for none).
func (r Ruleset) NextMinimumBid(high int) int {
	next := r.MinOpeningBid
	if high > 0 {
		next = high + r.BidIncrement
	}
	if rem := next % r.BidIncrement; rem != 0 {
		next += r.BidIncrement - rem
	}
	return next
}

// ValidBid reports whether amount may be bid over the current high bid.
func (r Ruleset) ValidBid(amount, high int) bool {
	if amount <= 0 || r.BidIncrement <= 0 || amount%r.BidIncrement != 0 {
		return false
	}
	return amount >= r.MinOpeningBid && amount <= r.MaxBid && amount > high
}
