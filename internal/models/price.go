// Package models defines the core domain types for the staking engine.
package models

import (
	"fmt"
	"strconv"
)

// PriceFormat identifies the odds format a Price value is expressed in.
type PriceFormat string

const (
	FormatProbability PriceFormat = "probability"
	FormatDecimal     PriceFormat = "decimal"
	FormatMoneyline   PriceFormat = "moneyline"
	FormatFractional  PriceFormat = "fractional"
)

// Price is a tagged odds value. Exactly one format tag applies to each value;
// interpretation is delegated to an odds converter, never done here.
type Price struct {
	Format PriceFormat `json:"format" validate:"required,oneof=probability decimal moneyline fractional"`
	Value  string      `json:"value" validate:"required"`
}

// NewProbability creates a Price holding a win probability in [0, 1].
func NewProbability(p float64) Price {
	return Price{Format: FormatProbability, Value: strconv.FormatFloat(p, 'f', -1, 64)}
}

// NewDecimal creates a Price holding decimal odds (payout multiplier per unit staked).
func NewDecimal(d float64) Price {
	return Price{Format: FormatDecimal, Value: strconv.FormatFloat(d, 'f', -1, 64)}
}

// NewMoneyline creates a Price holding American moneyline odds, e.g. -110 or +250.
func NewMoneyline(m int) Price {
	if m > 0 {
		return Price{Format: FormatMoneyline, Value: fmt.Sprintf("+%d", m)}
	}
	return Price{Format: FormatMoneyline, Value: strconv.Itoa(m)}
}

// NewFractional creates a Price holding fractional odds, e.g. 7/2.
func NewFractional(num, den int) Price {
	return Price{Format: FormatFractional, Value: fmt.Sprintf("%d/%d", num, den)}
}

// String returns the tagged representation, e.g. "moneyline:-110".
func (p Price) String() string {
	return fmt.Sprintf("%s:%s", p.Format, p.Value)
}
