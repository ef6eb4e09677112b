// Package staking implements expectation, Kelly-criterion and arbitrage
// sizing over a list of simultaneous edges.
//
// All computations are pure, synchronous arithmetic over immutable inputs.
// The only collaborator is the injected odds converter; its errors propagate
// to the caller unchanged.
package staking

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/stake-engine/internal/models"
	"github.com/yourusername/stake-engine/internal/odds"
)

// Engine sizes wagers against an injected odds converter.
type Engine struct {
	conv   odds.Converter
	logger *logrus.Logger
}

// NewEngine creates a new staking engine.
func NewEngine(conv odds.Converter, logger *logrus.Logger) *Engine {
	return &Engine{conv: conv, logger: logger}
}

// candidate carries one edge's normalized numbers through selection.
type candidate struct {
	edge models.Edge
	prob float64 // fair win probability
	odds float64 // decimal payout multiplier offered
	exp  float64 // single-unit expectation: prob * odds
}

// normalize converts every edge's prices up front so selection runs on plain
// numbers. Conversion failures abort the whole operation.
func (e *Engine) normalize(edges []models.Edge) ([]candidate, error) {
	cands := make([]candidate, 0, len(edges))
	for _, edge := range edges {
		prob, err := odds.Probability(e.conv, edge.Fair)
		if err != nil {
			return nil, err
		}
		dec, err := odds.Decimal(e.conv, edge.Offered)
		if err != nil {
			return nil, err
		}
		cands = append(cands, candidate{edge: edge, prob: prob, odds: dec, exp: prob * dec})
	}
	return cands, nil
}

// RoundCents rounds a monetary amount to the cent, half away from zero.
// Rounding happens at the last step of every money-producing calculation;
// intermediate fraction math stays full-precision.
func RoundCents(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
