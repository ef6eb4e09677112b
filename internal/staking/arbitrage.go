package staking

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/stake-engine/internal/metrics"
	"github.com/yourusername/stake-engine/internal/models"
	"github.com/yourusername/stake-engine/internal/odds"
)

// Arb looks for a riskless profit across mutually exclusive outcomes. One
// exists when the offered prices' implied probabilities sum below 1; the
// bankroll is then split so every outcome pays the same amount back.
//
// Preconditions: at least two edges and Independent false. Anything else is
// ErrNoArbitrage. Cent rounding of the individual stakes is the only source
// of payout variance across outcomes.
func (e *Engine) Arb(edges []models.Edge, opts models.StakingOptions) (*models.ArbPlan, error) {
	if opts.Bankroll < 0 {
		return nil, models.ErrNegativeBankroll
	}
	if len(edges) < 2 || opts.Independent {
		metrics.NoArbitrageTotal.Inc()
		return nil, models.ErrNoArbitrage
	}

	sumImplied := 0.0
	for _, edge := range edges {
		p, err := odds.Probability(e.conv, edge.Offered)
		if err != nil {
			return nil, err
		}
		sumImplied += p
	}

	if sumImplied >= 1 {
		e.logger.WithFields(logrus.Fields{
			"implied_sum": sumImplied,
			"edges":       len(edges),
		}).Debug("Implied probabilities carry no overround gap")
		metrics.NoArbitrageTotal.Inc()
		return nil, models.ErrNoArbitrage
	}

	targetPayout := opts.Bankroll / sumImplied

	sizes := make([]models.TaggedAmount, 0, len(edges))
	totalStaked := 0.0
	for _, edge := range edges {
		dec, err := odds.Decimal(e.conv, edge.Offered)
		if err != nil {
			return nil, err
		}
		stake := RoundCents(targetPayout / dec)
		sizes = append(sizes, models.TaggedAmount{Label: edge.Label, Amount: stake})
		totalStaked += stake
	}

	plan := &models.ArbPlan{
		Sizes:  sizes,
		Profit: RoundCents(targetPayout - totalStaked),
	}

	metrics.ArbitrageDetectedTotal.Inc()
	e.logger.WithFields(logrus.Fields{
		"implied_sum":   sumImplied,
		"target_payout": targetPayout,
		"profit":        plan.Profit,
	}).Debug("Arbitrage detected")

	return plan, nil
}
