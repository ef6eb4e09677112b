package staking

import "github.com/yourusername/stake-engine/internal/models"

// Expectation returns the expected return multiplier of a single edge scaled
// by multiplier: multiplier * fairProbability * decimalOdds. A multiplier of
// 1 yields the single-unit expectation used for ranking.
func (e *Engine) Expectation(edge models.Edge, multiplier float64) (float64, error) {
	cands, err := e.normalize([]models.Edge{edge})
	if err != nil {
		return 0, err
	}
	return multiplier * cands[0].exp, nil
}

// EV computes the expected return of staking the whole bankroll on each edge,
// preserving input order. A losing proposition simply comes back below the
// bankroll; the only failure mode is a price that will not convert.
func (e *Engine) EV(edges []models.Edge, opts models.StakingOptions) ([]models.TaggedAmount, error) {
	if opts.Bankroll < 0 {
		return nil, models.ErrNegativeBankroll
	}

	cands, err := e.normalize(edges)
	if err != nil {
		return nil, err
	}

	out := make([]models.TaggedAmount, 0, len(cands))
	for _, c := range cands {
		out = append(out, models.TaggedAmount{
			Label:  c.edge.Label,
			Amount: RoundCents(opts.Bankroll * c.exp),
		})
	}
	return out, nil
}
