package staking

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/stake-engine/internal/metrics"
	"github.com/yourusername/stake-engine/internal/models"
)

// stakeFraction is an intermediate bankroll fraction tied to its edge label.
type stakeFraction struct {
	label    string
	fraction float64
}

// Kelly decides which of the supplied simultaneous edges to bet and how much
// of the bankroll to put on each.
//
// With Independent false (or a single edge) the edges are treated as mutually
// exclusive outcomes and sized with the greedy reserve-rate algorithm. With
// Independent true each edge is sized with the classical single-bet formula
// on its own; that ignores cross-edge bankroll consumption and is a known
// over-allocation relative to the true joint optimum.
//
// Returned amounts follow processing order, not input order. When nothing
// survives selection the call fails with ErrNoPositiveEdge.
func (e *Engine) Kelly(edges []models.Edge, opts models.StakingOptions) ([]models.TaggedAmount, error) {
	if opts.Bankroll < 0 {
		return nil, models.ErrNegativeBankroll
	}

	cands, err := e.normalize(edges)
	if err != nil {
		return nil, err
	}

	var fractions []stakeFraction
	if opts.Independent && len(cands) > 1 {
		fractions = e.independentFractions(cands)
	} else {
		fractions = e.exclusiveFractions(cands)
	}

	stakes := scaleFractions(fractions, opts.Bankroll)
	if len(stakes) == 0 {
		metrics.NoPositiveEdgeTotal.Inc()
		return nil, models.ErrNoPositiveEdge
	}

	metrics.KellyRunsTotal.Inc()
	e.logger.WithFields(logrus.Fields{
		"edges_in":  len(edges),
		"edges_bet": len(stakes),
		"bankroll":  opts.Bankroll,
	}).Debug("Kelly stakes computed")

	return stakes, nil
}

// exclusiveFractions runs the two-phase selection for mutually exclusive
// edges: a stable sort by descending single-unit expectation, then a fold
// that grows the included set until a candidate's expectation no longer
// beats the set's reserve rate. The cutoff is hard; once one candidate
// fails, every remaining (weaker) candidate is excluded too.
func (e *Engine) exclusiveFractions(cands []candidate) []stakeFraction {
	sorted := make([]candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].exp > sorted[j].exp
	})

	var included []candidate
	sumProb, sumInv := 0.0, 0.0
	for _, c := range sorted {
		if c.exp <= reserveRate(sumProb, sumInv) {
			break
		}
		included = append(included, c)
		sumProb += c.prob
		if c.odds > 0 {
			sumInv += 1.0 / c.odds
		}
		e.logger.WithFields(logrus.Fields{
			"label":       c.edge.Label,
			"expectation": c.exp,
		}).Debug("Edge included in Kelly set")
	}

	if len(included) == 1 {
		return []stakeFraction{{label: included[0].edge.Label, fraction: singleKelly(included[0])}}
	}

	rr := reserveRate(sumProb, sumInv)
	fractions := make([]stakeFraction, 0, len(included))
	for _, c := range included {
		f := 0.0
		if c.odds > 0 {
			f = c.prob - rr/c.odds
		}
		fractions = append(fractions, stakeFraction{label: c.edge.Label, fraction: f})
	}
	return fractions
}

// independentFractions sizes each edge with the classical formula as if it
// were the only bet.
func (e *Engine) independentFractions(cands []candidate) []stakeFraction {
	fractions := make([]stakeFraction, 0, len(cands))
	for _, c := range cands {
		fractions = append(fractions, stakeFraction{label: c.edge.Label, fraction: singleKelly(c)})
	}
	return fractions
}

// reserveRate is the expectation threshold a new candidate must beat to join
// the included set: (1 - Σ fairProbability) / (1 - Σ 1/decimalOdds). The
// empty set yields 1. A zero denominator is treated as a zero threshold so
// any positive-expectation candidate still qualifies.
func reserveRate(sumProb, sumInv float64) float64 {
	denom := 1.0 - sumInv
	if denom == 0 {
		return 0
	}
	return (1.0 - sumProb) / denom
}

// singleKelly is the classical single-bet fraction (p*d - 1) / (d - 1).
// Odds at or below even money cannot carry an edge, so they size to zero.
func singleKelly(c candidate) float64 {
	if c.odds <= 1 {
		return 0
	}
	return (c.prob*c.odds - 1.0) / (c.odds - 1.0)
}

// scaleFractions drops non-positive fractions, rescales proportionally when
// the survivors would over-commit the bankroll, and converts to rounded
// currency amounts.
func scaleFractions(fractions []stakeFraction, bankroll float64) []models.TaggedAmount {
	kept := make([]stakeFraction, 0, len(fractions))
	total := 0.0
	for _, f := range fractions {
		if f.fraction > 0 {
			kept = append(kept, f)
			total += f.fraction
		}
	}

	scale := 1.0
	if total > 1 {
		scale = 1.0 / total
	}

	stakes := make([]models.TaggedAmount, 0, len(kept))
	for _, f := range kept {
		stakes = append(stakes, models.TaggedAmount{
			Label:  f.label,
			Amount: RoundCents(f.fraction * scale * bankroll),
		})
	}
	return stakes
}
