// Package simulate estimates the realized performance of a staking plan by
// Monte Carlo sampling over the joint outcome space of the edges.
package simulate

import (
	"fmt"

	"github.com/yourusername/stake-engine/internal/metrics"
	"github.com/yourusername/stake-engine/internal/models"
	"github.com/yourusername/stake-engine/internal/odds"
)

// DefaultMaxIndependentEdges caps independent-mode enumeration. Building the
// joint distribution for n independent edges enumerates 2^n outcomes, so the
// cap keeps the builder feasible; it does not apply to the mutually-exclusive
// mode, which is linear.
const DefaultMaxIndependentEdges = 20

// EdgeDistribution enumerates the joint probability distribution over the
// edges' win/loss combinations and folds it into a CDF.
//
// Independent mode models every edge as its own Bernoulli trial: each of the
// 2^n subsets of winners gets a payoff vector holding the decimal odds of the
// winning positions and the product probability of exactly that subset
// occurring. Mutually-exclusive mode enumerates n one-hot outcomes, one per
// edge, each carrying that edge's fair probability.
//
// The cumulative mass may come out slightly below 1 when the supplied fair
// probabilities carry estimation slack; the sampler treats the gap as a
// guaranteed loss.
func EdgeDistribution(conv odds.Converter, edges []models.Edge, independent bool, maxIndependent int) (models.OutcomeDistribution, error) {
	if maxIndependent <= 0 {
		maxIndependent = DefaultMaxIndependentEdges
	}

	type terms struct{ prob, odds float64 }
	perEdge := make([]terms, 0, len(edges))
	for _, edge := range edges {
		p, err := odds.Probability(conv, edge.Fair)
		if err != nil {
			return nil, err
		}
		d, err := odds.Decimal(conv, edge.Offered)
		if err != nil {
			return nil, err
		}
		perEdge = append(perEdge, terms{prob: p, odds: d})
	}

	n := len(perEdge)
	var dist models.OutcomeDistribution

	if independent {
		if n > maxIndependent {
			return nil, fmt.Errorf("%w: %d edges, cap %d", models.ErrDistributionTooLarge, n, maxIndependent)
		}
		dist = make(models.OutcomeDistribution, 0, 1<<n)
		cumulative := 0.0
		for mask := 0; mask < 1<<n; mask++ {
			payoffs := make([]float64, n)
			prob := 1.0
			for i, t := range perEdge {
				if mask&(1<<i) != 0 {
					payoffs[i] = t.odds
					prob *= t.prob
				} else {
					prob *= 1.0 - t.prob
				}
			}
			cumulative += prob
			dist = append(dist, models.OutcomeBucket{Payoffs: payoffs, Cumulative: cumulative})
		}
	} else {
		dist = make(models.OutcomeDistribution, 0, n)
		cumulative := 0.0
		for i, t := range perEdge {
			payoffs := make([]float64, n)
			payoffs[i] = t.odds
			cumulative += t.prob
			dist = append(dist, models.OutcomeBucket{Payoffs: payoffs, Cumulative: cumulative})
		}
	}

	metrics.DistributionBuckets.Set(float64(len(dist)))
	return dist, nil
}
