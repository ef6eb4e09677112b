package simulate

import "github.com/yourusername/stake-engine/internal/models"

// Rand is the uniform-variate source the sampler draws from. *rand.Rand
// satisfies it; tests substitute a scripted sequence to pin bucket selection.
type Rand interface {
	Float64() float64
}

// SampleOutcome draws one payoff vector from the CDF: the first bucket whose
// cumulative probability reaches the drawn variate wins. A draw past the
// total mass (possible when the mass is below 1) returns an all-zero vector,
// a guaranteed loss, rather than failing or renormalizing.
func SampleOutcome(dist models.OutcomeDistribution, rng Rand) []float64 {
	u := rng.Float64()
	for _, bucket := range dist {
		if bucket.Cumulative >= u {
			return bucket.Payoffs
		}
	}
	return make([]float64, dist.Width())
}
