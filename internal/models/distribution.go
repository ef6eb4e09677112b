package models

// OutcomeBucket is one entry of an enumerated joint outcome table: the payoff
// multiplier each edge contributes if this outcome occurs, and the cumulative
// probability mass up to and including the bucket.
type OutcomeBucket struct {
	Payoffs    []float64 `json:"payoffs"`
	Cumulative float64   `json:"cumulative"`
}

// OutcomeDistribution is a discretized CDF over the joint win/loss space of a
// set of edges, ordered by increasing cumulative probability. The total mass
// may fall slightly short of 1 when the supplied probabilities carry
// estimation slack; consumers must tolerate that.
type OutcomeDistribution []OutcomeBucket

// Width returns the number of edges each payoff vector covers.
func (d OutcomeDistribution) Width() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0].Payoffs)
}
