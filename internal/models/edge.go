package models

// DefaultBankroll is the capital assumed when StakingOptions does not set one.
const DefaultBankroll = 100.0

// Edge represents one candidate wager: the estimator's fair price against the
// price a counter-party is offering.
type Edge struct {
	Label   string `json:"label" validate:"required"`
	Fair    Price  `json:"fair" validate:"required"`
	Offered Price  `json:"offered" validate:"required"`
}

// StakingOptions controls how simultaneous edges are sized.
//
// Independent selects between treating the edges as mutually exclusive
// outcomes of one event (false, the default) or as independent events that
// can all win at once (true).
type StakingOptions struct {
	Bankroll    float64 `json:"bankroll" validate:"gte=0"`
	Independent bool    `json:"independent"`
}

// DefaultStakingOptions returns options with the default bankroll.
func DefaultStakingOptions() StakingOptions {
	return StakingOptions{Bankroll: DefaultBankroll}
}

// TaggedAmount ties a monetary result back to the label of the edge that
// produced it.
type TaggedAmount struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// ArbPlan is a set of stakes whose payout is the same whichever outcome
// occurs, plus the guaranteed profit net of the total staked.
type ArbPlan struct {
	Sizes  []TaggedAmount `json:"sizes"`
	Profit float64        `json:"profit"`
}
