package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/stake-engine/internal/models"
)

func TestExpectationSingleUnit(t *testing.T) {
	engine := newTestEngine()

	exp, err := engine.Expectation(models.Edge{
		Label:   "fair coin at even money",
		Fair:    models.NewProbability(0.5),
		Offered: models.NewDecimal(2.0),
	}, 1)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, exp, 1e-12)
}

func TestEVPreservesInputOrder(t *testing.T) {
	engine := newTestEngine()

	amounts, err := engine.EV([]models.Edge{
		{Label: "underpriced", Fair: models.NewProbability(0.55), Offered: models.NewMoneyline(-110)},
		{Label: "fair", Fair: models.NewProbability(0.5), Offered: models.NewDecimal(2.0)},
		{Label: "overpriced", Fair: models.NewProbability(0.4), Offered: models.NewDecimal(2.0)},
	}, models.StakingOptions{Bankroll: 100})

	require.NoError(t, err)
	require.Len(t, amounts, 3)

	assert.Equal(t, models.TaggedAmount{Label: "underpriced", Amount: 105.00}, amounts[0])
	assert.Equal(t, models.TaggedAmount{Label: "fair", Amount: 100.00}, amounts[1])
	// A losing proposition yields a value below the bankroll, not an error.
	assert.Equal(t, models.TaggedAmount{Label: "overpriced", Amount: 80.00}, amounts[2])
}

func TestEVNegativeBankroll(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.EV([]models.Edge{
		{Label: "any", Fair: models.NewProbability(0.5), Offered: models.NewDecimal(2.0)},
	}, models.StakingOptions{Bankroll: -10})

	assert.ErrorIs(t, err, models.ErrNegativeBankroll)
}

func TestRoundCentsHalfUp(t *testing.T) {
	assert.Equal(t, 5.50, RoundCents(5.495))
	assert.Equal(t, 1.01, RoundCents(1.005))
	assert.Equal(t, 0.00, RoundCents(0.0))
	assert.Equal(t, -1.01, RoundCents(-1.005))
}
