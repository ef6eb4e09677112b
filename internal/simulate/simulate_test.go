package simulate

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/stake-engine/internal/models"
	"github.com/yourusername/stake-engine/internal/odds"
	"github.com/yourusername/stake-engine/internal/staking"
)

func newTestSimulator(seed int64) *Simulator {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	conv := odds.NewLocalConverter()
	engine := staking.NewEngine(conv, logger)
	return New(engine, conv, Config{Seed: seed}, logger)
}

func TestSimWinCertainOutcomeHasZeroVariance(t *testing.T) {
	edges := []models.Edge{
		{Label: "sure thing", Fair: models.NewProbability(1.0), Offered: models.NewDecimal(3.0)},
	}
	opts := models.StakingOptions{Bankroll: 100}

	// Full Kelly stakes the whole bankroll on a certainty: every trial
	// returns 300, so the net is 200 regardless of iterations or seed.
	one, err := newTestSimulator(1).SimWin(edges, 1, opts)
	require.NoError(t, err)
	many, err := newTestSimulator(99).SimWin(edges, 500, opts)
	require.NoError(t, err)

	assert.Equal(t, 200.00, one)
	assert.Equal(t, one, many)
}

func TestSimWinPropagatesNoPositiveEdge(t *testing.T) {
	edges := []models.Edge{
		{Label: "coin flip", Fair: models.NewProbability(0.50), Offered: models.NewMoneyline(-110)},
	}

	_, err := newTestSimulator(1).SimWin(edges, 100, models.StakingOptions{Bankroll: 100})
	assert.ErrorIs(t, err, models.ErrNoPositiveEdge)
}

func TestSimWinConvergesTowardExpectation(t *testing.T) {
	// Kelly stakes 17.50; expected net is 17.50*0.55*2.2 - 17.50 = 3.675.
	edges := []models.Edge{
		{Label: "value bet", Fair: models.NewProbability(0.55), Offered: models.NewDecimal(2.2)},
	}

	net, err := newTestSimulator(42).SimWin(edges, 20000, models.StakingOptions{Bankroll: 100})
	require.NoError(t, err)

	assert.InDelta(t, 3.675, net, 1.0)
	// Bounded by the best possible single trial: win every time.
	assert.LessOrEqual(t, net, 17.50*2.2-17.50)
	assert.GreaterOrEqual(t, net, -17.50)
}

func TestSimWinDefaultsIterations(t *testing.T) {
	edges := []models.Edge{
		{Label: "sure thing", Fair: models.NewProbability(1.0), Offered: models.NewDecimal(2.0)},
	}

	net, err := newTestSimulator(7).SimWin(edges, 0, models.StakingOptions{Bankroll: 100})
	require.NoError(t, err)
	assert.Equal(t, 100.00, net)
}

func TestSimWinMultiEdgeMutuallyExclusive(t *testing.T) {
	// All four edges survive selection and the fair probabilities cover the
	// whole outcome space, so the average converges on the exact EV of the
	// plan: sum of stake*prob*odds minus total staked.
	edges := []models.Edge{
		{Label: "favourite", Fair: models.NewProbability(0.75), Offered: models.NewFractional(3, 5)},
		{Label: "second", Fair: models.NewProbability(0.20), Offered: models.NewFractional(7, 2)},
		{Label: "longshot", Fair: models.NewProbability(0.04), Offered: models.NewFractional(30, 1)},
		{Label: "outsider", Fair: models.NewProbability(0.01), Offered: models.NewFractional(100, 1)},
	}

	net, err := newTestSimulator(1234).SimWin(edges, 50000, models.StakingOptions{Bankroll: 100})
	require.NoError(t, err)

	// EV = 4*1.24 + 75*1.2 + 1*1.01 + 20*0.9 - 100 = 13.97
	assert.InDelta(t, 13.97, net, 3.0)
}

func TestSimWinIndependentUsesJointEnumeration(t *testing.T) {
	edges := []models.Edge{
		{Label: "game one", Fair: models.NewProbability(1.0), Offered: models.NewDecimal(2.0)},
		{Label: "game two", Fair: models.NewProbability(1.0), Offered: models.NewDecimal(3.0)},
	}

	// Both certainties; independent Kelly stakes everything across the two,
	// rescaled to the bankroll. Payout is deterministic.
	net, err := newTestSimulator(5).SimWin(edges, 10, models.StakingOptions{Bankroll: 100, Independent: true})
	require.NoError(t, err)
	assert.Greater(t, net, 0.0)
}
