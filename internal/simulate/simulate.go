package simulate

import (
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/stake-engine/internal/metrics"
	"github.com/yourusername/stake-engine/internal/models"
	"github.com/yourusername/stake-engine/internal/odds"
	"github.com/yourusername/stake-engine/internal/staking"
)

// DefaultIterations is used when a caller asks for zero or fewer trials.
const DefaultIterations = 100

// Config configures the simulator. Seed 0 means time-seeded.
type Config struct {
	Seed                int64
	MaxIndependentEdges int
}

// Simulator estimates the net expected return of a Kelly staking plan.
type Simulator struct {
	engine         *staking.Engine
	conv           odds.Converter
	rng            Rand
	maxIndependent int
	logger         *logrus.Logger
}

// New creates a simulator with its own seeded random source.
func New(engine *staking.Engine, conv odds.Converter, cfg Config, logger *logrus.Logger) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithRand(engine, conv, cfg, rand.New(rand.NewSource(seed)), logger)
}

// NewWithRand creates a simulator drawing from the supplied variate source.
func NewWithRand(engine *staking.Engine, conv odds.Converter, cfg Config, rng Rand, logger *logrus.Logger) *Simulator {
	return &Simulator{
		engine:         engine,
		conv:           conv,
		rng:            rng,
		maxIndependent: cfg.MaxIndependentEdges,
		logger:         logger,
	}
}

// SimWin runs the full plan end to end: size the edges with Kelly, build the
// joint outcome distribution, sample it for the requested number of trials
// and report the average net win or loss of running the plan once. A plan
// Kelly rejects propagates ErrNoPositiveEdge instead of simulating.
func (s *Simulator) SimWin(edges []models.Edge, iterations int, opts models.StakingOptions) (float64, error) {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	sorted, err := s.sortByExpectation(edges)
	if err != nil {
		return 0, err
	}

	stakes, err := s.engine.Kelly(sorted, opts)
	if err != nil {
		return 0, err
	}

	dist, err := EdgeDistribution(s.conv, sorted, opts.Independent, s.maxIndependent)
	if err != nil {
		return 0, err
	}

	stakeVec, totalStaked := alignStakes(sorted, stakes)

	sum := 0.0
	for i := 0; i < iterations; i++ {
		payoffs := SampleOutcome(dist, s.rng)
		trial := 0.0
		for j, stake := range stakeVec {
			trial += stake * payoffs[j]
		}
		sum += trial
	}

	net := staking.RoundCents(sum/float64(iterations) - totalStaked)

	metrics.SimulationTrialsTotal.Add(float64(iterations))
	metrics.LastSimulatedNet.Set(net)
	s.logger.WithFields(logrus.Fields{
		"iterations":   iterations,
		"total_staked": totalStaked,
		"net":          net,
	}).Debug("Simulation completed")

	return net, nil
}

// sortByExpectation orders the edges by descending single-unit expectation,
// ties kept in input order, matching the order Kelly selection processes.
func (s *Simulator) sortByExpectation(edges []models.Edge) ([]models.Edge, error) {
	type ranked struct {
		edge models.Edge
		exp  float64
	}
	rankings := make([]ranked, 0, len(edges))
	for _, edge := range edges {
		exp, err := s.engine.Expectation(edge, 1)
		if err != nil {
			return nil, err
		}
		rankings = append(rankings, ranked{edge: edge, exp: exp})
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].exp > rankings[j].exp
	})

	sorted := make([]models.Edge, 0, len(rankings))
	for _, r := range rankings {
		sorted = append(sorted, r.edge)
	}
	return sorted, nil
}

// alignStakes maps the Kelly amounts back onto the sorted edge positions so
// trial returns can be computed per payoff vector. Edges the selection left
// out stake zero. Duplicate labels consume amounts first-come-first-served.
func alignStakes(sorted []models.Edge, stakes []models.TaggedAmount) ([]float64, float64) {
	byLabel := make(map[string][]float64, len(stakes))
	total := 0.0
	for _, stake := range stakes {
		byLabel[stake.Label] = append(byLabel[stake.Label], stake.Amount)
		total += stake.Amount
	}

	vec := make([]float64, len(sorted))
	for i, edge := range sorted {
		if amounts := byLabel[edge.Label]; len(amounts) > 0 {
			vec[i] = amounts[0]
			byLabel[edge.Label] = amounts[1:]
		}
	}
	return vec, total
}
