package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/stake-engine/internal/models"
)

// scriptedRand replays a fixed sequence of variates.
type scriptedRand struct {
	values []float64
	next   int
}

func (s *scriptedRand) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestSampleOutcomePicksFirstCoveringBucket(t *testing.T) {
	dist := models.OutcomeDistribution{
		{Payoffs: []float64{2.0, 0}, Cumulative: 0.6},
		{Payoffs: []float64{0, 4.0}, Cumulative: 0.9},
	}

	assert.Equal(t, []float64{2.0, 0}, SampleOutcome(dist, &scriptedRand{values: []float64{0.0}}))
	assert.Equal(t, []float64{2.0, 0}, SampleOutcome(dist, &scriptedRand{values: []float64{0.59}}))
	assert.Equal(t, []float64{0, 4.0}, SampleOutcome(dist, &scriptedRand{values: []float64{0.61}}))
	// Exact boundary lands in the bucket that reaches it.
	assert.Equal(t, []float64{2.0, 0}, SampleOutcome(dist, &scriptedRand{values: []float64{0.6}}))
}

func TestSampleOutcomeFallsBackToZeroVector(t *testing.T) {
	dist := models.OutcomeDistribution{
		{Payoffs: []float64{2.0, 0}, Cumulative: 0.6},
		{Payoffs: []float64{0, 4.0}, Cumulative: 0.9},
	}

	// A draw beyond the total mass is a guaranteed loss, not a failure.
	assert.Equal(t, []float64{0, 0}, SampleOutcome(dist, &scriptedRand{values: []float64{0.95}}))
}
