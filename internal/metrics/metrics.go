// Package metrics provides the centralized Prometheus metrics registry for the staking engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	ConversionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stake_engine",
		Name:      "price_conversions_total",
		Help:      "Total number of price conversions, by source and target format",
	}, []string{"from", "to"})
	ConversionCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stake_engine",
		Name:      "conversion_cache_hits_total",
		Help:      "Total number of conversion cache hits",
	})
	ConversionCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stake_engine",
		Name:      "conversion_cache_misses_total",
		Help:      "Total number of conversion cache misses",
	})
	KellyRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stake_engine",
		Name:      "kelly_runs_total",
		Help:      "Total number of Kelly sizing computations",
	})
	NoPositiveEdgeTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stake_engine",
		Name:      "no_positive_edge_total",
		Help:      "Total number of Kelly runs that found nothing worth staking",
	})
	ArbitrageDetectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stake_engine",
		Name:      "arbitrage_detected_total",
		Help:      "Total number of detected arbitrage opportunities",
	})
	NoArbitrageTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stake_engine",
		Name:      "no_arbitrage_total",
		Help:      "Total number of arbitrage checks that found no opportunity",
	})
	SimulationTrialsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stake_engine",
		Name:      "simulation_trials_total",
		Help:      "Total number of Monte Carlo trials sampled",
	})
)

// Gauge metrics
var (
	LastSimulatedNet = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "stake_engine",
		Name:      "last_simulated_net",
		Help:      "Net return estimated by the most recent simulation",
	})
	DistributionBuckets = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "stake_engine",
		Name:      "distribution_buckets",
		Help:      "Bucket count of the most recently built outcome distribution",
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(ConversionsTotal)
		registry.MustRegister(ConversionCacheHitsTotal)
		registry.MustRegister(ConversionCacheMissesTotal)
		registry.MustRegister(KellyRunsTotal)
		registry.MustRegister(NoPositiveEdgeTotal)
		registry.MustRegister(ArbitrageDetectedTotal)
		registry.MustRegister(NoArbitrageTotal)
		registry.MustRegister(SimulationTrialsTotal)

		registry.MustRegister(LastSimulatedNet)
		registry.MustRegister(DistributionBuckets)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}
