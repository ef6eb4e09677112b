// Package main provides the staker CLI: expectation, Kelly, arbitrage and
// simulation over a list of edges supplied as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/stake-engine/internal/config"
	"github.com/yourusername/stake-engine/internal/logger"
	"github.com/yourusername/stake-engine/internal/metrics"
	"github.com/yourusername/stake-engine/internal/models"
	"github.com/yourusername/stake-engine/internal/odds"
	"github.com/yourusername/stake-engine/internal/simulate"
	"github.com/yourusername/stake-engine/internal/staking"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile  string
	edgesFile   string
	bankroll    float64
	independent bool
	iterations  int
	seed        int64

	log    *logrus.Logger
	cfg    *config.Config
	engine *staking.Engine
	conv   odds.Converter
	runID  uuid.UUID
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&edgesFile, "edges", "e", "edges.json", "Path to JSON file of edges")
	rootCmd.PersistentFlags().Float64VarP(&bankroll, "bankroll", "b", 0, "Bankroll override (0 uses configured default)")
	rootCmd.PersistentFlags().BoolVar(&independent, "independent", false, "Treat edges as independent events instead of mutually exclusive outcomes")

	simCmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "Number of trials (0 uses configured default)")
	simCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 means time-seeded)")

	rootCmd.AddCommand(evCmd, kellyCmd, arbCmd, simCmd)
}

var rootCmd = &cobra.Command{
	Use:     "staker",
	Short:   "Size wagers with Kelly, arbitrage and Monte Carlo tooling",
	Version: fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		return nil
	},
	SilenceUsage: true,
}

var evCmd = &cobra.Command{
	Use:   "ev",
	Short: "Expected return of staking the bankroll on each edge",
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, opts, err := loadInputs()
		if err != nil {
			return err
		}
		amounts, err := engine.EV(edges, opts)
		if err != nil {
			return err
		}
		return printJSON(amounts)
	},
}

var kellyCmd = &cobra.Command{
	Use:   "kelly",
	Short: "Optimal-growth stake sizes for the edges worth betting",
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, opts, err := loadInputs()
		if err != nil {
			return err
		}
		stakes, err := engine.Kelly(edges, opts)
		if err != nil {
			return err
		}
		return printJSON(stakes)
	},
}

var arbCmd = &cobra.Command{
	Use:   "arb",
	Short: "Riskless stake split across mutually exclusive outcomes, if one exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, opts, err := loadInputs()
		if err != nil {
			return err
		}
		plan, err := engine.Arb(edges, opts)
		if err != nil {
			return err
		}
		return printJSON(plan)
	},
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Monte Carlo estimate of the Kelly plan's net expected return",
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, opts, err := loadInputs()
		if err != nil {
			return err
		}

		simCfg := simulate.Config{
			Seed:                seed,
			MaxIndependentEdges: cfg.Simulation.MaxIndependentEdges,
		}
		if simCfg.Seed == 0 {
			simCfg.Seed = cfg.Simulation.Seed
		}
		trials := iterations
		if trials <= 0 {
			trials = cfg.Simulation.Iterations
		}

		sim := simulate.New(engine, conv, simCfg, log)
		net, err := sim.SimWin(edges, trials, opts)
		if err != nil {
			return err
		}
		return printJSON(map[string]interface{}{"iterations": trials, "net": net})
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() error {
	loaded, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = loaded

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log = logger.NewLogger(cfg.App.LogLevel)
	runID = uuid.New()
	log.WithFields(logrus.Fields{
		"run_id":      runID,
		"environment": cfg.App.Environment,
	}).Debug("Staker starting")

	conv = buildConverter(cfg, log)
	engine = staking.NewEngine(conv, log)

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Address)
	}

	return nil
}

func buildConverter(cfg *config.Config, log *logrus.Logger) odds.Converter {
	var base odds.Converter
	if cfg.Converter.Mode == "http" {
		base = odds.NewHTTPConverter(&cfg.Converter, log)
	} else {
		base = odds.NewLocalConverter()
	}

	if !cfg.Converter.CacheEnabled {
		return base
	}
	return odds.NewCachedConverter(
		base,
		time.Duration(cfg.Converter.CacheTTLSeconds)*time.Second,
		cfg.Converter.CacheMaxSize,
		log,
	)
}

func serveMetrics(address string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(address, mux); err != nil {
		log.WithError(err).Warn("Metrics server stopped")
	}
}

func loadInputs() ([]models.Edge, models.StakingOptions, error) {
	data, err := os.ReadFile(edgesFile)
	if err != nil {
		return nil, models.StakingOptions{}, fmt.Errorf("failed to read edges file: %w", err)
	}

	var edges []models.Edge
	if err := json.Unmarshal(data, &edges); err != nil {
		return nil, models.StakingOptions{}, fmt.Errorf("failed to parse edges file: %w", err)
	}
	if len(edges) == 0 {
		return nil, models.StakingOptions{}, fmt.Errorf("edges file %s contains no edges", edgesFile)
	}

	opts := models.StakingOptions{
		Bankroll:    cfg.Staking.DefaultBankroll,
		Independent: cfg.Staking.Independent,
	}
	if bankroll > 0 {
		opts.Bankroll = bankroll
	}
	if rootCmd.PersistentFlags().Changed("independent") {
		opts.Independent = independent
	}

	log.WithFields(logrus.Fields{
		"run_id":      runID,
		"edges":       len(edges),
		"bankroll":    opts.Bankroll,
		"independent": opts.Independent,
	}).Debug("Inputs loaded")

	return edges, opts, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
