// Package config loads engine settings from YAML, a .env file and environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"cip-engine/internal/domain"
)

const dateLayout = "2006-01-02"

// Config captures the settings shared by the compare and dashboard commands.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Comparison ComparisonConfig `yaml:"comparison"`
	Dashboard  DashboardConfig  `yaml:"dashboard"`
}

// SimulationConfig overrides the synthetic-run assumptions.
type SimulationConfig struct {
	HorizonDays     int     `yaml:"horizonDays"`
	AssetCount      int     `yaml:"assetCount"`
	StartDate       string  `yaml:"startDate"` // YYYY-MM-DD
	LookbackDays    int     `yaml:"lookbackDays"`
	TestFraction    float64 `yaml:"testFraction"`
	SplitSeed       int64   `yaml:"splitSeed"`
	RiskSensitivity float64 `yaml:"riskSensitivity"`
}

// ComparisonConfig controls the scenario comparator.
type ComparisonConfig struct {
	Seed      int64            `yaml:"seed"`
	Workers   int              `yaml:"workers"`
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

// ScenarioConfig is one named parameter set. Order in the file is run order.
type ScenarioConfig struct {
	Name              string  `yaml:"name"`
	WeibullBeta       float64 `yaml:"weibullBeta"`
	MTBFMin           int     `yaml:"mtbfMin"`
	MTBFMax           int     `yaml:"mtbfMax"`
	DegradationFactor float64 `yaml:"degradationFactor"`
}

// DashboardConfig controls the dashboard HTTP API.
type DashboardConfig struct {
	Address         string        `yaml:"address"`
	GracefulTimeout time.Duration `yaml:"gracefulTimeout"`
	AllowedOrigins  []string      `yaml:"allowedOrigins"`
	StreamInterval  time.Duration `yaml:"streamInterval"` // delay between streamed curve points
}

// Load initialises Config from a YAML file and optional environment overrides.
// A .env file in the working directory is applied first without overriding
// variables already set.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CIP_CONFIG")
	}

	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Domain(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfig() Config {
	sim := domain.DefaultSimulationConfig()

	scenarios := make([]ScenarioConfig, 0, 3)
	for _, sc := range domain.DefaultScenarios() {
		scenarios = append(scenarios, ScenarioConfig{
			Name:              sc.Name,
			WeibullBeta:       sc.Params.WeibullBeta,
			MTBFMin:           sc.Params.MTBFRange.Min,
			MTBFMax:           sc.Params.MTBFRange.Max,
			DegradationFactor: sc.Params.DegradationFactor,
		})
	}

	return Config{
		Simulation: SimulationConfig{
			HorizonDays:     sim.HorizonDays,
			AssetCount:      sim.AssetCount,
			StartDate:       sim.StartDate.Format(dateLayout),
			LookbackDays:    sim.LookbackDays,
			TestFraction:    sim.TestFraction,
			SplitSeed:       sim.SplitSeed,
			RiskSensitivity: sim.RiskSensitivity,
		},
		Comparison: ComparisonConfig{
			Seed:      42,
			Workers:   1,
			Scenarios: scenarios,
		},
		Dashboard: DashboardConfig{
			Address:         ":8080",
			GracefulTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
			StreamInterval:  0,
		},
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("CIP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse CIP_SEED: %w", err)
		}
		cfg.Comparison.Seed = seed
	}
	if v := os.Getenv("CIP_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse CIP_WORKERS: %w", err)
		}
		cfg.Comparison.Workers = workers
	}
	if v := os.Getenv("CIP_HORIZON_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse CIP_HORIZON_DAYS: %w", err)
		}
		cfg.Simulation.HorizonDays = days
	}
	if v := os.Getenv("CIP_ASSET_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse CIP_ASSET_COUNT: %w", err)
		}
		cfg.Simulation.AssetCount = n
	}
	if v := os.Getenv("CIP_DASHBOARD_ADDR"); v != "" {
		cfg.Dashboard.Address = v
	}
	return nil
}

// Domain holds the config converted to engine types.
type Domain struct {
	Simulation domain.SimulationConfig
	Scenarios  []domain.NamedScenario
}

// Domain converts and validates the config.
func (c *Config) Domain() (*Domain, error) {
	sim := domain.DefaultSimulationConfig()
	sim.HorizonDays = c.Simulation.HorizonDays
	sim.AssetCount = c.Simulation.AssetCount
	sim.LookbackDays = c.Simulation.LookbackDays
	sim.TestFraction = c.Simulation.TestFraction
	sim.SplitSeed = c.Simulation.SplitSeed
	sim.RiskSensitivity = c.Simulation.RiskSensitivity

	if c.Simulation.StartDate != "" {
		start, err := time.Parse(dateLayout, c.Simulation.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parse simulation.startDate: %w", err)
		}
		sim.StartDate = start
	}
	if err := sim.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	if len(c.Comparison.Scenarios) == 0 {
		return nil, fmt.Errorf("comparison: %w: no scenarios configured", domain.ErrInvalidParams)
	}
	seen := make(map[string]bool, len(c.Comparison.Scenarios))
	scenarios := make([]domain.NamedScenario, 0, len(c.Comparison.Scenarios))
	for i, sc := range c.Comparison.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("comparison.scenarios[%d]: %w: missing name", i, domain.ErrInvalidParams)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("comparison.scenarios[%d]: %w: duplicate name %s", i, domain.ErrInvalidParams, sc.Name)
		}
		seen[sc.Name] = true

		params := domain.ScenarioParams{
			WeibullBeta:       sc.WeibullBeta,
			MTBFRange:         domain.MTBFRange{Min: sc.MTBFMin, Max: sc.MTBFMax},
			DegradationFactor: sc.DegradationFactor,
		}
		if err := params.Validate(); err != nil {
			return nil, fmt.Errorf("comparison.scenarios[%d] %s: %w", i, sc.Name, err)
		}
		scenarios = append(scenarios, domain.NamedScenario{Name: sc.Name, Params: params})
	}

	return &Domain{Simulation: sim, Scenarios: scenarios}, nil
}
