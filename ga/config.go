package ga

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/baldhumanity/neuroga/ga/nn"
)

// ErrInvalidConfig wraps every validation failure of a Config.
var ErrInvalidConfig = errors.New("config error")

// Config stores the parameters of one evolution run.
type Config struct {
	GA      GAConfig      `yaml:"ga"`
	Network NetworkConfig `yaml:"network"`
	History HistoryConfig `yaml:"history"`
}

// GAConfig holds the population and variation parameters.
type GAConfig struct {
	PopulationSize  int     `ini:"population_size" yaml:"population_size"`
	EliteCount      int     `ini:"elite_count" yaml:"elite_count"` // 0 = whole population is the parent pool
	CrossoverChance float64 `ini:"crossover_chance" yaml:"crossover_chance"`
	MutationChance  float64 `ini:"mutation_chance" yaml:"mutation_chance"`
	Seed            int64   `ini:"seed" yaml:"seed"` // 0 = seed from the clock
}

// NetworkConfig holds the brain topology.
type NetworkConfig struct {
	NumInputs             int `ini:"num_inputs" yaml:"num_inputs"`
	NumOutputs            int `ini:"num_outputs" yaml:"num_outputs"`
	NumHiddenLayers       int `ini:"num_hidden_layers" yaml:"num_hidden_layers"`
	NeuronsPerHiddenLayer int `ini:"neurons_per_hidden_layer" yaml:"neurons_per_hidden_layer"`
}

// HistoryConfig selects where generation statistics are recorded.
type HistoryConfig struct {
	Store  string `ini:"store" yaml:"store"` // memory, sqlite or none
	DBPath string `ini:"db_path" yaml:"db_path"`
	Label  string `ini:"label" yaml:"label"`
}

// DefaultConfig returns the fleet setup: 24 agents driving 5-3-3x8 brains.
func DefaultConfig() *Config {
	return &Config{
		GA: GAConfig{
			PopulationSize:  24,
			CrossoverChance: DefaultCrossoverChance,
			MutationChance:  DefaultMutationChance,
		},
		Network: NetworkConfig{
			NumInputs:             5,
			NumOutputs:            3,
			NumHiddenLayers:       3,
			NeuronsPerHiddenLayer: 8,
		},
		History: HistoryConfig{
			Store: "memory",
		},
	}
}

// LoadConfig loads an INI file, or a YAML file when the name ends in .yaml
// or .yml. Keys missing from the file keep their DefaultConfig values.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
		}
	default:
		cfg, err := ini.LoadSources(ini.LoadOptions{
			IgnoreInlineComment:         true,
			UnescapeValueCommentSymbols: true,
		}, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
		}
		if err := cfg.Section("GA").MapTo(&config.GA); err != nil {
			return nil, fmt.Errorf("failed to map [GA] section: %w", err)
		}
		if err := cfg.Section("Network").MapTo(&config.Network); err != nil {
			return nil, fmt.Errorf("failed to map [Network] section: %w", err)
		}
		if err := cfg.Section("History").MapTo(&config.History); err != nil {
			return nil, fmt.Errorf("failed to map [History] section: %w", err)
		}
	}

	config.History.Store = strings.ToLower(cleanIniString(config.History.Store))
	config.History.DBPath = cleanIniString(config.History.DBPath)
	config.History.Label = strings.TrimSpace(config.History.Label)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every value for range and consistency.
func (c *Config) Validate() error {
	if c.GA.PopulationSize <= 0 {
		return fmt.Errorf("%w: population_size must be positive", ErrInvalidConfig)
	}
	if c.GA.EliteCount < 0 {
		return fmt.Errorf("%w: elite_count cannot be negative", ErrInvalidConfig)
	}
	if c.GA.CrossoverChance < 0 || c.GA.CrossoverChance > 1 {
		return fmt.Errorf("%w: crossover_chance must be between 0 and 1", ErrInvalidConfig)
	}
	if c.GA.MutationChance < 0 || c.GA.MutationChance > 1 {
		return fmt.Errorf("%w: mutation_chance must be between 0 and 1", ErrInvalidConfig)
	}
	if err := c.Topology().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch strings.ToLower(c.History.Store) {
	case "", "none", "memory":
	case "sqlite":
		if c.History.DBPath == "" {
			return fmt.Errorf("%w: db_path is required for the sqlite store", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: invalid store '%s', must be one of 'memory', 'sqlite', 'none'", ErrInvalidConfig, c.History.Store)
	}
	return nil
}

// Topology returns the network shape described by the [Network] section.
func (c *Config) Topology() nn.Topology {
	return nn.Topology{
		Inputs:                c.Network.NumInputs,
		Outputs:               c.Network.NumOutputs,
		HiddenLayers:          c.Network.NumHiddenLayers,
		NeuronsPerHiddenLayer: c.Network.NeuronsPerHiddenLayer,
	}
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
