package ga

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/neuroga/ga/nn"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 24, cfg.GA.PopulationSize)
	assert.Equal(t, nn.Topology{Inputs: 5, Outputs: 3, HiddenLayers: 3, NeuronsPerHiddenLayer: 8}, cfg.Topology())
}

func TestLoadConfigINI(t *testing.T) {
	path := writeConfig(t, "run.ini", `
# xor run
[GA]
population_size  = 30
elite_count      = 4
crossover_chance = 0.6
mutation_chance  = 0.1
seed             = 99

[Network]
num_inputs               = 2
num_outputs              = 1
num_hidden_layers        = 1
neurons_per_hidden_layer = 3

[History]
store   = sqlite   # on disk
db_path = runs.db
label   = xor baseline
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, GAConfig{PopulationSize: 30, EliteCount: 4, CrossoverChance: 0.6, MutationChance: 0.1, Seed: 99}, cfg.GA)
	assert.Equal(t, nn.Topology{Inputs: 2, Outputs: 1, HiddenLayers: 1, NeuronsPerHiddenLayer: 3}, cfg.Topology())
	assert.Equal(t, "sqlite", cfg.History.Store)
	assert.Equal(t, "runs.db", cfg.History.DBPath)
	assert.Equal(t, "xor baseline", cfg.History.Label)
}

func TestLoadConfigINIKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "partial.ini", "[GA]\npopulation_size = 10\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.GA.PopulationSize)
	assert.Equal(t, DefaultCrossoverChance, cfg.GA.CrossoverChance)
	assert.Equal(t, DefaultConfig().Network, cfg.Network)
	assert.Equal(t, "memory", cfg.History.Store)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "run.yaml", `
ga:
  population_size: 12
  elite_count: 3
  mutation_chance: 0.2
network:
  num_inputs: 4
  num_outputs: 2
  num_hidden_layers: 0
history:
  store: none
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.GA.PopulationSize)
	assert.Equal(t, 3, cfg.GA.EliteCount)
	assert.Equal(t, 0.2, cfg.GA.MutationChance)
	assert.Equal(t, DefaultCrossoverChance, cfg.GA.CrossoverChance)
	assert.Equal(t, nn.Topology{Inputs: 4, Outputs: 2, NeuronsPerHiddenLayer: 8}, cfg.Topology())
	assert.Equal(t, "none", cfg.History.Store)
}

func TestLoadConfigLowercasesStore(t *testing.T) {
	path := writeConfig(t, "case.ini", "[History]\nstore = Memory\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.History.Store)

	path = writeConfig(t, "case.yaml", "history:\n  store: SQLite\n  db_path: runs.db\n")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.History.Store)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"population", func(c *Config) { c.GA.PopulationSize = 0 }},
		{"elite", func(c *Config) { c.GA.EliteCount = -1 }},
		{"crossover", func(c *Config) { c.GA.CrossoverChance = 1.1 }},
		{"mutation", func(c *Config) { c.GA.MutationChance = -0.5 }},
		{"inputs", func(c *Config) { c.Network.NumInputs = 0 }},
		{"hidden-neurons", func(c *Config) { c.Network.NeuronsPerHiddenLayer = 0 }},
		{"store", func(c *Config) { c.History.Store = "redis" }},
		{"sqlite-path", func(c *Config) { c.History.Store = "sqlite" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "bad.ini", "[GA]\nmutation_chance = 2\n")
	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GA.PopulationSize = 7
	cfg.GA.EliteCount = 2
	cfg.GA.Seed = 5

	schema := WeightSchema(cfg.Topology().WeightCount())
	a, err := NewFromConfig(cfg, schema, WithLogger(quietLogger()))
	require.NoError(t, err)
	b, err := NewFromConfig(cfg, schema, WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, 7, a.Size())
	assert.Equal(t, 2, a.EliteCount())
	for i := 0; i < a.Size(); i++ {
		assert.Equal(t, a.Chromosome(i).Values(), b.Chromosome(i).Values(), "same seed, same population")
	}
}
