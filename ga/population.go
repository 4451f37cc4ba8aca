package ga

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// ErrPopulationSize is returned for an empty population or when the
// environment hands over a different number of agents than the population holds.
var ErrPopulationSize = errors.New("population size mismatch")

// Observer receives the statistics of every evaluated generation.
type Observer interface {
	Observe(stats GenerationStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(stats GenerationStats)

// Observe calls f(stats).
func (f ObserverFunc) Observe(stats GenerationStats) {
	f(stats)
}

// GeneticAlgorithm owns a fixed-size population and replaces it wholesale on
// every StepOver. It is not safe for concurrent use.
//
// Elitism here is soft: a positive elite count narrows the roulette parent
// pool to the top performers; nobody is cloned unchanged into the next
// generation.
type GeneticAlgorithm struct {
	schema          *Schema
	population      []*Chromosome
	eliteCount      int
	crossoverChance float64
	mutationChance  float64
	generation      int

	rng       *rand.Rand
	logger    *slog.Logger
	observers []Observer
}

// Option configures a GeneticAlgorithm.
type Option func(*GeneticAlgorithm) error

// WithRand sets the random source. Defaults to one seeded from the clock.
func WithRand(rng *rand.Rand) Option {
	return func(ga *GeneticAlgorithm) error {
		if rng == nil {
			return fmt.Errorf("random source is required")
		}
		ga.rng = rng
		return nil
	}
}

// WithEliteCount restricts the parent pool to the top n chromosomes (0 = everyone).
func WithEliteCount(n int) Option {
	return func(ga *GeneticAlgorithm) error {
		return ga.SetEliteCount(n)
	}
}

// WithCrossoverChance overrides DefaultCrossoverChance.
func WithCrossoverChance(p float64) Option {
	return func(ga *GeneticAlgorithm) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("crossover chance must be between 0 and 1, got %f", p)
		}
		ga.crossoverChance = p
		return nil
	}
}

// WithMutationChance overrides DefaultMutationChance.
func WithMutationChance(p float64) Option {
	return func(ga *GeneticAlgorithm) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("mutation chance must be between 0 and 1, got %f", p)
		}
		ga.mutationChance = p
		return nil
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ga *GeneticAlgorithm) error {
		if logger != nil {
			ga.logger = logger
		}
		return nil
	}
}

// WithObserver registers an observer notified by Epoch.
func WithObserver(o Observer) Option {
	return func(ga *GeneticAlgorithm) error {
		if o != nil {
			ga.observers = append(ga.observers, o)
		}
		return nil
	}
}

// New creates a population of size random chromosomes over schema.
func New(schema *Schema, size int, opts ...Option) (*GeneticAlgorithm, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema is required")
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: population size must be positive, got %d", ErrPopulationSize, size)
	}

	ga := &GeneticAlgorithm{
		schema:          schema,
		crossoverChance: DefaultCrossoverChance,
		mutationChance:  DefaultMutationChance,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(ga); err != nil {
			return nil, err
		}
	}
	if ga.rng == nil {
		ga.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ga.population = make([]*Chromosome, size)
	for i := range ga.population {
		c, err := NewRandomChromosome(schema, ga.rng)
		if err != nil {
			return nil, fmt.Errorf("failed to create chromosome %d: %w", i, err)
		}
		ga.population[i] = c
	}
	return ga, nil
}

// NewFromConfig creates a GeneticAlgorithm from the [GA] section of cfg.
// A zero seed means a clock-derived seed.
func NewFromConfig(cfg *Config, schema *Schema, opts ...Option) (*GeneticAlgorithm, error) {
	seed := cfg.GA.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	base := []Option{
		WithRand(rand.New(rand.NewSource(seed))),
		WithEliteCount(cfg.GA.EliteCount),
		WithCrossoverChance(cfg.GA.CrossoverChance),
		WithMutationChance(cfg.GA.MutationChance),
	}
	return New(schema, cfg.GA.PopulationSize, append(base, opts...)...)
}

// Schema returns the schema shared by every chromosome.
func (ga *GeneticAlgorithm) Schema() *Schema {
	return ga.schema
}

// Size is the fixed population size N.
func (ga *GeneticAlgorithm) Size() int {
	return len(ga.population)
}

// Generation counts completed StepOver calls.
func (ga *GeneticAlgorithm) Generation() int {
	return ga.generation
}

// EliteCount returns the parent-pool restriction (0 = none).
func (ga *GeneticAlgorithm) EliteCount() int {
	return ga.eliteCount
}

// SetEliteCount sets the parent-pool restriction. Values above the
// population size behave like the whole population.
func (ga *GeneticAlgorithm) SetEliteCount(n int) error {
	if n < 0 {
		return fmt.Errorf("elite count cannot be negative, got %d", n)
	}
	ga.eliteCount = n
	return nil
}

// CrossoverChance returns the pair crossover probability.
func (ga *GeneticAlgorithm) CrossoverChance() float64 {
	return ga.crossoverChance
}

// MutationChance returns the per-gene mutation probability.
func (ga *GeneticAlgorithm) MutationChance() float64 {
	return ga.mutationChance
}

// Population returns the chromosomes in their current order. The slice is a
// copy; the chromosomes are shared so the environment can set Fitness.
func (ga *GeneticAlgorithm) Population() []*Chromosome {
	return append([]*Chromosome(nil), ga.population...)
}

// Chromosome returns the i-th chromosome.
func (ga *GeneticAlgorithm) Chromosome(i int) *Chromosome {
	return ga.population[i]
}

// StepOver replaces the population with a new generation bred from the
// current fitness values. With elitism the population is first stably
// sorted by fitness so the parent pool holds the best performers.
//
// Children are produced in pairs; for an odd population the surplus child of
// the last pair is dropped so the size stays N. Fitness of the new
// generation is zero and evaluating it is the caller's job.
func (ga *GeneticAlgorithm) StepOver() error {
	n := len(ga.population)
	if ga.eliteCount > 0 {
		ga.sortByFitness()
	}

	next := make([]*Chromosome, 0, n+1)
	for len(next) < n {
		left := ga.fetchChromosomeByRoulette()
		right := ga.fetchChromosomeByRoulette()

		leftChild, rightChild, err := ga.breed(left, right)
		if err != nil {
			return fmt.Errorf("breeding generation %d failed: %w", ga.generation+1, err)
		}
		next = append(next, leftChild, rightChild)
	}

	ga.population = next[:n]
	ga.generation++

	ga.logger.Debug("population stepped over",
		slog.Int("generation", ga.generation),
		slog.Int("size", n),
		slog.Int("elite_count", ga.eliteCount),
	)
	return nil
}
