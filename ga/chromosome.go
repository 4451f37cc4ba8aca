package ga

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var (
	// ErrGenomeLength is returned when a value vector does not match the schema length.
	ErrGenomeLength = errors.New("genome length mismatch")
	// ErrSchemaMismatch is returned when two chromosomes of different schemas are combined.
	ErrSchemaMismatch = errors.New("schema mismatch")
)

// Allele is one named value of a genome.
type Allele struct {
	Name  string
	Value float64
}

// Genome is the ordered gene name → value mapping of a chromosome.
type Genome []Allele

// String returns the genome as {name: value, ...} in schema order.
func (g Genome) String() string {
	parts := make([]string, len(g))
	for i, a := range g {
		parts[i] = fmt.Sprintf("%s: %.4f", a.Name, a.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Chromosome is one genome instance plus its fitness score.
type Chromosome struct {
	schema  *Schema
	values  []float64
	Fitness float64 // Set by the environment; consumed by selection.
}

// NewChromosome builds a chromosome from explicit values in schema order.
func NewChromosome(schema *Schema, values []float64) (*Chromosome, error) {
	if len(values) != schema.Len() {
		return nil, fmt.Errorf("%w: got %d values, schema has %d genes", ErrGenomeLength, len(values), schema.Len())
	}
	return &Chromosome{
		schema: schema,
		values: append([]float64(nil), values...),
	}, nil
}

// NewRandomChromosome draws every gene from its kind's initial distribution.
func NewRandomChromosome(schema *Schema, rng *rand.Rand) (*Chromosome, error) {
	values := make([]float64, schema.Len())
	for i, g := range schema.genes {
		b, err := behaviorOf(g.Kind)
		if err != nil {
			return nil, fmt.Errorf("gene %q: %w", g.Name, err)
		}
		values[i] = b.randomValue(rng)
	}
	return &Chromosome{schema: schema, values: values}, nil
}

// Schema returns the shared schema.
func (c *Chromosome) Schema() *Schema {
	return c.schema
}

// Len is the genome length.
func (c *Chromosome) Len() int {
	return len(c.values)
}

// Genome returns a copy of the genome in schema order.
func (c *Chromosome) Genome() Genome {
	genome := make(Genome, len(c.values))
	for i, v := range c.values {
		genome[i] = Allele{Name: c.schema.genes[i].Name, Value: v}
	}
	return genome
}

// Values returns a copy of the genome values in schema order.
func (c *Chromosome) Values() []float64 {
	return append([]float64(nil), c.values...)
}

// Value returns the value of the named gene.
func (c *Chromosome) Value(name string) (float64, bool) {
	i, ok := c.schema.IndexOf(name)
	if !ok {
		return 0, false
	}
	return c.values[i], true
}

// SetValues overwrites the genome values in schema order.
// The environment uses it to copy network weights in at a generation boundary.
func (c *Chromosome) SetValues(values []float64) error {
	if len(values) != len(c.values) {
		return fmt.Errorf("%w: got %d values, genome has %d", ErrGenomeLength, len(values), len(c.values))
	}
	copy(c.values, values)
	return nil
}

// NormalizedFitness is the roulette weight: fitness above 1.0, else 1.0.
func (c *Chromosome) NormalizedFitness() float64 {
	if c.Fitness > 1.0 {
		return c.Fitness
	}
	return 1.0
}

// DNA encodes every value as C, T, A or G (cut points -0.5, 0, 0.5).
// It is a debugging fingerprint and plays no part in evolution.
func (c *Chromosome) DNA() string {
	var sb strings.Builder
	sb.Grow(len(c.values))
	for i, v := range c.values {
		b, err := behaviorOf(c.schema.genes[i].Kind)
		if err != nil {
			sb.WriteByte(dnaSymbol(v))
			continue
		}
		sb.WriteByte(b.symbol(v))
	}
	return sb.String()
}

// Mutate returns a new chromosome where each gene independently, with
// probability chance, is perturbed by its kind: continuous genes get a
// standard normal offset, binary genes flip. The receiver is not modified and
// the child starts with zero fitness.
func (c *Chromosome) Mutate(rng *rand.Rand, chance float64) (*Chromosome, error) {
	values := make([]float64, len(c.values))
	for i, v := range c.values {
		gene := c.schema.genes[i]
		if rng.Float64() >= chance {
			values[i] = v
			continue
		}
		b, err := behaviorOf(gene.Kind)
		if err != nil {
			return nil, fmt.Errorf("mutate gene %q: %w", gene.Name, err)
		}
		values[i] = b.mutateValue(rng, v)
	}
	return &Chromosome{schema: c.schema, values: values}, nil
}

// Crossover splices the two genomes at a uniform point pos in [0, len):
// the first child takes c[0,pos) + other[pos,end), the second
// other[0,pos) + c[pos,end). Both children start with zero fitness.
func (c *Chromosome) Crossover(rng *rand.Rand, other *Chromosome) (*Chromosome, *Chromosome, error) {
	if c.schema != other.schema || len(c.values) != len(other.values) {
		return nil, nil, ErrSchemaMismatch
	}
	pos := 0
	if len(c.values) > 0 {
		pos = rng.Intn(len(c.values))
	}
	a, b := c.crossoverAt(other, pos)
	return a, b, nil
}

// crossoverAt performs the single-point splice at a fixed position.
func (c *Chromosome) crossoverAt(other *Chromosome, pos int) (*Chromosome, *Chromosome) {
	n := len(c.values)
	a := make([]float64, 0, n)
	a = append(a, c.values[:pos]...)
	a = append(a, other.values[pos:]...)

	b := make([]float64, 0, n)
	b = append(b, other.values[:pos]...)
	b = append(b, c.values[pos:]...)

	return &Chromosome{schema: c.schema, values: a}, &Chromosome{schema: c.schema, values: b}
}

// Clone returns a deep copy, fitness included.
func (c *Chromosome) Clone() *Chromosome {
	return &Chromosome{
		schema:  c.schema,
		values:  append([]float64(nil), c.values...),
		Fitness: c.Fitness,
	}
}

// String returns a string representation of the Chromosome.
func (c *Chromosome) String() string {
	return fmt.Sprintf("Chromosome(Fitness: %.4f, DNA: %s)", c.Fitness, c.DNA())
}
