package ga

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrUnknownGeneKind is returned when a gene's kind has no registered behaviour.
	ErrUnknownGeneKind = errors.New("unknown gene kind")
	// ErrDuplicateGene is returned when a schema names the same gene twice.
	ErrDuplicateGene = errors.New("duplicate gene name")
)

// GeneKind is the closed set of gene value types.
type GeneKind int

const (
	// Continuous genes hold any real value.
	Continuous GeneKind = iota
	// Binary genes hold 0 or 1.
	Binary
)

// String returns the kind's name.
func (k GeneKind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("GeneKind(%d)", int(k))
	}
}

// --------------------------- Gene behaviours ---------------------------

// geneBehavior is the capability set every gene kind carries.
type geneBehavior interface {
	randomValue(rng *rand.Rand) float64
	mutateValue(rng *rand.Rand, value float64) float64
	symbol(value float64) byte
}

type continuousBehavior struct{}

// randomValue draws 2*(U1-U2): triangular on (-2, 2), not uniform.
func (continuousBehavior) randomValue(rng *rand.Rand) float64 {
	return 2 * (rng.Float64() - rng.Float64())
}

func (continuousBehavior) mutateValue(rng *rand.Rand, value float64) float64 {
	return value + rng.NormFloat64()
}

func (continuousBehavior) symbol(value float64) byte {
	return dnaSymbol(value)
}

type binaryBehavior struct{}

func (binaryBehavior) randomValue(rng *rand.Rand) float64 {
	return float64(rng.Intn(2))
}

func (binaryBehavior) mutateValue(_ *rand.Rand, value float64) float64 {
	return 1 - value
}

func (binaryBehavior) symbol(value float64) byte {
	return dnaSymbol(value)
}

var behaviors = map[GeneKind]geneBehavior{
	Continuous: continuousBehavior{},
	Binary:     binaryBehavior{},
}

// behaviorOf resolves a kind to its behaviour or ErrUnknownGeneKind.
func behaviorOf(kind GeneKind) (geneBehavior, error) {
	b, ok := behaviors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGeneKind, kind)
	}
	return b, nil
}

// dnaSymbol buckets a gene value into one of C, T, A, G.
func dnaSymbol(value float64) byte {
	switch {
	case value < -0.5:
		return 'C'
	case value < 0.0:
		return 'T'
	case value < 0.5:
		return 'A'
	default:
		return 'G'
	}
}

// --------------------------- Gene / Schema ---------------------------

// Gene names one scalar slot of a genome and declares its kind.
type Gene struct {
	Name string
	Kind GeneKind
}

// String returns a string representation of the Gene.
func (g Gene) String() string {
	return fmt.Sprintf("Gene(%s: %s)", g.Name, g.Kind)
}

// Schema is the ordered, immutable list of genes shared by every chromosome
// of a population. Build it once with NewSchema or WeightSchema and pass it
// to every chromosome constructor.
type Schema struct {
	genes []Gene
	index map[string]int
}

// NewSchema validates the genes and returns a schema preserving their order.
// Names must be unique and non-empty; kinds must be Continuous or Binary.
func NewSchema(genes ...Gene) (*Schema, error) {
	s := &Schema{
		genes: make([]Gene, len(genes)),
		index: make(map[string]int, len(genes)),
	}
	for i, g := range genes {
		if g.Name == "" {
			return nil, fmt.Errorf("gene %d has an empty name", i)
		}
		if _, err := behaviorOf(g.Kind); err != nil {
			return nil, fmt.Errorf("gene %q: %w", g.Name, err)
		}
		if _, exists := s.index[g.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGene, g.Name)
		}
		s.genes[i] = g
		s.index[g.Name] = i
	}
	return s, nil
}

// WeightSchema returns n continuous genes named w_0 … w_{n-1}, one per
// network weight in flattening order.
func WeightSchema(n int) *Schema {
	genes := make([]Gene, n)
	for i := range genes {
		genes[i] = Gene{Name: fmt.Sprintf("w_%d", i), Kind: Continuous}
	}
	s, err := NewSchema(genes...)
	if err != nil {
		// Generated names are unique and the kind is known.
		panic(err)
	}
	return s
}

// Len is the genome length every chromosome of this schema has.
func (s *Schema) Len() int {
	return len(s.genes)
}

// Gene returns the i-th gene.
func (s *Schema) Gene(i int) Gene {
	return s.genes[i]
}

// Genes returns a copy of the ordered gene list.
func (s *Schema) Genes() []Gene {
	return append([]Gene(nil), s.genes...)
}

// IndexOf returns the position of the named gene.
func (s *Schema) IndexOf(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}
