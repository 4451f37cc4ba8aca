package ga

import (
	"fmt"
	"sort"
)

const (
	// DefaultCrossoverChance is the probability a selected pair is spliced.
	DefaultCrossoverChance = 0.7
	// DefaultMutationChance is the per-gene mutation probability.
	DefaultMutationChance = 0.05
)

// sortByFitness orders the population by raw fitness, best first.
// Equal fitness keeps the prior relative order.
func (ga *GeneticAlgorithm) sortByFitness() {
	sort.SliceStable(ga.population, func(i, j int) bool {
		return ga.population[i].Fitness > ga.population[j].Fitness
	})
}

// parentPool is the roulette pool: the whole population, or with elitism
// only the first EliteCount members of the stored order.
func (ga *GeneticAlgorithm) parentPool() []*Chromosome {
	if ga.eliteCount > 0 && ga.eliteCount < len(ga.population) {
		return ga.population[:ga.eliteCount]
	}
	return ga.population
}

// fetchChromosomeByRoulette picks a parent with probability proportional to
// its normalized fitness.
func (ga *GeneticAlgorithm) fetchChromosomeByRoulette() *Chromosome {
	return rouletteSelect(ga.parentPool(), ga.rng.Float64())
}

// rouletteSelect scans the pool subtracting normalized fitness from
// u*total and returns the first member where the slice drops to zero.
// If rounding lets the scan run off the end, the first member is returned.
func rouletteSelect(pool []*Chromosome, u float64) *Chromosome {
	total := 0.0
	for _, c := range pool {
		total += c.NormalizedFitness()
	}

	slice := u * total
	for _, c := range pool {
		slice -= c.NormalizedFitness()
		if slice <= 0.0 {
			return c
		}
	}
	return pool[0]
}

// breed produces the two children of one selection round: an optional
// crossover followed by mutation of both offspring.
func (ga *GeneticAlgorithm) breed(left, right *Chromosome) (*Chromosome, *Chromosome, error) {
	if ga.rng.Float64() < ga.crossoverChance {
		var err error
		left, right, err = left.Crossover(ga.rng, right)
		if err != nil {
			return nil, nil, fmt.Errorf("crossover: %w", err)
		}
	}

	leftChild, err := left.Mutate(ga.rng, ga.mutationChance)
	if err != nil {
		return nil, nil, err
	}
	rightChild, err := right.Mutate(ga.rng, ga.mutationChance)
	if err != nil {
		return nil, nil, err
	}
	return leftChild, rightChild, nil
}
