// Package neuroga evolves the weights of fixed-topology feedforward neural
// networks with a generational genetic algorithm.
//
// The engine is split into three packages:
//
//   - ga/nn: layered sigmoid networks with flat weight (de)serialization.
//   - ga: gene schemas, chromosomes, roulette-wheel selection with optional
//     elite parent pools, single-point crossover, per-gene mutation and the
//     generation boundary that moves weights between networks and genomes.
//   - ga/history: per-generation fitness statistics in memory or SQLite,
//     plus Prometheus collectors.
//
// The simulation that scores agents is the caller's. A typical loop:
//
//	cfg, err := ga.LoadConfig("run.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	topology := cfg.Topology()
//	population, err := ga.NewFromConfig(cfg, ga.WeightSchema(topology.WeightCount()))
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	brains := make([]ga.Brain, population.Size())
//	for i := range brains {
//		net, _ := nn.New(topology)
//		brains[i] = net
//	}
//	_ = population.Seed(brains)
//
//	for generation := 0; generation < 100; generation++ {
//		scores := simulate(brains) // sense, act, accumulate score
//		if _, err := population.Epoch(brains, scores); err != nil {
//			log.Fatalf("Error running generation: %v", err)
//		}
//	}
package neuroga
