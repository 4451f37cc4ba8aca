package history

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes the latest generation statistics of every run as
// Prometheus collectors labelled by run_id.
type Metrics struct {
	BestFitness *prometheus.GaugeVec
	MeanFitness *prometheus.GaugeVec
	DistinctDNA *prometheus.GaugeVec
	Generations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		BestFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "neuroga_best_fitness",
			Help: "Best fitness of the last evaluated generation.",
		}, []string{"run_id"}),
		MeanFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "neuroga_mean_fitness",
			Help: "Mean fitness of the last evaluated generation.",
		}, []string{"run_id"}),
		DistinctDNA: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "neuroga_distinct_dna",
			Help: "Number of distinct DNA fingerprints in the last evaluated generation.",
		}, []string{"run_id"}),
		Generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "neuroga_generations_total",
			Help: "Generations evaluated.",
		}, []string{"run_id"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.BestFitness, m.MeanFitness, m.DistinctDNA, m.Generations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(g GenerationRecord) {
	labels := prometheus.Labels{"run_id": g.RunID}
	m.BestFitness.With(labels).Set(g.Best)
	m.MeanFitness.With(labels).Set(g.Mean)
	m.DistinctDNA.With(labels).Set(float64(g.DistinctDNA))
	m.Generations.With(labels).Inc()
}
