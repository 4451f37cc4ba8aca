package history

import "time"

const (
	// CurrentSchemaVersion is the record layout written by this package.
	CurrentSchemaVersion = 1
	// CurrentCodecVersion is the payload encoding written by this package.
	CurrentCodecVersion = 1
)

// VersionedRecord stamps every stored record with the layout it was written in.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

func currentVersion() VersionedRecord {
	return VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion}
}

// RunRecord describes one evolution run.
type RunRecord struct {
	VersionedRecord
	ID             string    `json:"id"`
	Label          string    `json:"label,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	PopulationSize int       `json:"population_size"`
	GenomeLength   int       `json:"genome_length"`
	EliteCount     int       `json:"elite_count"`
}

// GenerationRecord holds the fitness statistics of one evaluated generation.
type GenerationRecord struct {
	VersionedRecord
	RunID       string  `json:"run_id"`
	Generation  int     `json:"generation"`
	Best        float64 `json:"best"`
	Worst       float64 `json:"worst"`
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"std_dev"`
	BestDNA     string  `json:"best_dna"`
	DistinctDNA int     `json:"distinct_dna"`
}
