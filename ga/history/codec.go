package history

import (
	"encoding/json"
	"errors"
)

// ErrVersionMismatch is returned when a payload was written by another record version.
var ErrVersionMismatch = errors.New("record version mismatch")

// EncodeRun serializes a run record as JSON.
func EncodeRun(r RunRecord) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRun parses a run record and checks its version.
func DecodeRun(data []byte) (RunRecord, error) {
	var run RunRecord
	if err := json.Unmarshal(data, &run); err != nil {
		return RunRecord{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return RunRecord{}, err
	}
	return run, nil
}

// EncodeGeneration serializes a generation record as JSON.
func EncodeGeneration(g GenerationRecord) ([]byte, error) {
	return json.Marshal(g)
}

// DecodeGeneration parses a generation record and checks its version.
func DecodeGeneration(data []byte) (GenerationRecord, error) {
	var generation GenerationRecord
	if err := json.Unmarshal(data, &generation); err != nil {
		return GenerationRecord{}, err
	}
	if err := checkVersion(generation.VersionedRecord); err != nil {
		return GenerationRecord{}, err
	}
	return generation, nil
}

func checkVersion(v VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
