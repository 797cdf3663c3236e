package profiledb

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/sibeira/spline"
)

// CurrentSchemaVersion is written with every record.
const CurrentSchemaVersion = 1

// Record is one stored leaf.
type Record struct {
	SchemaVersion int           `json:"schema_version" yaml:"schema_version"`
	Profile       spline.LogLog `json:"profile" yaml:"profile"`
}

// NewRecord wraps profile at the current schema version.
func NewRecord(profile *spline.LogLog) Record {
	return Record{SchemaVersion: CurrentSchemaVersion, Profile: *profile}
}

func (r Record) check() error {
	if r.SchemaVersion != CurrentSchemaVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, r.SchemaVersion, CurrentSchemaVersion)
	}

	return nil
}

// EncodeRecord serialises profile as a JSON record.
func EncodeRecord(profile *spline.LogLog) ([]byte, error) {
	return json.Marshal(NewRecord(profile))
}

// DecodeRecord parses a JSON record and checks its version.
func DecodeRecord(data []byte) (*spline.LogLog, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	if err := r.check(); err != nil {
		return nil, err
	}

	return &r.Profile, nil
}
