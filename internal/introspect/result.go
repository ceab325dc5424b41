package introspect

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/koba/sqlcatalog/internal/catalog"
)

// Record is a row in its column keyed form. Values are the JSON renderings
// of the row fields: strings, json.Number, bool or nil.
type Record map[string]any

// Result holds the rows read from one view.
type Result struct {
	catalog.Descriptor
	Columns []string
	Rows    []any
}

// Records converts the typed rows into column keyed records.
func (r *Result) Records() ([]Record, error) {
	res := make([]Record, 0, len(r.Rows))
	for i, row := range r.Rows {
		rec, err := ToRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", r.Name, i+1, err)
		}
		res = append(res, rec)
	}
	return res, nil
}

// ToRecord converts a row struct into a Record keyed by column name.
func ToRecord(row any) (Record, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	return DecodeRecord(data)
}

// DecodeRecord parses a JSON encoded row keeping numbers exact.
func DecodeRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	return rec, nil
}
