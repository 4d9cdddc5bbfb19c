package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/isotile/pkg/errors"
)

// ReadJSON decodes a [Record] from r and validates it.
//
// Malformed JSON and records that fail [Record.Validate] are reported with
// errors.ErrCodeInvalidFormat. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout record")
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ImportJSON reads a JSON record file at path.
func ImportJSON(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
