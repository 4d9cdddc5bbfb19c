package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/isotile/pkg/layout"
)

// WriteJSON encodes the layout's [Record] as compact JSON and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(l *layout.Layout, w io.Writer) error {
	if err := json.NewEncoder(w).Encode(NewRecord(l)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON returns the layout's [Record] as compact JSON bytes, without a
// trailing newline.
func MarshalJSON(l *layout.Layout) ([]byte, error) {
	data, err := json.Marshal(NewRecord(l))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// ExportJSON writes the layout to a JSON file at path, creating or
// truncating it. The parent directory must exist.
func ExportJSON(l *layout.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(l, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
