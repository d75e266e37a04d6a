package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON writes the normalised form of s to w. s itself is not
// modified.
func WriteJSON(w io.Writer, s *Spec) error {
	out := *s
	out.Normalize()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the normalised form of s to a JSON file at path.
func ExportJSON(s *Spec, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, s)
}
