package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// ReadTOML decodes a spec from r. Keys that do not belong to a spec are
// rejected so that typos surface instead of being ignored.
func ReadTOML(r io.Reader) (*Spec, error) {
	var s Spec
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &s, nil
}

// ReadJSON decodes a spec from r, rejecting unknown fields.
func ReadJSON(r io.Reader) (*Spec, error) {
	var s Spec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return &s, nil
}

// ImportTOML reads the TOML spec at path.
func ImportTOML(path string) (*Spec, error) {
	return importFile(path, ReadTOML)
}

// ImportJSON reads the JSON spec at path.
func ImportJSON(path string) (*Spec, error) {
	return importFile(path, ReadJSON)
}

// Import reads a spec, choosing the decoder from the file extension
// (.toml or .json).
func Import(path string) (*Spec, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ImportTOML(path)
	case ".json":
		return ImportJSON(path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported spec file extension %q (want .toml or .json)", ext)
	}
}

func importFile(path string, read func(io.Reader) (*Spec, error)) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
