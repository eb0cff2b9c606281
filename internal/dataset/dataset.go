// Package dataset supplies the static marketing calendar records.
//
// The default dataset is compiled into the binary. An alternative YAML file
// with the same schema can be loaded instead; either way the records are
// read-only once loaded.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/alexanderramin/promocal/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed months.yaml
var embeddedMonths []byte

// Default parses the embedded calendar.
func Default() ([]domain.Month, error) {
	months, err := Parse(embeddedMonths)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return months, nil
}

// Load reads the dataset at path, or the embedded one when path is empty.
func Load(path string) ([]domain.Month, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads and validates a YAML dataset file.
func LoadFile(path string) ([]domain.Month, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	months, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return months, nil
}

// Parse decodes a YAML list of month records and validates it.
// Unknown fields are rejected so typos in a custom file surface early.
func Parse(data []byte) ([]domain.Month, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var months []domain.Month
	if err := dec.Decode(&months); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if err := Validate(months); err != nil {
		return nil, err
	}
	return months, nil
}
