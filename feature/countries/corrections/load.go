package corrections

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// File is the on-disk corrections format.
type File struct {
	// Replace discards the built-in table instead of extending it.
	Replace bool `yaml:"replace"`
	Table   `yaml:",inline"`
}

// Parse decodes a YAML corrections document and applies it to the defaults.
func Parse(data []byte) (Table, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Table{}, fmt.Errorf("failed to parse corrections: %w", err)
	}
	if f.Replace {
		return Merge(Table{}, f.Table).Normalize(), nil
	}
	return Merge(Default(), f.Table).Normalize(), nil
}

// Load reads the corrections file at path. An empty path yields the
// normalised defaults.
func Load(path string) (Table, error) {
	if path == "" {
		return Default().Normalize(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read corrections file %s: %w", path, err)
	}
	return Parse(data)
}
