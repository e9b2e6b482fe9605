package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"country-db/core/reconcile"
	"country-db/feature/countries/models"

	"github.com/goccy/go-yaml"
)

// Format names an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat resolves a case-insensitive format name. "yml" is accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Extension returns the file extension of the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Filter returns a copy of ds, without entries lacking a dialing code when
// ignoreNoIDC is set.
func Filter(ds models.Dataset, ignoreNoIDC bool) models.Dataset {
	out := make(models.Dataset, len(ds))
	for k, r := range ds {
		if ignoreNoIDC && !r.HasIDC() {
			continue
		}
		out[k] = r
	}
	return out
}

// SortedKeys returns the ISO3 codes of ds in ascending order.
func SortedKeys(ds models.Dataset) []string {
	return reconcile.SortedKeys(ds)
}

// Write encodes ds in the given format.
func Write(w io.Writer, format Format, ds models.Dataset) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, ds)
	case FormatJSON:
		return WriteJSON(w, ds)
	case FormatYAML:
		return WriteYAML(w, ds)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteCSV writes a header row followed by one row per record, sorted by ISO3.
func WriteCSV(w io.Writer, ds models.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, k := range SortedKeys(ds) {
		if err := cw.Write(ds[k].Row()); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", k, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes ds as an object keyed by ISO3 with four-space indentation.
func WriteJSON(w io.Writer, ds models.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(map[string]models.Record(ds)); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

// WriteYAML writes ds as a mapping keyed by ISO3.
func WriteYAML(w io.Writer, ds models.Dataset) error {
	data, err := yaml.MarshalWithOptions(map[string]models.Record(ds), yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("failed to write yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
