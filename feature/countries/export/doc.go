// Package export filters a country dataset and encodes it as CSV, JSON or
// YAML. Every encoding iterates records in ISO3 order.
package export
