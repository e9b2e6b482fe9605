package models

import "country-db/core/reconcile"

// Dataset maps ISO3 codes to records. It is the sole owner of its records;
// callers change a record by storing a modified copy back under its key.
type Dataset map[string]Record

// DialingSet maps an uppercased country name to its raw dialing strings,
// e.g. "BAHAMAS" -> ["+1 242"].
type DialingSet map[string][]string

// Clone returns a shallow copy of d. Records are values, so the copy is
// independent of d.
func (d Dataset) Clone() Dataset {
	out := make(Dataset, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Keys returns the ISO3 codes in ascending order.
func (d Dataset) Keys() []string {
	return reconcile.SortedKeys(d)
}

// Sorted returns the records ordered by ISO3.
func (d Dataset) Sorted() []Record {
	keys := d.Keys()
	out := make([]Record, len(keys))
	for i, k := range keys {
		out[i] = d[k]
	}
	return out
}

// By re-indexes the dataset on the named field.
func (d Dataset) By(field string) map[string]Record {
	return reconcile.Reindex(d, func(r Record) string { return r.Field(field) })
}

// WithIDC counts the records that carry a dialing code.
func (d Dataset) WithIDC() int {
	n := 0
	for _, r := range d {
		if r.HasIDC() {
			n++
		}
	}
	return n
}
