package reconcile

import (
	"cmp"
	"slices"
)

// Reindex returns a new map holding the values of in keyed by field(value).
// When two values share a field value the one whose source key sorts last wins.
func Reindex[K cmp.Ordered, V any](in map[K]V, field func(V) string) map[string]V {
	out := make(map[string]V, len(in))
	for _, k := range SortedKeys(in) {
		v := in[k]
		out[field(v)] = v
	}
	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Missing returns the keys of want that are not present in have, sorted.
func Missing[K cmp.Ordered, V, W any](want map[K]V, have map[K]W) []K {
	var missing []K
	for _, k := range SortedKeys(want) {
		if _, ok := have[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}
