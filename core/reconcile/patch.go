package reconcile

// PatchKind describes why an entry appears in the patch log.
type PatchKind string

const (
	// PatchCorrected marks an entry whose fields were overwritten in place.
	PatchCorrected PatchKind = "corrected"
	// PatchRekeyed marks an entry that moved to a different key.
	PatchRekeyed PatchKind = "rekeyed"
	// PatchInserted marks an entry that was absent and has been added whole.
	PatchInserted PatchKind = "inserted"
)

// Change is a single field-level difference.
type Change struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Patch is one entry of the audit trail.
type Patch struct {
	// Kind classifies the patch.
	Kind PatchKind `json:"kind"`

	// Key is the key the entry is stored under after the patch.
	Key string `json:"key"`

	// PreviousKey is the key the entry had before a re-key.
	PreviousKey string `json:"previous_key,omitempty"`

	// Changes lists the fields that differ from the entry's source form.
	Changes []Change `json:"changes,omitempty"`
}

// Log is an ordered list of patches.
type Log struct {
	patches []Patch
}

// Add appends p to the log.
func (l *Log) Add(p Patch) {
	l.patches = append(l.patches, p)
}

// Len returns the number of patches.
func (l *Log) Len() int {
	return len(l.patches)
}

// Entries returns a copy of the patches in insertion order.
func (l *Log) Entries() []Patch {
	out := make([]Patch, len(l.patches))
	copy(out, l.patches)
	return out
}

// Keys returns the current key of every patch in insertion order.
func (l *Log) Keys() []string {
	keys := make([]string, len(l.patches))
	for i, p := range l.patches {
		keys[i] = p.Key
	}
	return keys
}

// Diff compares field values pairwise and returns the changes.
// old and new map field names to values; fields lists the comparison order.
func Diff(fields []string, old, new map[string]string) []Change {
	var changes []Change
	for _, f := range fields {
		if old[f] != new[f] {
			changes = append(changes, Change{Field: f, Old: old[f], New: new[f]})
		}
	}
	return changes
}
