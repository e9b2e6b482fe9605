// Package reconcile provides the generic building blocks used to reconcile
// independently sourced keyed datasets.
//
// # Components
//
//  1. Reindex: converts a keyed collection into a new collection keyed on any
//     field of its values. Duplicate field values resolve last-write-wins in
//     sorted source-key order, so the outcome is deterministic.
//
//  2. Patch log: an ordered audit trail of corrections. A Patch records the
//     key a value ends up under, the key it had before (when it was re-keyed)
//     and the field-level changes. It never holds a reference to the value
//     itself; reports look the current value up by key.
//
//  3. Cache: TTL-based holder for an expensive build result, with stampede
//     protection through singleflight.
//
// # Usage Example
//
//	byNumber := reconcile.Reindex(primary, func(r models.Record) string { return r.Number })
//
//	var log reconcile.Log
//	log.Add(reconcile.Patch{Kind: reconcile.PatchCorrected, Key: "ROU",
//	    Changes: []reconcile.Change{{Field: "number", Old: "642", New: "642"}}})
//
//	cache := reconcile.NewCache[*Build](5 * time.Minute)
//	build, err := cache.Get(ctx, builder.Build)
package reconcile
