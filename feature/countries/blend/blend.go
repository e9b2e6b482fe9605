package blend

import (
	"country-db/core/reconcile"
	"country-db/core/utils"
	"country-db/feature/countries/corrections"
	"country-db/feature/countries/models"

	"go.uber.org/zap"
)

// Collision records a re-key that was refused because the target ISO3 was
// already present in the blended set.
type Collision struct {
	// SourceKey is the broad-source ISO3 of the refused record.
	SourceKey string `json:"source_key"`
	// TargetKey is the primary-source ISO3 it would have moved to.
	TargetKey string `json:"target_key"`
	// Number is the shared numeric code that produced the match.
	Number string `json:"number"`
}

// Result is the output of Blend.
type Result struct {
	// Dataset is the blended set keyed by ISO3.
	Dataset models.Dataset
	// Patches lists every corrected, re-keyed or inserted record in order.
	Patches reconcile.Log
	// Collisions lists refused re-keys.
	Collisions []Collision
}

// Blend merges the primary (authoritative for name and number) and broad
// (wider coverage) sets.
//
// Broad records are visited in ISO3 order. A record whose ISO3 exists in the
// primary set takes the primary number and uppercased name. Otherwise a
// primary record with the same number lends it its ISO3 and name; if that ISO3
// is already taken the first holder is kept and a Collision is recorded.
// Finally every primary ISO3 still absent is inserted with an empty ISO2.
// Neither input is modified.
func Blend(primary, broad models.Dataset, corr corrections.Table, log *zap.Logger) *Result {
	un := preparePrimary(primary, corr, log)
	byNumber := un.By(models.FieldNumber)

	res := &Result{Dataset: broad.Clone()}
	out := res.Dataset

	for _, iso3 := range broad.Keys() {
		rec := broad[iso3]

		if p, ok := un[iso3]; ok {
			updated := rec
			updated.Number = p.Number
			updated.Name = utils.UpperName(p.Name)
			out[iso3] = updated

			changes := reconcile.Diff([]string{models.FieldNumber, models.FieldName}, rec.Values(), updated.Values())
			if len(changes) > 0 {
				res.Patches.Add(reconcile.Patch{Kind: reconcile.PatchCorrected, Key: iso3, Changes: changes})
				log.Debug("Corrected record from primary source", zap.String("iso3", iso3), zap.Int("changes", len(changes)))
			}
			continue
		}

		p, ok := byNumber[rec.Number]
		if !ok || rec.Number == "" {
			continue
		}

		if _, taken := out[p.ISO3]; taken {
			res.Collisions = append(res.Collisions, Collision{SourceKey: iso3, TargetKey: p.ISO3, Number: rec.Number})
			log.Warn("Re-key refused, target ISO3 already present",
				zap.String("iso3", iso3),
				zap.String("target", p.ISO3),
				zap.String("number", rec.Number),
			)
			continue
		}

		updated := rec
		updated.ISO3 = p.ISO3
		updated.Name = utils.UpperName(p.Name)
		delete(out, iso3)
		out[p.ISO3] = updated

		res.Patches.Add(reconcile.Patch{
			Kind:        reconcile.PatchRekeyed,
			Key:         p.ISO3,
			PreviousKey: iso3,
			Changes:     reconcile.Diff([]string{models.FieldISO3, models.FieldName}, rec.Values(), updated.Values()),
		})
		log.Debug("Re-keyed record by numeric code", zap.String("from", iso3), zap.String("to", p.ISO3))
	}

	for _, iso3 := range reconcile.Missing(un, out) {
		p := un[iso3]
		out[iso3] = models.Record{
			ISO3:   iso3,
			ISO2:   "",
			Number: p.Number,
			Name:   utils.UpperName(p.Name),
		}
		res.Patches.Add(reconcile.Patch{Kind: reconcile.PatchInserted, Key: iso3})
		log.Debug("Inserted record missing from broad source", zap.String("iso3", iso3))
	}

	return res
}

// preparePrimary applies ignore numbers and renames to a copy of the primary set.
func preparePrimary(primary models.Dataset, corr corrections.Table, log *zap.Logger) models.Dataset {
	out := make(models.Dataset, len(primary))
	for iso3, rec := range primary {
		if corr.Ignored(rec.Number) {
			log.Debug("Ignoring primary record", zap.String("iso3", iso3), zap.String("number", rec.Number))
			continue
		}
		rec.Name = corr.Rename(rec.Name)
		out[iso3] = rec
	}
	return out
}
