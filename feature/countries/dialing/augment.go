package dialing

import (
	"slices"
	"strings"

	"country-db/core/reconcile"
	"country-db/core/utils"
	"country-db/feature/countries/corrections"
	"country-db/feature/countries/models"

	"go.uber.org/zap"
)

// MatchReport summarises how every dialing-source name was resolved.
type MatchReport struct {
	// Exact maps incoming names found directly (after aliasing) to ISO3.
	Exact map[string]string `json:"exact"`
	// Aliased maps incoming names to the canonical name substituted for them.
	Aliased map[string]string `json:"aliased"`
	// Fuzzy maps incoming names to the single blended name containing them.
	Fuzzy map[string]string `json:"fuzzy"`
	// Ambiguous maps incoming names to the several blended names containing them.
	Ambiguous map[string][]string `json:"ambiguous"`
	// Unmatched lists incoming names with no candidate at all.
	Unmatched []string `json:"unmatched"`
	// Invalid lists incoming names whose numbers could not be parsed.
	Invalid []string `json:"invalid"`
	// Truncated maps ISO3 codes to region codes dropped beyond MaxRegions.
	Truncated map[string][]string `json:"truncated"`
}

func newMatchReport() *MatchReport {
	return &MatchReport{
		Exact:     make(map[string]string),
		Aliased:   make(map[string]string),
		Fuzzy:     make(map[string]string),
		Ambiguous: make(map[string][]string),
		Truncated: make(map[string][]string),
	}
}

// Matched returns how many incoming names were attached to a record.
func (r *MatchReport) Matched() int {
	return len(r.Exact) + len(r.Fuzzy)
}

// Augment attaches dialing codes from codes to the records of ds, in place.
//
// Each incoming name is first replaced through the alias table, then looked
// up exactly among the uppercased record names. On a miss, a record whose
// name contains the incoming name is accepted only if it is the sole such
// record; zero or several candidates leave the entry unused. Misses are
// diagnostics, never errors.
func Augment(ds models.Dataset, codes models.DialingSet, corr corrections.Table, log *zap.Logger) *MatchReport {
	report := newMatchReport()
	byName := reconcile.Reindex(ds, func(r models.Record) string { return utils.UpperName(r.Name) })
	names := reconcile.SortedKeys(byName)

	for _, incoming := range reconcile.SortedKeys(codes) {
		numbers := codes[incoming]
		name, aliased := corr.Canonical(utils.UpperName(incoming))
		if aliased {
			report.Aliased[incoming] = name
		}

		target, ok := byName[name]
		if ok {
			report.Exact[incoming] = target.ISO3
		} else {
			candidates := containing(names, name)
			switch len(candidates) {
			case 1:
				target = byName[candidates[0]]
				report.Fuzzy[incoming] = candidates[0]
				log.Debug("Matched by partial name", zap.String("name", name), zap.String("match", candidates[0]))
			case 0:
				report.Unmatched = append(report.Unmatched, incoming)
				log.Debug("Cannot find country", zap.String("name", name))
				continue
			default:
				report.Ambiguous[incoming] = candidates
				log.Debug("Cannot find country, several possible matches",
					zap.String("name", name),
					zap.Strings("candidates", candidates),
				)
				continue
			}
		}

		if override, ok := corr.Override(utils.UpperName(target.Name)); ok {
			log.Debug("Overriding dialing numbers",
				zap.String("iso3", target.ISO3),
				zap.Strings("source", numbers),
				zap.Strings("override", override),
			)
			numbers = override
		}

		d, err := SplitNumbers(numbers)
		if err != nil {
			report.Invalid = append(report.Invalid, incoming)
			log.Debug("Unusable dialing numbers", zap.String("name", name), zap.Strings("numbers", numbers), zap.Error(err))
			continue
		}
		if len(d.Dropped) > 0 {
			report.Truncated[target.ISO3] = d.Dropped
			log.Warn("Too many region codes, extra codes dropped",
				zap.String("iso3", target.ISO3),
				zap.Int("max", MaxRegions),
				zap.Strings("dropped", d.Dropped),
			)
		}

		current := ds[target.ISO3]
		if current.HasIDC() {
			log.Debug("Record already has a dialing code, replacing", zap.String("iso3", target.ISO3), zap.String("name", incoming))
		}
		ds[target.ISO3] = current.WithDialing(d.IDC, d.Regions)
	}

	return report
}

// containing returns the names that contain sub, in sorted order.
func containing(names []string, sub string) []string {
	var out []string
	for _, n := range names {
		if strings.Contains(n, sub) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out
}
