package corrections

import (
	"slices"

	"country-db/core/utils"
)

// Table holds every data-level correction applied during reconciliation.
// It is passed explicitly to the blender and the augmenter.
type Table struct {
	// Aliases maps a dialing-source name to the canonical (primary) name.
	Aliases map[string]string `yaml:"aliases" json:"aliases"`

	// PrimaryRenames replaces names in the primary source before blending.
	// Keys are matched against the raw source name.
	PrimaryRenames map[string]string `yaml:"primary_renames" json:"primary_renames"`

	// IgnoreNumbers lists primary-source numeric codes to drop entirely,
	// for entities that have neither ISO codes nor a dialing code.
	IgnoreNumbers []string `yaml:"ignore_numbers" json:"ignore_numbers"`

	// Overrides replaces the dialing numbers of a canonical name, superseding
	// whatever the dialing source supplied.
	Overrides map[string][]string `yaml:"overrides" json:"overrides"`
}

// Default returns the built-in corrections.
func Default() Table {
	return Table{
		Aliases: map[string]string{
			"UNITED STATES":                                "UNITED STATES OF AMERICA",
			"SAINT MARTIN (FRANCE)":                        "SAINT-MARTIN (FRENCH PART)",
			"SOUTH GEORGIA AND THE SOUTH SANDWICH ISLANDS": "SOUTH GEORGIA AND SOUTH S.S.",
			"CARIBBEAN NETHERLANDS":                        "NETHERLANDS ANTILLES",
			"LAOS":                                         "LAO PEOPLE'S DEMOCRATIC REPUBLIC",
			"BURMA":                                        "MYANMAR",
			"MICRONESIA, FEDERATED STATES OF":              "MICRONESIA (FEDERATED STATES OF)",
			"KOREA, NORTH":                                 "DEMOCRATIC PEOPLE'S REPUBLIC OF KOREA",
			"KOREA, SOUTH":                                 "REPUBLIC OF KOREA",
			"CONGO, DEMOCRATIC REPUBLIC OF THE (ZAIRE)": "DEMOCRATIC REPUBLIC OF THE CONGO",
			"US VIRGIN ISLANDS":                         "UNITED STATES VIRGIN ISLANDS",
			"MACAU":                                     "CHINA, MACAO SPECIAL ADMINISTRATIVE REGION",
			"FAROE ISLANDS":                             "FAEROE ISLANDS",
			"EAST TIMOR":                                "TIMOR-LESTE",
			"PALESTINIAN TERRITORIES":                   "STATE OF PALESTINE",
			"VATICAN CITY STATE (HOLY SEE)":             "HOLY SEE (VATICAN CITY STATE)",
			"SAINT BARTHÉLEMY":                          "SAINT-BARTHÉLEMY",
			"SINT MAARTEN (NETHERLANDS)":                "SINT MAARTEN (DUTCH PART)",
			"SÃO TOMÉ AND PRÍNCIPE":                     "SAO TOME AND PRINCIPE",
			"SINT EUSTATIUS":                            "BONAIRE, SAINT EUSTATIUS AND SABA",
		},
		PrimaryRenames: map[string]string{
			"Viet Nam": "Vietnam",
			"Holy See": "Holy See (Vatican City State)",
		},
		IgnoreNumbers: []string{
			"830", // Channel Islands
			"680", // Sark
		},
		Overrides: map[string][]string{
			// +379 is assigned to the Vatican but unused; it dials through Rome.
			"HOLY SEE (VATICAN CITY STATE)": {"+39 066"},
		},
	}
}

// Normalize returns a copy of t with alias and override names in canonical
// uppercase form, so lookups match the uppercased names of the datasets.
func (t Table) Normalize() Table {
	out := Table{
		Aliases:        make(map[string]string, len(t.Aliases)),
		PrimaryRenames: make(map[string]string, len(t.PrimaryRenames)),
		IgnoreNumbers:  slices.Clone(t.IgnoreNumbers),
		Overrides:      make(map[string][]string, len(t.Overrides)),
	}
	for k, v := range t.Aliases {
		out.Aliases[utils.UpperName(k)] = utils.UpperName(v)
	}
	for k, v := range t.PrimaryRenames {
		out.PrimaryRenames[utils.CleanText(k)] = v
	}
	for k, v := range t.Overrides {
		out.Overrides[utils.UpperName(k)] = slices.Clone(v)
	}
	return out
}

// Canonical returns the canonical name for a dialing-source name, and whether
// an alias was applied.
func (t Table) Canonical(name string) (string, bool) {
	if alias, ok := t.Aliases[name]; ok {
		return alias, true
	}
	return name, false
}

// Rename returns the preferred primary-source name for raw.
func (t Table) Rename(raw string) string {
	if renamed, ok := t.PrimaryRenames[utils.CleanText(raw)]; ok {
		return renamed
	}
	return raw
}

// Ignored reports whether a primary-source numeric code is to be dropped.
func (t Table) Ignored(number string) bool {
	return slices.Contains(t.IgnoreNumbers, number)
}

// Override returns the replacement dialing numbers for a canonical name.
func (t Table) Override(name string) ([]string, bool) {
	numbers, ok := t.Overrides[name]
	return numbers, ok
}

// Merge returns base with every entry of extra applied on top.
// Ignore numbers are unioned.
func Merge(base, extra Table) Table {
	out := Table{
		Aliases:        make(map[string]string),
		PrimaryRenames: make(map[string]string),
		Overrides:      make(map[string][]string),
	}
	for _, src := range []Table{base, extra} {
		for k, v := range src.Aliases {
			out.Aliases[k] = v
		}
		for k, v := range src.PrimaryRenames {
			out.PrimaryRenames[k] = v
		}
		for k, v := range src.Overrides {
			out.Overrides[k] = slices.Clone(v)
		}
		for _, n := range src.IgnoreNumbers {
			if !slices.Contains(out.IgnoreNumbers, n) {
				out.IgnoreNumbers = append(out.IgnoreNumbers, n)
			}
		}
	}
	return out
}
