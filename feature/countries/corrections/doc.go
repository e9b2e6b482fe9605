// Package corrections holds the data-level fixes applied while reconciling
// country sources: dialing-source name aliases, primary-source renames,
// ignored numeric codes and dialing-number overrides.
//
// The built-in table can be extended or replaced by a YAML file:
//
//	replace: false
//	aliases:
//	  "IVORY COAST": "CÔTE D'IVOIRE"
//	ignore_numbers: ["830"]
//	overrides:
//	  "HOLY SEE (VATICAN CITY STATE)": ["+39 066"]
package corrections
