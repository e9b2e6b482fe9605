package dialing

import (
	"errors"
	"strings"
)

// MaxRegions is the number of region fields a record can hold.
const MaxRegions = 4

// ErrNoNumbers is returned when a dialing entry carries no usable number.
var ErrNoNumbers = errors.New("no dialing numbers")

// Dialing is the structured form of a country's raw dialing strings.
type Dialing struct {
	// IDC is the international dialing code, without "+".
	IDC string
	// Regions holds up to MaxRegions sub-region codes in source order.
	Regions []string
	// Dropped holds sub-region codes beyond MaxRegions.
	Dropped []string
}

// SplitNumbers parses strings of the form "+<idc> [<sub-code>]".
//
// The IDC is the first token of the first non-blank entry. The second token
// of every entry that has one is a region code; entries without one add no
// region. Tokens beyond the second are ignored.
func SplitNumbers(numbers []string) (Dialing, error) {
	var d Dialing
	for _, raw := range numbers {
		fields := strings.Fields(strings.ReplaceAll(raw, "+", ""))
		if len(fields) == 0 {
			continue
		}
		if d.IDC == "" {
			d.IDC = fields[0]
		}
		if len(fields) < 2 {
			continue
		}
		if len(d.Regions) < MaxRegions {
			d.Regions = append(d.Regions, fields[1])
		} else {
			d.Dropped = append(d.Dropped, fields[1])
		}
	}
	if d.IDC == "" {
		return Dialing{}, ErrNoNumbers
	}
	return d, nil
}
