package dialing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitNumbers(t *testing.T) {
	tests := []struct {
		name    string
		numbers []string
		want    Dialing
	}{
		{"IDCOnly", []string{"+33"}, Dialing{IDC: "33"}},
		{"SubCode", []string{"+1 242"}, Dialing{IDC: "1", Regions: []string{"242"}}},
		{"MultiRegion", []string{"+1 242", "+1 246"}, Dialing{IDC: "1", Regions: []string{"242", "246"}}},
		{"MixedEntries", []string{"+7", "+7 840", "+7 940"}, Dialing{IDC: "7", Regions: []string{"840", "940"}}},
		{"ExtraTokens", []string{"+599 7 15"}, Dialing{IDC: "599", Regions: []string{"7"}}},
		{"BlankFirst", []string{"  ", "+44 1481"}, Dialing{IDC: "44", Regions: []string{"1481"}}},
		{"Whitespace", []string{" +1  684 "}, Dialing{IDC: "1", Regions: []string{"684"}}},
		{
			"Overflow",
			[]string{"+1 340", "+1 649", "+1 670", "+1 671", "+1 684"},
			Dialing{IDC: "1", Regions: []string{"340", "649", "670", "671"}, Dropped: []string{"684"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitNumbers(tt.numbers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitNumbers_Empty(t *testing.T) {
	for _, numbers := range [][]string{nil, {}, {"", "+"}} {
		_, err := SplitNumbers(numbers)
		assert.ErrorIs(t, err, ErrNoNumbers)
	}
}
