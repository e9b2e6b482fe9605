package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Row(t *testing.T) {
	r := Record{ISO3: "BHS", ISO2: "BS", Number: "044", Name: "BAHAMAS", IDC: "1", RegionA: "242"}

	assert.Equal(t, []string{"044", "BHS", "BS", "BAHAMAS", "1", "242", "", "", ""}, r.Row())
	assert.Equal(t, "", r.Field("unknown"))
	assert.Equal(t, []string{"242"}, r.Regions())
	assert.True(t, r.HasIDC())
}

func TestRecord_WithDialing(t *testing.T) {
	r := Record{ISO3: "USA", RegionA: "stale", RegionB: "stale"}

	got := r.WithDialing("1", []string{"242", "246"})
	assert.Equal(t, "1", got.IDC)
	assert.Equal(t, []string{"242", "246"}, got.Regions())
	assert.Equal(t, "stale", r.RegionA, "receiver must be untouched")

	got = r.WithDialing("33", nil)
	assert.Empty(t, got.Regions())
}

func TestDataset(t *testing.T) {
	d := Dataset{
		"FRA": {ISO3: "FRA", Number: "250", Name: "FRANCE", IDC: "33"},
		"AFG": {ISO3: "AFG", Number: "004", Name: "AFGHANISTAN"},
	}

	assert.Equal(t, []string{"AFG", "FRA"}, d.Keys())
	assert.Equal(t, "AFG", d.Sorted()[0].ISO3)
	assert.Equal(t, 1, d.WithIDC())

	byName := d.By(FieldName)
	assert.Equal(t, "FRA", byName["FRANCE"].ISO3)

	clone := d.Clone()
	clone["FRA"] = Record{ISO3: "FRA"}
	assert.Equal(t, "FRANCE", d["FRA"].Name)
}
