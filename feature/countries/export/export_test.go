package export_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"country-db/feature/countries/export"
	"country-db/feature/countries/models"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() models.Dataset {
	return models.Dataset{
		"USA": {ISO3: "USA", ISO2: "US", Number: "840", Name: "UNITED STATES OF AMERICA", IDC: "1"},
		"AFG": {ISO3: "AFG", ISO2: "AF", Number: "004", Name: "AFGHANISTAN", IDC: "93"},
		"BHS": {ISO3: "BHS", ISO2: "BS", Number: "044", Name: "BAHAMAS", IDC: "1", RegionA: "242"},
		"ATA": {ISO3: "ATA", ISO2: "AQ", Number: "010", Name: "ANTARCTICA"},
		"CIV": {ISO3: "CIV", ISO2: "CI", Number: "384", Name: "CÔTE D'IVOIRE, \"REP.\"", IDC: "225"},
	}
}

func TestFilter(t *testing.T) {
	ds := sample()

	all := export.Filter(ds, false)
	assert.Len(t, all, 5)

	withIDC := export.Filter(ds, true)
	assert.Len(t, withIDC, 4)
	for _, r := range withIDC {
		assert.NotEmpty(t, r.IDC)
	}
	assert.Len(t, ds, 5, "filter must not change its input")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sample()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "number,iso3,iso2,name,idc,region_a,region_b,region_c,region_d", lines[0])
	assert.Equal(t, "004,AFG,AF,AFGHANISTAN,93,,,,", lines[1])
	assert.Equal(t, "010,ATA,AQ,ANTARCTICA,,,,,", lines[2])
	assert.Equal(t, "044,BHS,BS,BAHAMAS,1,242,,,", lines[3])
	assert.Equal(t, `384,CIV,CI,"CÔTE D'IVOIRE, ""REP.""",225,,,,`, lines[4])
	assert.Equal(t, "840,USA,US,UNITED STATES OF AMERICA,1,,,,", lines[5])
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	ds := sample()
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, ds))

	assert.Contains(t, buf.String(), "\n    \"AFG\": {\n        \"iso3\": \"AFG\"")

	var decoded map[string]models.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	if diff := cmp.Diff(map[string]models.Record(ds), decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteYAML(t *testing.T) {
	ds := sample()
	var buf bytes.Buffer
	require.NoError(t, export.WriteYAML(&buf, ds))

	var decoded map[string]models.Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]models.Record(ds), decoded)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want export.Format
	}{
		{"csv", export.FormatCSV},
		{"JSON", export.FormatJSON},
		{"yml", export.FormatYAML},
		{" yaml ", export.FormatYAML},
	}
	for _, tt := range tests {
		got, err := export.ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := export.ParseFormat("xml")
	assert.True(t, errors.Is(err, export.ErrUnknownFormat))
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := export.Write(&bytes.Buffer{}, export.Format("xml"), sample())
	assert.True(t, errors.Is(err, export.ErrUnknownFormat))
}
