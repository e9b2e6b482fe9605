package corrections

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Normalize(t *testing.T) {
	tbl := Default().Normalize()

	name, ok := tbl.Canonical("BURMA")
	assert.True(t, ok)
	assert.Equal(t, "MYANMAR", name)

	name, ok = tbl.Canonical("FRANCE")
	assert.False(t, ok)
	assert.Equal(t, "FRANCE", name)

	assert.Equal(t, "Vietnam", tbl.Rename("Viet Nam"))
	assert.Equal(t, "Vietnam", tbl.Rename(" Viet  Nam "))
	assert.Equal(t, "France", tbl.Rename("France"))

	assert.True(t, tbl.Ignored("830"))
	assert.False(t, tbl.Ignored("250"))

	numbers, ok := tbl.Override("HOLY SEE (VATICAN CITY STATE)")
	assert.True(t, ok)
	assert.Equal(t, []string{"+39 066"}, numbers)
}

func TestMerge(t *testing.T) {
	base := Table{
		Aliases:       map[string]string{"A": "1", "B": "2"},
		IgnoreNumbers: []string{"830"},
	}
	extra := Table{
		Aliases:       map[string]string{"B": "3"},
		IgnoreNumbers: []string{"830", "999"},
		Overrides:     map[string][]string{"X": {"+1"}},
	}

	got := Merge(base, extra)
	assert.Equal(t, map[string]string{"A": "1", "B": "3"}, got.Aliases)
	assert.Equal(t, []string{"830", "999"}, got.IgnoreNumbers)
	assert.Equal(t, []string{"+1"}, got.Overrides["X"])
	assert.Equal(t, "2", base.Aliases["B"], "base must be untouched")
}

func TestParse(t *testing.T) {
	t.Run("Extend", func(t *testing.T) {
		tbl, err := Parse([]byte(`
aliases:
  "Ivory Coast": "Côte d'Ivoire"
ignore_numbers: ["999"]
`))
		require.NoError(t, err)

		name, ok := tbl.Canonical("IVORY COAST")
		assert.True(t, ok)
		assert.Equal(t, "CÔTE D'IVOIRE", name)

		_, ok = tbl.Canonical("BURMA")
		assert.True(t, ok, "defaults must be kept")
		assert.True(t, tbl.Ignored("999"))
		assert.True(t, tbl.Ignored("830"))
	})

	t.Run("Replace", func(t *testing.T) {
		tbl, err := Parse([]byte(`
replace: true
overrides:
  "holy see (vatican city state)": ["+379"]
`))
		require.NoError(t, err)

		_, ok := tbl.Canonical("BURMA")
		assert.False(t, ok)
		numbers, ok := tbl.Override("HOLY SEE (VATICAN CITY STATE)")
		assert.True(t, ok)
		assert.Equal(t, []string{"+379"}, numbers)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := Parse([]byte("aliases: [unterminated"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	tbl, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, tbl.Aliases)

	path := filepath.Join(t.TempDir(), "corrections.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primary_renames:\n  Czechia: Czech Republic\n"), 0o600))

	tbl, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Czech Republic", tbl.Rename("Czechia"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read corrections file")
}
