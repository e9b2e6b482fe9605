package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"country-db/feature/countries/sources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"build", "publish", "audit", "serve"} {
		assert.True(t, names[want], want)
	}
}

func TestBuildFlags(t *testing.T) {
	f := buildCmd.Flags()
	for short, long := range map[string]string{"t": "format", "v": "verbose", "i": "ignore-no-idc", "o": "output"} {
		flag := f.ShorthandLookup(short)
		require.NotNil(t, flag, short)
		assert.Equal(t, long, flag.Name)
	}
	assert.Equal(t, "csv", f.Lookup("format").DefValue)
}

func TestNeedsStorage(t *testing.T) {
	assert.False(t, needsStorage(sources.Config{Mode: sources.ModeHTTP}))
	assert.True(t, needsStorage(sources.Config{Mode: sources.ModeStorage}))
	assert.True(t, needsStorage(sources.Config{Mode: sources.ModeHTTP, Snapshot: true}))
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.csv")
	require.NoError(t, writeOutput(path, []byte("number,iso3\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "number,iso3\n", string(data))

	err = writeOutput(filepath.Join(t.TempDir(), "missing", "out.csv"), nil)
	assert.ErrorContains(t, err, "failed to create")
}

func TestConfirmDestructiveAction_Yes(t *testing.T) {
	assert.True(t, confirmDestructiveAction(true, "Replace?"))
}
