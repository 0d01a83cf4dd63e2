package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"reach-estimator/feature/targeting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptionsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"countries":["us"],"keywords":["Eminem","Sting"]},
		{"countries":["us"],"keywords":"Sting","gender":"female","age_class":"young"}
	]`), 0644))

	options, err := readOptionsFile(path)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, targeting.StringList{"Eminem", "Sting"}, options[0].Keywords)
	assert.Equal(t, targeting.StringList{"Sting"}, options[1].Keywords)
	assert.Equal(t, "young", options[1].AgeClass)
}

func TestReadOptionsFile_Errors(t *testing.T) {
	_, err := readOptionsFile("")
	assert.Error(t, err)

	_, err = readOptionsFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"countries":`), 0644))
	_, err = readOptionsFile(path)
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, []targeting.BatchResult{{Err: targeting.ErrMissingTargetingMode}}))
	assert.JSONEq(t, `[{"success":false,"error":"Need to set :keywords or :connections"}]`, buf.String())
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "reach", "batch", "keywords"} {
		assert.True(t, names[want], want)
	}
}
