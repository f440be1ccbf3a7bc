package merge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aztfmod/cafmerge/cmd/application"
	"github.com/aztfmod/cafmerge/pkg/errors"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(&application.Mock{})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	documented := filepath.Join(dir, "doc.json")
	undocumented := filepath.Join(dir, "undoc.json")
	output := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(documented, []byte(`[{"name":"azurerm_storage_account"}]`), 0o644))
	require.NoError(t, os.WriteFile(undocumented, []byte(`[{"name":"azurerm_widget"}]`), 0o644))

	stdout, err := executeCommand(t, documented, undocumented, output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Merged 2 resource definitions")
	assert.Contains(t, stdout, output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"out_of_doc": true`)
}

func TestMergeCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	documented := filepath.Join(dir, "doc.json")
	output := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(documented, []byte(`[]`), 0o644))

	stdout, err := executeCommand(t, "--dry-run", documented, documented, output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Would merge 0 resource definitions")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMergeCommandArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"a"}, {"a", "b"}, {"a", "b", "c", "d"}} {
		_, err := executeCommand(t, args...)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "Usage: cafmerge <documented> <undocumented> <output>")
	}
}

func TestMergeCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.json")
	output := filepath.Join(dir, "out.json")

	_, err := executeCommand(t, missing, missing, output)
	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
	assert.Contains(t, err.Error(), missing)
}
