package merger_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aztfmod/cafmerge/pkg/enhancer"
	"github.com/aztfmod/cafmerge/pkg/errors"
	"github.com/aztfmod/cafmerge/pkg/logging"
	"github.com/aztfmod/cafmerge/pkg/merger"
	"github.com/aztfmod/cafmerge/pkg/resources"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newMerger(t *testing.T, opts ...merger.Option) *merger.Merger {
	t.Helper()
	m, err := merger.New(opts...)
	require.NoError(t, err)
	return m
}

func testContext(t *testing.T) (context.Context, *logging.TestLogger) {
	t.Helper()
	tl := logging.NewTestLogger(t)
	return logging.WithLogger(context.Background(), tl.Logger), tl
}

func TestCombineSortsStably(t *testing.T) {
	documented := []resources.Record{
		resources.NewRecord("name", "b", "origin", "doc-1"),
		resources.NewRecord("name", "a"),
	}
	undocumented := []resources.Record{
		resources.NewRecord("name", "b", "origin", "undoc-1"),
		resources.NewRecord("slug", "nameless"),
	}

	combined := merger.Combine(documented, undocumented)

	require.Len(t, combined, 4)
	assert.Equal(t, []string{"", "a", "b", "b"}, resources.Names(combined))
	assert.Equal(t, "doc-1", combined[2].String("origin"))
	assert.Equal(t, "undoc-1", combined[3].String("origin"))
}

func TestCombineEmpty(t *testing.T) {
	assert.Empty(t, merger.Combine(nil, nil))
}

func TestRunScenario(t *testing.T) {
	dir := t.TempDir()
	documented := writeInput(t, dir, "resourceDefinition.json", `[{"name":"azurerm_storage_account"}]`)
	undocumented := writeInput(t, dir, "resourceDefinition_out_of_docs.json", `[{"name":"azurerm_widget"}]`)
	output := filepath.Join(dir, "merged.json")

	ctx, tl := testContext(t)
	result, err := newMerger(t).Run(ctx, merger.Paths{
		Documented:   documented,
		Undocumented: undocumented,
		Output:       output,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Documented)
	assert.Equal(t, 1, result.Undocumented)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.OutOfDoc)
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 1, result.Synthesized)
	assert.Contains(t, result.Summary(), "Merged 2 resource definitions")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	want := `[
    {
        "name": "azurerm_storage_account",
        "resource": "Storage account",
        "resource_provider_namespace": "Microsoft.Storage/storageAccounts",
        "slug": "st"
    },
    {
        "name": "azurerm_widget",
        "out_of_doc": true,
        "resource": "Azure Widget",
        "resource_provider_namespace": "Unknown"
    }
]
`
	assert.Equal(t, want, string(data))

	tl.AssertContains(t, "Loaded resource definitions")
	tl.AssertContains(t, `"out_of_doc":1`)
	tl.AssertContains(t, "Saved combined resource definitions")
}

func TestRunProperties(t *testing.T) {
	dir := t.TempDir()
	documented := writeInput(t, dir, "doc.json", `[
		{"name": "azurerm_subnet", "slug": "sn", "resource": "old"},
		{"name": "azurerm_zeta", "min_length": 3},
		{"name": "azurerm_alpha", "resource": "Alpha", "resource_provider_namespace": "Microsoft.Alpha/alphas"},
		{"name": "azurerm_key_vault", "out_of_doc": false}
	]`)
	undocumented := writeInput(t, dir, "undoc.json", `[
		{"name": "azurerm_resource_group"},
		{"name": "azurerm_beta", "slug": "bt"},
		{"name": "azurerm_alpha"}
	]`)
	output := filepath.Join(dir, "out.json")

	ctx, _ := testContext(t)
	result, err := newMerger(t).Run(ctx, merger.Paths{Documented: documented, Undocumented: undocumented, Output: output})
	require.NoError(t, err)

	records := result.Records
	require.Len(t, records, 7)
	assert.True(t, slices.IsSorted(resources.Names(records)))

	byOrigin := map[string][]resources.Record{}
	for _, rec := range records {
		assert.NotEmpty(t, rec.String("resource"), rec.Name())
		assert.NotEmpty(t, rec.String("resource_provider_namespace"), rec.Name())
		byOrigin[rec.Name()] = append(byOrigin[rec.Name()], rec)
	}

	subnet := byOrigin["azurerm_subnet"][0]
	assert.Equal(t, "sn", subnet.String("slug"))
	assert.Equal(t, "Subnet", subnet.String("resource"))
	assert.False(t, subnet.Bool("out_of_doc"))

	assert.False(t, byOrigin["azurerm_key_vault"][0].Bool("out_of_doc"))
	assert.True(t, byOrigin["azurerm_resource_group"][0].Bool("out_of_doc"))
	assert.Equal(t, "rg", byOrigin["azurerm_resource_group"][0].String("slug"))

	alphas := byOrigin["azurerm_alpha"]
	require.Len(t, alphas, 2)
	assert.Equal(t, "Alpha", alphas[0].String("resource"))
	assert.False(t, alphas[0].Bool("out_of_doc"))
	assert.Equal(t, "Azure Alpha", alphas[1].String("resource"))
	assert.True(t, alphas[1].Bool("out_of_doc"))
}

func TestRunIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	documented := writeInput(t, dir, "doc.json", `[{"name":"azurerm_virtual_network","regex":"/[^0-9A-Za-z_.-]/"},{"name":"azurerm_kubernetes_cluster"}]`)
	undocumented := writeInput(t, dir, "undoc.json", `[{"name":"azurerm_zeta_ümlaut"},{"name":"azurerm_container_app","slug":"capp"}]`)

	ctx, _ := testContext(t)
	var outputs []string
	for _, name := range []string{"first.json", "second.json"} {
		output := filepath.Join(dir, name)
		_, err := newMerger(t).Run(ctx, merger.Paths{Documented: documented, Undocumented: undocumented, Output: output})
		require.NoError(t, err)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		outputs = append(outputs, string(data))
	}

	if diff := cmp.Diff(outputs[0], outputs[1]); diff != "" {
		t.Errorf("outputs differ (-first +second):\n%s", diff)
	}
	assert.Contains(t, outputs[0], "ümlaut")
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	documented := writeInput(t, dir, "doc.json", `[]`)
	missing := filepath.Join(dir, "missing.json")
	output := filepath.Join(dir, "out.json")

	ctx, _ := testContext(t)
	_, err := newMerger(t).Run(ctx, merger.Paths{Documented: documented, Undocumented: missing, Output: output})

	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
	assert.Contains(t, err.Error(), missing)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no output is written when a load fails")
}

func TestRunWriteFailure(t *testing.T) {
	dir := t.TempDir()
	documented := writeInput(t, dir, "doc.json", `[]`)
	undocumented := writeInput(t, dir, "undoc.json", `[]`)
	output := filepath.Join(dir, "missing-dir", "out.json")

	ctx, _ := testContext(t)
	_, err := newMerger(t).Run(ctx, merger.Paths{Documented: documented, Undocumented: undocumented, Output: output})

	require.Error(t, err)
	assert.True(t, errors.IsWriteError(err))
	assert.Contains(t, err.Error(), output)
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	documented := writeInput(t, dir, "doc.json", `[{"name":"azurerm_subnet"}]`)
	undocumented := writeInput(t, dir, "undoc.json", `[]`)
	output := filepath.Join(dir, "out.json")

	ctx, _ := testContext(t)
	result, err := newMerger(t, merger.WithDryRun(true)).Run(ctx, merger.Paths{Documented: documented, Undocumented: undocumented, Output: output})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Total)
	assert.Contains(t, result.Summary(), "Would merge")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunWithCustomCollaborators(t *testing.T) {
	inputs := map[string][]resources.Record{
		"doc":   {resources.NewRecord("name", "azurerm_widget")},
		"undoc": {resources.NewRecord("name", "azurerm_gadget")},
	}
	var saved []resources.Record

	e, err := enhancer.New(enhancer.WithLabelPrefix(""))
	require.NoError(t, err)

	m := newMerger(t,
		merger.WithEnhancer(e),
		merger.WithLoader(merger.LoaderFunc(func(path string) ([]resources.Record, error) {
			return inputs[path], nil
		})),
		merger.WithWriter(merger.WriterFunc(func(_ string, records []resources.Record) error {
			saved = records
			return nil
		})),
	)

	ctx, _ := testContext(t)
	_, err = m.Run(ctx, merger.Paths{Documented: "doc", Undocumented: "undoc", Output: "out"})
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, "Gadget", saved[0].String("resource"))
	assert.Equal(t, "Widget", saved[1].String("resource"))
}

func TestOptionValidation(t *testing.T) {
	for _, opt := range []merger.Option{
		merger.WithLoader(nil),
		merger.WithWriter(nil),
		merger.WithEnhancer(nil),
	} {
		_, err := merger.New(opt)
		assert.True(t, errors.IsValidationError(err))
	}
}
