package resources_test

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aztfmod/cafmerge/pkg/resources"
)

func TestRecordSetKeepsInsertionOrder(t *testing.T) {
	var rec resources.Record
	rec.Set("name", "azurerm_subnet")
	rec.Set("min_length", 1)
	rec.Set("slug", "snet")
	rec.Set("name", "azurerm_virtual_network")

	assert.Equal(t, []string{"name", "min_length", "slug"}, rec.Keys())
	assert.Equal(t, "azurerm_virtual_network", rec.Name())
	assert.Equal(t, 3, rec.Len())
}

func TestRecordSetDefault(t *testing.T) {
	rec := resources.NewRecord("name", "azurerm_subnet", "slug", "custom")

	assert.False(t, rec.SetDefault("slug", "snet"))
	assert.Equal(t, "custom", rec.String("slug"))

	assert.True(t, rec.SetDefault("resource", "Subnet"))
	assert.Equal(t, "Subnet", rec.String("resource"))
}

func TestRecordDelete(t *testing.T) {
	rec := resources.NewRecord("name", "a", "slug", "b", "scope", "c")
	rec.Delete("slug")
	rec.Delete("missing")

	assert.Equal(t, []string{"name", "scope"}, rec.Keys())
	assert.False(t, rec.Has("slug"))
}

func TestRecordAccessors(t *testing.T) {
	rec := resources.NewRecord("name", 42, "out_of_doc", true, "dashes", "yes")

	assert.Equal(t, "", rec.Name(), "non-string names read as empty")
	assert.True(t, rec.Bool("out_of_doc"))
	assert.False(t, rec.Bool("dashes"))
	assert.False(t, rec.Bool("missing"))

	var empty resources.Record
	assert.Equal(t, "", empty.Name())
	assert.False(t, empty.Has("name"))
	assert.Empty(t, empty.Keys())
}

func TestRecordClone(t *testing.T) {
	rec := resources.NewRecord("name", "azurerm_subnet")
	clone := rec.Clone()
	clone.Set("slug", "snet")

	assert.False(t, rec.Has("slug"))
	assert.True(t, clone.Has("slug"))
}

func TestNewRecordPanicsOnOddPairs(t *testing.T) {
	assert.Panics(t, func() { resources.NewRecord("name") })
	assert.Panics(t, func() { resources.NewRecord(1, "x") })
}

func TestOriginString(t *testing.T) {
	assert.Equal(t, "documented", resources.OriginDocumented.String())
	assert.Equal(t, "undocumented", resources.OriginUndocumented.String())
	assert.Equal(t, "unknown", resources.Origin(9).String())
}

func TestRecordJSONRoundTripPreservesLayout(t *testing.T) {
	input := `{"name":"azurerm_app_service","min_length":2,"max_length":60,"validation_regex":"^[0-9A-Za-z-]{2,60}$","scope":"global","dashes":true,"regex":"/[^0-9A-Za-z-]/","ratio":1.50,"tags":["a","b"],"nested":{"z":1,"a":2}}`

	var rec resources.Record
	require.NoError(t, json.Unmarshal([]byte(input), &rec))

	assert.Equal(t,
		[]string{"name", "min_length", "max_length", "validation_regex", "scope", "dashes", "regex", "ratio", "tags", "nested"},
		rec.Keys())

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestRecordJSONDoesNotEscape(t *testing.T) {
	rec := resources.NewRecord("name", "azurerm_x", "resource", "Gerät <beta> & co")

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"azurerm_x","resource":"Gerät <beta> & co"}`, string(out))
}

func TestRecordUnmarshalJSONRejectsNonObjects(t *testing.T) {
	for _, input := range []string{`null`, `"x"`, `[1]`, `3`} {
		var records []resources.Record
		err := json.Unmarshal([]byte("["+input+"]"), &records)
		assert.Error(t, err, input)
	}
}

func TestRecordYAMLRoundTrip(t *testing.T) {
	input := "- name: azurerm_subnet\n  min_length: 1\n  dashes: true\n  slug: snet\n"

	var raw []yaml.MapSlice
	require.NoError(t, yaml.UnmarshalWithOptions([]byte(input), &raw, yaml.UseOrderedMap()))
	require.Len(t, raw, 1)

	rec := resources.FromMapSlice(raw[0])
	assert.Equal(t, []string{"name", "min_length", "dashes", "slug"}, rec.Keys())
	assert.Equal(t, "azurerm_subnet", rec.Name())

	out, err := yaml.Marshal([]resources.Record{rec})
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestRecordYAMLConvertsJSONNumbers(t *testing.T) {
	var rec resources.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"n","max_length":63,"ratio":0.5}`), &rec))

	out, err := yaml.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, "name: n\nmax_length: 63\nratio: 0.5\n", string(out))
}

func TestNames(t *testing.T) {
	records := []resources.Record{
		resources.NewRecord("name", "b"),
		resources.NewRecord("slug", "x"),
	}
	assert.Equal(t, []string{"b", ""}, resources.Names(records))
}
