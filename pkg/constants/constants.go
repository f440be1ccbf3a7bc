// Package constants provides shared constants used throughout the cafmerge codebase.
// This includes file permissions, output formatting and the default values used
// when a resource definition has no entry in the reference table.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Output formatting constants
const (
	// IndentWidth is the number of spaces used to indent written definitions
	IndentWidth = 4

	// JSONIndent is the indent string passed to the JSON encoder
	JSONIndent = "    "
)

// Enrichment defaults
const (
	// UnknownNamespace is the resource_provider_namespace placeholder for
	// definitions missing from the reference table
	UnknownNamespace = "Unknown"

	// LabelPrefix is prepended to synthesized resource labels
	LabelPrefix = "Azure"

	// ResourceTypePrefix is the Terraform provider token stripped from a
	// resource type name before a label is synthesized from it
	ResourceTypePrefix = "azurerm_"
)

// Config constants
const (
	// ConfigName is the base name of the optional config file
	ConfigName = ".cafmerge"

	// ConfigType is the format of the optional config file
	ConfigType = "yaml"
)
