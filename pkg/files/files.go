// Package files reads and writes collections of resource definitions.
//
// A collection is an array of objects stored as JSON or YAML; the format is
// chosen from the file extension. Written files use a fixed four-space
// indent, keep field order and write non-ASCII text literally, so the same
// collection always serializes to the same bytes.
//
// JSON numbers are written exactly as they were read: 1.50 stays 1.50 and
// large integers keep every digit. Every written file ends with a newline.
package files

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/aztfmod/cafmerge/pkg/constants"
	"github.com/aztfmod/cafmerge/pkg/errors"
	"github.com/aztfmod/cafmerge/pkg/resources"
)

// Format is a serialization format for definition collections.
type Format string

const (
	// FormatJSON is the default format.
	FormatJSON Format = "json"
	// FormatYAML is used for .yaml and .yml files.
	FormatYAML Format = "yaml"
)

// DetectFormat returns the format implied by the extension of path.
// Unknown extensions are treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat converts a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.NewValidationError("format", s, "must be json or yaml")
	}
}

// Load reads the definition collection stored at path.
// Every failure is returned as an *errors.LoadError naming path.
func Load(path string) ([]resources.Record, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewLoadError(path, errors.NewNotFoundError("file", path))
		}
		return nil, errors.NewLoadError(path, errors.NewIOError("stat", path, err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewLoadError(path, errors.NewIOError("read", path, err))
	}

	format := DetectFormat(path)
	records, err := Decode(data, format)
	if err != nil {
		return nil, errors.NewLoadError(path, errors.WrapParse(string(format), path, err))
	}
	return records, nil
}

// Decode parses a definition collection in the given format.
func Decode(data []byte, format Format) ([]resources.Record, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) ([]resources.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("expected an array of resource definitions")
	}

	records := []resources.Record{}
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeYAML(data []byte) ([]resources.Record, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, errors.New("expected an array of resource definitions")
	}

	records := make([]resources.Record, 0, len(items))
	for i, item := range items {
		ms, ok := item.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("item %d: resource definition must be a mapping", i)
		}
		records = append(records, resources.FromMapSlice(ms))
	}
	return records, nil
}

// Encode serializes records in the given format.
func Encode(records []resources.Record, format Format) ([]byte, error) {
	if records == nil {
		records = []resources.Record{}
	}

	switch format {
	case FormatYAML:
		if len(records) == 0 {
			return []byte("[]\n"), nil
		}
		return yaml.MarshalWithOptions(records,
			yaml.Indent(constants.IndentWidth),
			yaml.IndentSequence(false),
		)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", constants.JSONIndent)
		if err := enc.Encode(records); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// Save writes records to path, replacing any existing file.
// Every failure is returned as an *errors.WriteError naming path.
func Save(path string, records []resources.Record) error {
	data, err := Encode(records, DetectFormat(path))
	if err != nil {
		return errors.NewWriteError(path, err)
	}

	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.NewWriteError(path, errors.NewIOError("write", path, err))
	}
	return nil
}
