package compendium

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-babele/internal/entities"
	"github.com/KirkDiggler/rpg-babele/internal/errors"
)

// Format identifies a translation file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// File is one parsed compendium translation file
type File struct {
	Collection string
	Label      string
	// Mapping maps translation field names to document paths. The safe-merge
	// converters do not consult it; it is carried for callers that do.
	Mapping map[string]any
	// Entries is keyed by source id or source name
	Entries map[string]entities.Document
}

// rawFile is the on-disk shape shared by both encodings
type rawFile struct {
	Label   string         `json:"label" yaml:"label"`
	Mapping map[string]any `json:"mapping" yaml:"mapping"`
	Entries any            `json:"entries" yaml:"entries"`
}

// Parse decodes a translation file body
func Parse(collection string, format Format, data []byte) (*File, error) {
	if collection == "" {
		return nil, errors.InvalidArgument("collection cannot be empty")
	}

	var raw rawFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid JSON translation file")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid YAML translation file")
		}
		raw.Entries = stringKeys(raw.Entries)
		if m, ok := stringKeys(map[string]any(raw.Mapping)).(map[string]any); ok {
			raw.Mapping = m
		}
	default:
		return nil, errors.InvalidArgumentf("unsupported format %q", format)
	}

	entries, err := collectEntries(raw.Entries)
	if err != nil {
		return nil, err
	}

	label := raw.Label
	if label == "" {
		label = collection
	}

	return &File{
		Collection: collection,
		Label:      label,
		Mapping:    raw.Mapping,
		Entries:    entries,
	}, nil
}

// collectEntries accepts entries as a mapping keyed by id or name, or as a
// sequence of entries carrying their own id or name
func collectEntries(v any) (map[string]entities.Document, error) {
	out := make(map[string]entities.Document)

	if v == nil {
		return out, nil
	}

	if m, ok := entities.AsMap(v); ok {
		for key, value := range m {
			entry, ok := entities.AsMap(value)
			if !ok {
				return nil, errors.InvalidArgumentf("entry %q is not a mapping", key)
			}
			out[key] = entities.Document(entry)
		}
		return out, nil
	}

	if seq, ok := entities.AsSlice(v); ok {
		for i, value := range seq {
			entry, ok := entities.AsMap(value)
			if !ok {
				return nil, errors.InvalidArgumentf("entry %d is not a mapping", i)
			}
			doc := entities.Document(entry)
			key := doc.GetID()
			if key == "" {
				key = doc.GetName()
			}
			if key == "" {
				return nil, errors.InvalidArgumentf("entry %d has neither id nor name", i)
			}
			out[key] = doc
		}
		return out, nil
	}

	return nil, errors.InvalidArgument("entries must be a mapping or a sequence")
}

// stringKeys rewrites the map[any]any values YAML produces for non-string
// keys (numeric advancement levels, for one) so entries stay JSON encodable
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = stringKeys(child)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[fmt.Sprint(k)] = stringKeys(child)
		}
		return out
	case []any:
		for i, child := range t {
			t[i] = stringKeys(child)
		}
		return t
	default:
		return v
	}
}
