// Package compendium reads translation modules from disk.
//
// A module is a directory of compendium translation files, one per
// collection, in the layout the Babele Foundry module ships:
//
//	compendium/
//	  dnd5e.classfeatures.json
//	  dnd5e.spells.yaml
//
// Each file carries a label, an optional field mapping and the translated
// entries keyed by source id or source name.
package compendium

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-babele/internal/errors"
)

// Module describes a registered translation module
type Module struct {
	// Name is the owning module id, e.g. dnd5e-es
	Name string
	// Lang is a BCP 47 language tag
	Lang string
	// Dir holds the translation files
	Dir string
}

// Validate checks the module registration
func (m *Module) Validate() error {
	if m == nil {
		return errors.InvalidArgument("module cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", m.Name, vb)
	errors.ValidateRequired("Dir", m.Dir, vb)
	if m.Lang == "" {
		vb.RequiredField("Lang")
	} else if _, err := language.Parse(m.Lang); err != nil {
		vb.InvalidField("Lang", fmt.Sprintf("%q is not a language tag", m.Lang))
	}

	return vb.Build()
}

// Language returns the canonical form of Lang, e.g. "pt-br" becomes "pt-BR"
func (m *Module) Language() (string, error) {
	tag, err := language.Parse(m.Lang)
	if err != nil {
		return "", errors.InvalidArgumentf("invalid language %q", m.Lang)
	}
	return tag.String(), nil
}

// Load validates the module and reads every translation file in its directory
func (m *Module) Load() ([]*File, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return LoadDir(m.Dir)
}

// LoadDir parses every translation file directly inside dir, ordered by
// collection name. Subdirectories and unrelated files are ignored.
func LoadDir(dir string) ([]*File, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("translation directory %s not found", dir)
		}
		return nil, errors.Wrapf(err, "failed to read translation directory %s", dir)
	}

	var files []*File
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		format, ok := formatOf(de.Name())
		if !ok {
			continue
		}

		file, err := ParseFile(filepath.Join(dir, de.Name()), format)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Collection < files[j].Collection
	})

	return files, nil
}

// ParseFile reads a single translation file; the collection name is the
// file name without its extension
func ParseFile(path string, format Format) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	base := filepath.Base(path)
	collection := strings.TrimSuffix(base, filepath.Ext(base))

	file, err := Parse(collection, format, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path).WithMeta("path", path)
	}
	return file, nil
}

func formatOf(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}
