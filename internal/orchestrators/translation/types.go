package translation

import (
	"github.com/KirkDiggler/rpg-babele/internal/compendium"
	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

// MergeInput contains the request to apply a converter
type MergeInput struct {
	// Converter defaults to DefaultConverter
	Converter   string
	Source      any
	Translation any
}

// MergeOutput contains the converter result
type MergeOutput struct {
	Converter string
	Result    any
}

// TranslateInput contains the document to translate
type TranslateInput struct {
	Language   string
	Collection string
	Document   entities.Document
	Converter  string
}

// TranslateOutput contains the translated document.
// When no translation exists Document is the source and Translated is false.
type TranslateOutput struct {
	Document   entities.Document
	Translated bool
	MatchedKey string
	Converter  string
}

// ImportModuleInput contains the module to import
type ImportModuleInput struct {
	Module compendium.Module
}

// ImportModuleOutput summarizes an import
type ImportModuleOutput struct {
	Language    string
	Collections []ImportedCollection
}

// ImportedCollection describes one stored collection
type ImportedCollection struct {
	Name       string
	Label      string
	EntryCount int
}
