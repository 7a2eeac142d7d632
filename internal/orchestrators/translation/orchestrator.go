// Package translation implements the translation orchestrator: applying
// registered converters to documents and importing translation modules
// into the store.
package translation

//go:generate mockgen -destination=mock/mock_service.go -package=translationmock github.com/KirkDiggler/rpg-babele/internal/orchestrators/translation Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-babele/internal/converters"
	"github.com/KirkDiggler/rpg-babele/internal/entities"
	"github.com/KirkDiggler/rpg-babele/internal/errors"
	"github.com/KirkDiggler/rpg-babele/internal/repositories/translations"
)

// DefaultConverter is applied when a request names no converter
const DefaultConverter = converters.NameMergeEntity

// Service defines the translation operations
type Service interface {
	// Merge applies a converter to an explicit source and translation
	Merge(ctx context.Context, input *MergeInput) (*MergeOutput, error)

	// Translate overlays the stored translation for a source document
	Translate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error)

	// ImportModule loads a translation module directory into the store
	ImportModule(ctx context.Context, input *ImportModuleInput) (*ImportModuleOutput, error)
}

// ConverterLookup resolves converters by registered name
type ConverterLookup interface {
	Lookup(name string) (converters.Converter, error)
}

// Config holds the dependencies for the translation orchestrator
type Config struct {
	Converters      ConverterLookup
	TranslationRepo translations.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Converters == nil {
		vb.RequiredField("Converters")
	}
	if c.TranslationRepo == nil {
		vb.RequiredField("TranslationRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	converters      ConverterLookup
	translationRepo translations.Repository
}

// NewOrchestrator creates a new translation orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		converters:      cfg.Converters,
		translationRepo: cfg.TranslationRepo,
	}, nil
}

func (o *orchestrator) converter(name string) (string, converters.Converter, error) {
	if name == "" {
		name = DefaultConverter
	}

	fn, err := o.converters.Lookup(name)
	if err != nil {
		return name, nil, err
	}
	return name, fn, nil
}

// Merge applies a converter to an explicit source and translation
func (o *orchestrator) Merge(ctx context.Context, input *MergeInput) (*MergeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Source == nil {
		return nil, errors.InvalidArgument("source is required")
	}

	name, fn, err := o.converter(input.Converter)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "applying converter", "converter", name)

	return &MergeOutput{
		Converter: name,
		Result:    fn(input.Source, input.Translation),
	}, nil
}

// Translate overlays the stored translation for a source document.
// Entries are looked up by document id first, then by document name.
func (o *orchestrator) Translate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Language", input.Language, vb)
	errors.ValidateRequired("Collection", input.Collection, vb)
	if input.Document == nil {
		vb.RequiredField("Document")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	name, fn, err := o.converter(input.Converter)
	if err != nil {
		return nil, err
	}

	entry, key, err := o.findEntry(ctx, input)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		slog.DebugContext(ctx, "no translation for document",
			"language", input.Language,
			"collection", input.Collection,
			"id", input.Document.GetID(),
			"name", input.Document.GetName())
		return &TranslateOutput{Document: input.Document}, nil
	}

	merged, ok := entities.AsMap(fn(map[string]any(input.Document), map[string]any(entry)))
	if !ok {
		return nil, errors.Internalf("converter %s did not produce a document", name)
	}

	return &TranslateOutput{
		Document:   entities.Document(merged),
		Translated: true,
		MatchedKey: key,
		Converter:  name,
	}, nil
}

func (o *orchestrator) findEntry(ctx context.Context, input *TranslateInput) (entities.Document, string, error) {
	for _, key := range []string{input.Document.GetID(), input.Document.GetName()} {
		if key == "" {
			continue
		}

		out, err := o.translationRepo.GetEntry(ctx, translations.GetEntryInput{
			Language:   input.Language,
			Collection: input.Collection,
			Key:        key,
		})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, "", errors.Wrapf(err, "failed to get translation for %s", key)
		}
		return out.Entry, key, nil
	}

	return nil, "", nil
}

// ImportModule loads a translation module directory into the store
func (o *orchestrator) ImportModule(ctx context.Context, input *ImportModuleInput) (*ImportModuleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	files, err := input.Module.Load()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load module %s", input.Module.Name)
	}

	lang, err := input.Module.Language()
	if err != nil {
		return nil, err
	}

	output := &ImportModuleOutput{Language: lang}
	for _, file := range files {
		stored, err := o.translationRepo.PutCollection(ctx, translations.PutCollectionInput{
			Language:   lang,
			Collection: file.Collection,
			Label:      file.Label,
			Entries:    file.Entries,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to store collection %s", file.Collection)
		}

		slog.InfoContext(ctx, "imported translation collection",
			"module", input.Module.Name,
			"language", lang,
			"collection", file.Collection,
			"entries", stored.EntryCount)

		output.Collections = append(output.Collections, ImportedCollection{
			Name:       file.Collection,
			Label:      file.Label,
			EntryCount: stored.EntryCount,
		})
	}

	if len(output.Collections) == 0 {
		slog.WarnContext(ctx, "translation module has no collections",
			"module", input.Module.Name,
			"dir", input.Module.Dir)
	}

	return output, nil
}

