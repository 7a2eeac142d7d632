// Package converters exposes the merge engine as named converters and
// registers them with a translation provider's converter registry.
package converters

//go:generate mockgen -destination=mock/mock_registry.go -package=convertersmock github.com/KirkDiggler/rpg-babele/internal/converters Registry

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-babele/internal/entities"
	"github.com/KirkDiggler/rpg-babele/internal/errors"
	"github.com/KirkDiggler/rpg-babele/internal/merge"
)

// Converter names as seen by translation files and the provider
const (
	NameMergeEntity      = "safeMergeEntity"
	NameMergeEffects     = "safeMergeEffects"
	NameMergeEmbedded    = "safeMergeEmbedded"
	NameMergeActivities  = "safeMergeActivities"
	NameMergeFlags       = "safeMergeFlags"
	NameMergeAdvancement = "safeMergeAdvancement"
	NamePages            = "dnd5ePages"
)

// Converter turns a source value and its translation into the translated
// value. Converters never fail; a translation they cannot use leaves the
// source as it was.
type Converter func(source, translation any) any

// Registry is the converter registry of a translation provider
type Registry interface {
	// RegisterConverters adds or replaces converters by name
	RegisterConverters(converters map[string]Converter) error
}

// Operations returns every converter backed by merger
func Operations(merger *merge.Merger) map[string]Converter {
	return map[string]Converter{
		NameMergeEntity: func(source, translation any) any {
			return mergeEntity(merger, source, translation)
		},
		NameMergeEffects: func(source, translation any) any {
			return merger.MergeEffects(source, translation)
		},
		NameMergeEmbedded: func(source, translation any) any {
			return merger.MergeEmbedded(source, translation)
		},
		NameMergeActivities: func(source, translation any) any {
			return merger.MergeActivities(source, translation)
		},
		NameMergeFlags: func(source, translation any) any {
			return merger.MergeFlags(source, translation)
		},
		NameMergeAdvancement: func(source, translation any) any {
			return merger.MergeAdvancement(source, translation)
		},
		NamePages: func(source, translation any) any {
			return merger.MergePages(source, translation)
		},
	}
}

// mergeEntity adapts MergeEntity to untyped values. A source that is not a
// document is returned as-is.
func mergeEntity(merger *merge.Merger, source, translation any) any {
	src, ok := entities.AsMap(source)
	if !ok {
		return source
	}
	tr, ok := entities.AsMap(translation)
	if !ok {
		return source
	}
	return map[string]any(merger.MergeEntity(src, tr))
}

// Register installs the merge converters into registry. A missing or failing
// registry is reported and leaves the provider without these converters; it
// never aborts the caller's startup.
func Register(registry Registry, merger *merge.Merger) error {
	if merger == nil {
		merger = merge.Default()
	}

	if registry == nil {
		slog.Warn("Translation provider unavailable, merge converters not registered")
		return errors.Unavailable("converter registry is not available")
	}

	ops := Operations(merger)
	if err := registry.RegisterConverters(ops); err != nil {
		slog.Warn("Failed to register merge converters",
			"error", err,
		)
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to register converters")
	}

	slog.Info("Merge converters registered",
		"converters", sortedNames(ops),
		"namespace", merger.Namespace(),
	)
	return nil
}

func sortedNames(ops map[string]Converter) []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
