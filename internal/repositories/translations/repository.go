// Package translations provides persistence for imported compendium
// translations
package translations

//go:generate mockgen -destination=mock/mock_repository.go -package=translationsmock github.com/KirkDiggler/rpg-babele/internal/repositories/translations Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

// Repository stores translation entries per language and compendium
// collection. Entries are keyed the way translation files key them: by source
// document id or by source document name.
type Repository interface {
	// PutCollection replaces every entry of a collection
	// Returns errors.InvalidArgument for missing language or collection
	// Returns errors.Internal for storage failures
	PutCollection(ctx context.Context, input PutCollectionInput) (*PutCollectionOutput, error)

	// GetEntry retrieves a single translation entry
	// Returns errors.NotFound if the collection has no entry under the key
	GetEntry(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error)

	// GetCollection retrieves collection metadata
	// Returns errors.NotFound if the collection was never imported
	GetCollection(ctx context.Context, input GetCollectionInput) (*GetCollectionOutput, error)

	// DeleteCollection removes a collection and all its entries
	// Returns errors.NotFound if the collection was never imported
	DeleteCollection(ctx context.Context, input DeleteCollectionInput) (*DeleteCollectionOutput, error)
}

// PutCollectionInput defines the input for storing a collection
type PutCollectionInput struct {
	Language   string
	Collection string
	Label      string
	Entries    map[string]entities.Document
}

// PutCollectionOutput defines the output for storing a collection
type PutCollectionOutput struct {
	EntryCount int
	ImportedAt time.Time
}

// GetEntryInput defines the input for getting an entry
type GetEntryInput struct {
	Language   string
	Collection string
	Key        string
}

// GetEntryOutput defines the output for getting an entry
type GetEntryOutput struct {
	Entry entities.Document
}

// GetCollectionInput defines the input for getting collection metadata
type GetCollectionInput struct {
	Language   string
	Collection string
}

// GetCollectionOutput defines the output for getting collection metadata
type GetCollectionOutput struct {
	Label      string
	EntryCount int
	ImportedAt time.Time
}

// DeleteCollectionInput defines the input for deleting a collection
type DeleteCollectionInput struct {
	Language   string
	Collection string
}

// DeleteCollectionOutput defines the output for deleting a collection
type DeleteCollectionOutput struct{}
