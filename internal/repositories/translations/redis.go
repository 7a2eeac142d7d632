package translations

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-babele/internal/entities"
	"github.com/KirkDiggler/rpg-babele/internal/errors"
	"github.com/KirkDiggler/rpg-babele/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-babele/internal/redis"
)

const (
	keyPrefix = "translation:"

	maxTxAttempts = 5

	metaLabel      = "label"
	metaEntryCount = "entry_count"
	metaImportedAt = "imported_at"

	// Error messages
	errLanguageEmpty   = "language cannot be empty"
	errCollectionEmpty = "collection cannot be empty"
	errKeyEmpty        = "entry key cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis translation repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Clock == nil {
		return errors.InvalidArgument("clock cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed translation repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

func (r *redisRepository) PutCollection(ctx context.Context, input PutCollectionInput) (*PutCollectionOutput, error) {
	if err := validateScope(input.Language, input.Collection); err != nil {
		return nil, err
	}

	encoded := make(map[string][]byte, len(input.Entries))
	for key, entry := range input.Entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal entry %s", key)
		}
		encoded[key] = data
	}

	now := r.clock.Now()
	keysKey := KeysKey(input.Language, input.Collection)

	// Replace, never append: entries dropped from a file must disappear
	replace := func(tx *redis.Tx) error {
		previous, err := tx.SMembers(ctx, keysKey).Result()
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, key := range previous {
				pipe.Del(ctx, EntryKey(input.Language, input.Collection, key))
			}
			pipe.Del(ctx, keysKey)

			members := make([]any, 0, len(encoded))
			for key, data := range encoded {
				pipe.Set(ctx, EntryKey(input.Language, input.Collection, key), data, 0)
				members = append(members, key)
			}
			if len(members) > 0 {
				pipe.SAdd(ctx, keysKey, members...)
			}

			pipe.HSet(ctx, MetaKey(input.Language, input.Collection), map[string]any{
				metaLabel:      input.Label,
				metaEntryCount: len(encoded),
				metaImportedAt: now.Unix(),
			})
			return nil
		})
		return err
	}

	if err := r.watch(ctx, replace, keysKey); err != nil {
		return nil, errors.Wrapf(err, "failed to store collection %s", input.Collection)
	}

	return &PutCollectionOutput{
		EntryCount: len(input.Entries),
		ImportedAt: now,
	}, nil
}

func (r *redisRepository) GetEntry(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
	if err := validateScope(input.Language, input.Collection); err != nil {
		return nil, err
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	result, err := r.client.Get(ctx, EntryKey(input.Language, input.Collection, input.Key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("translation entry %s not found", input.Key).
				WithMeta("language", input.Language).
				WithMeta("collection", input.Collection)
		}
		return nil, errors.Wrapf(err, "failed to get translation entry %s", input.Key)
	}

	var entry entities.Document
	if err := json.Unmarshal([]byte(result), &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal translation entry %s", input.Key)
	}

	return &GetEntryOutput{Entry: entry}, nil
}

func (r *redisRepository) GetCollection(ctx context.Context, input GetCollectionInput) (*GetCollectionOutput, error) {
	if err := validateScope(input.Language, input.Collection); err != nil {
		return nil, err
	}

	meta, err := r.client.HGetAll(ctx, MetaKey(input.Language, input.Collection)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get collection %s", input.Collection)
	}
	if len(meta) == 0 {
		return nil, errors.NotFoundf("collection %s not found for language %s", input.Collection, input.Language)
	}

	count, err := strconv.Atoi(meta[metaEntryCount])
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt entry count for collection %s", input.Collection)
	}
	importedAt, err := strconv.ParseInt(meta[metaImportedAt], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt import time for collection %s", input.Collection)
	}

	return &GetCollectionOutput{
		Label:      meta[metaLabel],
		EntryCount: count,
		ImportedAt: time.Unix(importedAt, 0),
	}, nil
}

func (r *redisRepository) DeleteCollection(ctx context.Context, input DeleteCollectionInput) (*DeleteCollectionOutput, error) {
	if err := validateScope(input.Language, input.Collection); err != nil {
		return nil, err
	}

	metaKey := MetaKey(input.Language, input.Collection)
	exists, err := r.client.Exists(ctx, metaKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check collection existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("collection %s not found for language %s", input.Collection, input.Language)
	}

	keysKey := KeysKey(input.Language, input.Collection)
	remove := func(tx *redis.Tx) error {
		keys, err := tx.SMembers(ctx, keysKey).Result()
		if err != nil {
			return err
		}

		toDelete := make([]string, 0, len(keys)+2)
		for _, key := range keys {
			toDelete = append(toDelete, EntryKey(input.Language, input.Collection, key))
		}
		toDelete = append(toDelete, keysKey, metaKey)

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, toDelete...)
			return nil
		})
		return err
	}

	if err := r.watch(ctx, remove, keysKey, metaKey); err != nil {
		return nil, errors.Wrapf(err, "failed to delete collection %s", input.Collection)
	}

	return &DeleteCollectionOutput{}, nil
}

// watch runs fn as an optimistic transaction over keys. A transaction that
// lost a race with another writer of the same collection is retried.
func (r *redisRepository) watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	var err error
	for range maxTxAttempts {
		err = r.client.Watch(ctx, fn, keys...)
		if err != redis.TxFailedErr {
			return err
		}
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "collection kept changing during update")
}

func validateScope(language, collection string) error {
	if language == "" {
		return errors.InvalidArgument(errLanguageEmpty)
	}
	if collection == "" {
		return errors.InvalidArgument(errCollectionEmpty)
	}
	return nil
}

// EntryKey returns the Redis key of a translation entry. Keys of one
// collection share a hash tag so a transaction over a collection stays on one
// cluster slot.
// Exposed for testing purposes
func EntryKey(language, collection, key string) string {
	return fmt.Sprintf("%s{%s:%s}:entry:%s", keyPrefix, language, collection, key)
}

// KeysKey returns the Redis key of the set of entry keys of a collection
func KeysKey(language, collection string) string {
	return fmt.Sprintf("%s{%s:%s}:keys", keyPrefix, language, collection)
}

// MetaKey returns the Redis key of collection metadata
func MetaKey(language, collection string) string {
	return fmt.Sprintf("%s{%s:%s}:meta", keyPrefix, language, collection)
}
