package filterstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/timshannon/badgerhold/v4"
)

type filterRecord struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

type badgerStore struct {
	store *badgerhold.Store
}

// NewBadgerStore Creates a store persisted in a Badger database in the directory path
func NewBadgerStore(path string) (Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create filter store directory: %w", err)
	}
	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open filter store %s: %w", path, err)
	}
	log.Debug().Str("pkg", "filterstore").Str("path", path).Msg("Filter store opened")
	return &badgerStore{store: store}, nil
}

func (s *badgerStore) Load(_ context.Context, key string) ([]byte, error) {
	var record filterRecord
	if err := s.store.Get(key, &record); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return record.Value, nil
}

func (s *badgerStore) Save(_ context.Context, key string, value []byte) error {
	record := filterRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.store.Upsert(key, &record); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *badgerStore) Close() error {
	return s.store.Close()
}
