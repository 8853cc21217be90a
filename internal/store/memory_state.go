package store

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/reclaim/models"
)

// memoryStateStore keeps the encoded records in a map. It goes through the
// same JSON codec as the SQL store so both behave alike on load.
type memoryStateStore struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewMemoryStateStore returns an empty in-process [StateStore].
func NewMemoryStateStore() StateStore {
	return &memoryStateStore{records: make(map[string]string)}
}

func (s *memoryStateStore) Load(ctx context.Context) (models.State, error) {
	if err := ctx.Err(); err != nil {
		return models.State{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var state models.State
	for key, value := range s.records {
		if err := decodeRecord(&state, key, value); err != nil && !errors.Is(err, ErrUnknownRecordKey) {
			return models.State{}, err
		}
	}

	return state, nil
}

func (s *memoryStateStore) Save(ctx context.Context, state models.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records, err := encodeState(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range records {
		s.records[key] = value
	}

	return nil
}

func (s *memoryStateStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.records)

	return nil
}

func (s *memoryStateStore) Close() error {
	return nil
}
