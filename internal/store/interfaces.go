package store

import (
	"context"

	"github.com/MKhiriev/reclaim/models"
)

// StateStore persists the session as four independent JSON records keyed by
// [models.RecordKeys].
//
//go:generate mockgen -source=interfaces.go -destination=../mock/state_store_mock.go -package=mock
type StateStore interface {
	// Load returns every stored record. A missing key leaves the matching
	// field at its zero value.
	Load(ctx context.Context) (models.State, error)
	// Save writes all four records in one transaction.
	Save(ctx context.Context, state models.State) error
	// Reset deletes every record.
	Reset(ctx context.Context) error
	// Close releases the backend.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
