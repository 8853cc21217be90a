package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/models"
)

const (
	maxSaveAttempts = 3
	saveRetryDelay  = 100 * time.Millisecond
)

// sqlStateStore is the database/sql implementation of [StateStore] on top of
// the records table. It serves both SQLite and PostgreSQL.
type sqlStateStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLStateStore constructs a [StateStore] over an already migrated [DB].
func NewSQLStateStore(db *DB, logger *logger.Logger) StateStore {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql state store")
	return &sqlStateStore{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Load reads every row of the records table and decodes it into the matching
// part of the state. Unknown keys are skipped with a warning.
func (s *sqlStateStore) Load(ctx context.Context) (models.State, error) {
	query, args, err := s.db.selectRecordsQuery()
	if err != nil {
		return models.State{}, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlStateStore.Load").Msg("error selecting records")
		return models.State{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var state models.State
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			s.logger.Err(err).Str("func", "*sqlStateStore.Load").Msg("error scanning record")
			return models.State{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if err = decodeRecord(&state, key, value); err != nil {
			if errors.Is(err, ErrUnknownRecordKey) {
				s.logger.Warn().Str("key", key).Msg("skipping unknown record")
				continue
			}
			s.logger.Err(err).Str("func", "*sqlStateStore.Load").Str("key", key).Msg("corrupt record")
			return models.State{}, err
		}
	}

	if err = rows.Err(); err != nil {
		return models.State{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return state, nil
}

// Save upserts the four records in a single transaction. Retryable backend
// errors are retried a bounded number of times.
func (s *sqlStateStore) Save(ctx context.Context, state models.State) error {
	records, err := encodeState(state)
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		err = s.save(ctx, records)
		if err == nil || attempt == maxSaveAttempts || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		s.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying state save")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * saveRetryDelay):
		}
	}
}

func (s *sqlStateStore) save(ctx context.Context, records map[string]string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlStateStore.save").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	at := s.now()
	for _, key := range models.RecordKeys {
		if err = s.upsert(ctx, tx, key, records[key], at); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "*sqlStateStore.save").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqlStateStore) upsert(ctx context.Context, tx *sql.Tx, key, value string, at time.Time) error {
	query, args, err := s.db.upsertRecordQuery(key, value, at)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqlStateStore.upsert").Str("key", key).Msg("error upserting record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Reset deletes every record.
func (s *sqlStateStore) Reset(ctx context.Context) error {
	query, args, err := s.db.deleteRecordsQuery()
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqlStateStore.Reset").Msg("error deleting records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlStateStore) Close() error {
	return s.db.Close()
}
