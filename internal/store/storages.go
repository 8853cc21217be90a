package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/reclaim/internal/config"
	"github.com/MKhiriev/reclaim/internal/logger"
)

// MemoryDSN selects the in-process backend.
const MemoryDSN = ":memory:"

// NewStateStore picks a backend from cfg.DB.DSN, connects and migrates it:
//   - ":memory:" → in-process map
//   - "postgres://" or "postgresql://" → PostgreSQL via pgx
//   - anything else → SQLite file path
func NewStateStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (StateStore, error) {
	dsn := cfg.DB.DSN

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == MemoryDSN:
		log.Info().Msg("using in-memory state store")
		return NewMemoryStateStore(), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return NewSQLStateStore(db, log), nil
}
