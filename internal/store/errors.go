package store

import "errors"

// Sentinel errors returned by [StateStore] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCorruptRecord is returned by Load when a stored record is not valid
	// JSON for its key.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrStorageUnavailable is returned when the backend cannot be opened,
	// migrated or reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnknownRecordKey is returned when a row carries a key outside
	// [models.RecordKeys].
	ErrUnknownRecordKey = errors.New("unknown record key")
)

// Low-level database operation errors, wrapped by the SQL store when an
// operation fails before any record can be decoded.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the records table
	// fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is rolled back at that point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an upsert or delete fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning a record row fails.
	ErrScanningRows = errors.New("failed to scan record rows")
)
