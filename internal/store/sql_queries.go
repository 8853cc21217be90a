// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"
)

const (
	recordsTable = "records"

	upsertConflictClause = "ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

func (db *DB) selectRecordsQuery() (string, []any, error) {
	query, args, err := db.builder().
		Select("key", "value").
		From(recordsTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) upsertRecordQuery(key, value string, at time.Time) (string, []any, error) {
	query, args, err := db.builder().
		Insert(recordsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix(upsertConflictClause).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) deleteRecordsQuery() (string, []any, error) {
	query, args, err := db.builder().
		Delete(recordsTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
