// Package activity holds the append-only activity log of a session.
package activity

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/reclaim/models"
)

// Log is the append-only list of lifecycle events of one profile. Entries are
// kept oldest-first and handed out newest-first.
//
// Log is not safe for concurrent use; the lifecycle service serializes access.
type Log struct {
	entries []models.ActivityLogEntry
	owner   string
	newID   func() string
	now     func() time.Time
}

// NewLog returns an empty log that stamps entries with ids from newID and
// times from now.
func NewLog(newID func() string, now func() time.Time) *Log {
	return &Log{newID: newID, now: now}
}

// Restore replaces the log content with persisted entries (oldest-first) and
// binds the log to the given profile id.
func (l *Log) Restore(owner string, entries []models.ActivityLogEntry) {
	l.owner = owner
	l.entries = slices.Clone(entries)
}

// Bind attaches the log to a profile. An empty owner disables recording.
func (l *Log) Bind(owner string) {
	l.owner = owner
}

// Record appends one entry. Without a bound profile the call does nothing.
// Details are stored in their JSON form (numbers as float64, lists as []any)
// so a reloaded log equals the live one.
func (l *Log) Record(eventType models.EventType, details map[string]any, source models.SystemSource) {
	if l.owner == "" {
		return
	}

	l.entries = append(l.entries, models.ActivityLogEntry{
		EntryID:      l.newID(),
		EventType:    eventType,
		Timestamp:    l.now().UTC(),
		Details:      normalizeDetails(details),
		SystemSource: source,
	})
}

// normalizeDetails deep-copies details through JSON. A value JSON cannot
// encode is kept as its fmt rendering.
func normalizeDetails(details map[string]any) map[string]any {
	out := make(map[string]any, len(details))
	for k, v := range details {
		raw, err := json.Marshal(v)
		if err != nil {
			out[k] = fmt.Sprint(v)
			continue
		}

		var decoded any
		if err = json.Unmarshal(raw, &decoded); err != nil {
			out[k] = fmt.Sprint(v)
			continue
		}
		out[k] = decoded
	}
	return out
}

// Entries returns a newest-first copy of the log.
func (l *Log) Entries() []models.ActivityLogEntry {
	out := slices.Clone(l.entries)
	slices.Reverse(out)
	return out
}

// Persisted returns an oldest-first copy suitable for storage.
func (l *Log) Persisted() []models.ActivityLogEntry {
	return slices.Clone(l.entries)
}

// Len reports the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Reset drops every entry and unbinds the profile.
func (l *Log) Reset() {
	l.entries = nil
	l.owner = ""
}
