package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/reclaim/models"
)

// encodeState renders each part of state as the JSON value of its record key.
func encodeState(state models.State) (map[string]string, error) {
	parts := map[string]any{
		models.RecordUserProfile:   state.Profile,
		models.RecordContacts:      nonNil(state.Contacts),
		models.RecordActivityLog:   nonNil(state.ActivityLog),
		models.RecordNotifications: nonNil(state.Notifications),
	}

	records := make(map[string]string, len(parts))
	for key, part := range parts {
		value, err := json.Marshal(part)
		if err != nil {
			return nil, fmt.Errorf("error encoding %s record: %w", key, err)
		}
		records[key] = string(value)
	}

	return records, nil
}

// decodeRecord fills the part of state that belongs to key.
func decodeRecord(state *models.State, key, value string) error {
	var target any
	switch key {
	case models.RecordUserProfile:
		target = &state.Profile
	case models.RecordContacts:
		target = &state.Contacts
	case models.RecordActivityLog:
		target = &state.ActivityLog
	case models.RecordNotifications:
		target = &state.Notifications
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRecordKey, key)
	}

	if err := json.Unmarshal([]byte(value), target); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptRecord, key, err)
	}

	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
