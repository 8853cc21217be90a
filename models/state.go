// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Persisted record keys. Each key holds one JSON document.
const (
	RecordUserProfile   = "userProfile"
	RecordContacts      = "contacts"
	RecordActivityLog   = "activityLog"
	RecordNotifications = "notifications"
)

// RecordKeys lists every persisted record key in a stable order.
var RecordKeys = []string{
	RecordUserProfile,
	RecordContacts,
	RecordActivityLog,
	RecordNotifications,
}

// State is the full session state persisted as four independent records.
// ActivityLog is stored oldest-first.
type State struct {
	Profile       *UserProfile       `json:"userProfile"`
	Contacts      []Contact          `json:"contacts"`
	ActivityLog   []ActivityLogEntry `json:"activityLog"`
	Notifications []Notification     `json:"notifications"`
}

// Snapshot is a read-only view of the session handed to the rendering layer.
// ActivityLog is ordered newest-first.
type Snapshot struct {
	Profile       *UserProfile       `json:"userProfile"`
	Contacts      []Contact          `json:"contacts"`
	ActivityLog   []ActivityLogEntry `json:"activityLog"`
	Notifications []Notification     `json:"notifications"`
	Error         string             `json:"error,omitempty"`
}
