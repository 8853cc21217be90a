package notify

import "errors"

// ErrNoActiveContacts is returned by Dispatch when there is nobody to alert.
// Nothing is created in that case.
var ErrNoActiveContacts = errors.New("no active contacts")

// ErrNotificationNotFound is returned when no notification carries the id.
var ErrNotificationNotFound = errors.New("notification not found")
