package notify

import (
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/reclaim/models"
)

// Advance moves the notification with the given id to next if that is a
// forward step. It reports whether anything changed.
func Advance(notifications []models.Notification, id string, next models.DeliveryStatus, at time.Time) (bool, error) {
	i := slices.IndexFunc(notifications, func(n models.Notification) bool { return n.NotificationID == id })
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
	}
	return notifications[i].Advance(next, at), nil
}
