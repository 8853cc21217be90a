// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeliveryStatus is the simulated delivery state of a notification.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryRead      DeliveryStatus = "read"
	DeliveryFailed    DeliveryStatus = "failed"
)

var deliveryRank = map[DeliveryStatus]int{
	DeliveryPending:   0,
	DeliverySent:      1,
	DeliveryDelivered: 2,
	DeliveryRead:      3,
}

// CanAdvanceTo reports whether moving from s to next is a forward step.
// Failed is terminal and reachable from any non-terminal state.
func (s DeliveryStatus) CanAdvanceTo(next DeliveryStatus) bool {
	if s == DeliveryFailed || s == DeliveryRead {
		return false
	}
	if next == DeliveryFailed {
		return true
	}
	from, ok := deliveryRank[s]
	if !ok {
		return false
	}
	to, ok := deliveryRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

// NotificationType classifies why a notification was dispatched.
type NotificationType string

const (
	NotificationBreachAlert      NotificationType = "breach_alert"
	NotificationAdditionalAlert  NotificationType = "additional_alert"
	NotificationRecoveryRequest  NotificationType = "recovery_request"
	NotificationReviewResolution NotificationType = "review_resolution"
	NotificationRecoveryUpdate   NotificationType = "recovery_update"
)

// Notification is one simulated message to one contact.
type Notification struct {
	NotificationID   string           `json:"notificationId"`
	ContactID        string           `json:"contactId"`
	MessageContent   string           `json:"messageContent"`
	SentAt           time.Time        `json:"sentAt"`
	DeliveryStatus   DeliveryStatus   `json:"deliveryStatus"`
	NotificationType NotificationType `json:"notificationType"`

	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
}

// Advance moves the notification to next if that is a forward step and
// reports whether anything changed.
func (n *Notification) Advance(next DeliveryStatus, at time.Time) bool {
	if !n.DeliveryStatus.CanAdvanceTo(next) {
		return false
	}
	n.DeliveryStatus = next
	switch next {
	case DeliveryDelivered:
		t := at.UTC()
		n.DeliveredAt = &t
	case DeliveryRead:
		t := at.UTC()
		n.ReadAt = &t
	}
	return true
}
