// Package notify simulates delivery of alert messages to trusted contacts.
// Each notification is created pending and advanced to sent, then delivered,
// by cancellable timers.
package notify

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/MKhiriev/reclaim/internal/config"
	"github.com/MKhiriev/reclaim/models"
)

// Sink receives delivery advances once their delay has elapsed. gen is the
// scheduler generation the advance was scheduled under; a sink must drop
// advances whose generation is no longer current.
type Sink interface {
	ApplyDelivery(gen uint64, notificationID string, next models.DeliveryStatus, at time.Time)
}

// Request describes one dispatch.
type Request struct {
	Type             models.NotificationType
	ProfileName      string
	LastVerification *time.Time
	Platforms        []string
	// Message is free text embedded by the additional alert and recovery
	// request templates.
	Message string
	SentAt  time.Time
}

// Dispatcher creates notifications and schedules their simulated delivery.
type Dispatcher struct {
	scheduler *Scheduler
	delays    config.Delivery
	sink      Sink
	newID     func() string
	now       func() time.Time
	jitter    func(lo, hi time.Duration) time.Duration
}

// NewDispatcher wires a dispatcher to its scheduler and sink.
func NewDispatcher(delays config.Delivery, scheduler *Scheduler, sink Sink, newID func() string, now func() time.Time) *Dispatcher {
	return &Dispatcher{
		scheduler: scheduler,
		delays:    delays,
		sink:      sink,
		newID:     newID,
		now:       now,
		jitter:    uniform,
	}
}

// Dispatch creates one pending notification per contact and schedules its
// pending → sent → delivered progression. It returns ErrNoActiveContacts
// without creating anything when contacts is empty. Dispatch is not
// idempotent: every call yields a new batch.
func (d *Dispatcher) Dispatch(contacts []models.Contact, req Request) ([]models.Notification, error) {
	if len(contacts) == 0 {
		return nil, ErrNoActiveContacts
	}

	sentAt := req.SentAt.UTC()
	batch := make([]models.Notification, 0, len(contacts))
	for _, c := range contacts {
		body, err := render(templateFor(req.Type), messageData{
			ContactName:      c.Name,
			ProfileName:      req.ProfileName,
			LastVerification: req.LastVerification,
			Platforms:        slices.Clone(req.Platforms),
			Message:          req.Message,
		})
		if err != nil {
			return nil, fmt.Errorf("error rendering %s message: %w", req.Type, err)
		}

		batch = append(batch, models.Notification{
			NotificationID:   d.newID(),
			ContactID:        c.ContactID,
			MessageContent:   body,
			SentAt:           sentAt,
			DeliveryStatus:   models.DeliveryPending,
			NotificationType: req.Type,
		})
	}

	// the whole batch exists before any timer can fire
	for _, n := range batch {
		d.scheduleDelivery(n.NotificationID)
	}

	return batch, nil
}

func (d *Dispatcher) scheduleDelivery(id string) {
	toSent := d.jitter(d.delays.SentDelayMin, d.delays.SentDelayMax)
	toDelivered := toSent + d.jitter(d.delays.DeliveredDelayMin, d.delays.DeliveredDelayMax)

	d.scheduler.Schedule(id, toSent, func(gen uint64) {
		d.sink.ApplyDelivery(gen, id, models.DeliverySent, d.now())
	})
	d.scheduler.Schedule(id, toDelivered, func(gen uint64) {
		d.sink.ApplyDelivery(gen, id, models.DeliveryDelivered, d.now())
	})
}

// uniform returns a random duration in [lo, hi].
func uniform(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + rand.N(hi-lo+1)
}

// Resume schedules the remaining delivery steps of a notification restored
// from storage. Terminal and delivered notifications are left alone.
func (d *Dispatcher) Resume(n models.Notification) {
	switch n.DeliveryStatus {
	case models.DeliveryPending:
		d.scheduleDelivery(n.NotificationID)
	case models.DeliverySent:
		id := n.NotificationID
		d.scheduler.Schedule(id, d.jitter(d.delays.DeliveredDelayMin, d.delays.DeliveredDelayMax), func(gen uint64) {
			d.sink.ApplyDelivery(gen, id, models.DeliveryDelivered, d.now())
		})
	}
}
