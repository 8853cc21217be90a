package notify

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/reclaim/internal/config"
	"github.com/MKhiriev/reclaim/models"
)

type delivery struct {
	gen    uint64
	id     string
	status models.DeliveryStatus
}

type recordingSink struct {
	mu    sync.Mutex
	calls []delivery
}

func (s *recordingSink) ApplyDelivery(gen uint64, id string, next models.DeliveryStatus, _ time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, delivery{gen: gen, id: id, status: next})
}

func (s *recordingSink) snapshot() []delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]delivery(nil), s.calls...)
}

var testDelays = config.Delivery{
	SentDelayMin:      time.Millisecond,
	SentDelayMax:      2 * time.Millisecond,
	DeliveredDelayMin: 3 * time.Millisecond,
	DeliveredDelayMax: 4 * time.Millisecond,
}

func newTestDispatcher(delays config.Delivery) (*Dispatcher, *Scheduler, *recordingSink) {
	var seq int
	var mu sync.Mutex
	ids := func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("ntf-%d", seq)
	}
	sched := NewScheduler()
	sink := &recordingSink{}
	return NewDispatcher(delays, sched, sink, ids, time.Now), sched, sink
}

func activeContact(id, name string) models.Contact {
	return models.Contact{ContactID: id, Name: name, Status: models.ContactActive}
}

func TestDispatch_NoContacts(t *testing.T) {
	d, sched, _ := newTestDispatcher(testDelays)

	batch, err := d.Dispatch(nil, Request{Type: models.NotificationBreachAlert})

	assert.ErrorIs(t, err, ErrNoActiveContacts)
	assert.Empty(t, batch)
	assert.Zero(t, sched.Pending())
}

func TestDispatch_CreatesPendingBatchAndAdvancesInOrder(t *testing.T) {
	d, _, sink := newTestDispatcher(testDelays)
	verified := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	sentAt := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)

	batch, err := d.Dispatch([]models.Contact{activeContact("c1", "Alice")}, Request{
		Type:             models.NotificationBreachAlert,
		ProfileName:      "Ada",
		LastVerification: &verified,
		Platforms:        []string{"email", "bank"},
		SentAt:           sentAt,
	})
	require.NoError(t, err)
	require.Len(t, batch, 1)

	n := batch[0]
	assert.Equal(t, "c1", n.ContactID)
	assert.Equal(t, models.DeliveryPending, n.DeliveryStatus)
	assert.Equal(t, models.NotificationBreachAlert, n.NotificationType)
	assert.Equal(t, sentAt, n.SentAt)
	assert.Contains(t, n.MessageContent, "Hi Alice")
	assert.Contains(t, n.MessageContent, "Ada's accounts")
	assert.Contains(t, n.MessageContent, "(email, bank)")
	assert.Contains(t, n.MessageContent, "Apr 2, 2026 10:00 UTC")

	require.Eventually(t, func() bool { return len(sink.snapshot()) == 2 }, time.Second, 2*time.Millisecond)
	calls := sink.snapshot()
	assert.Equal(t, delivery{gen: 0, id: n.NotificationID, status: models.DeliverySent}, calls[0])
	assert.Equal(t, delivery{gen: 0, id: n.NotificationID, status: models.DeliveryDelivered}, calls[1])
}

func TestDispatch_IsNotIdempotent(t *testing.T) {
	d, _, _ := newTestDispatcher(config.Delivery{SentDelayMin: time.Hour, SentDelayMax: time.Hour, DeliveredDelayMin: time.Hour, DeliveredDelayMax: time.Hour})
	contacts := []models.Contact{activeContact("c1", "Alice"), activeContact("c2", "Bob")}
	req := Request{Type: models.NotificationBreachAlert, ProfileName: "Ada", SentAt: time.Now()}

	first, err := d.Dispatch(contacts, req)
	require.NoError(t, err)
	second, err := d.Dispatch(contacts, req)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	ids := map[string]bool{}
	for _, n := range append(first, second...) {
		ids[n.NotificationID] = true
	}
	assert.Len(t, ids, 4)
}

func TestDispatch_ResetDropsDelivery(t *testing.T) {
	d, sched, sink := newTestDispatcher(config.Delivery{
		SentDelayMin: 30 * time.Millisecond, SentDelayMax: 30 * time.Millisecond,
		DeliveredDelayMin: 30 * time.Millisecond, DeliveredDelayMax: 30 * time.Millisecond,
	})

	_, err := d.Dispatch([]models.Contact{activeContact("c1", "Alice")}, Request{Type: models.NotificationBreachAlert})
	require.NoError(t, err)
	assert.Equal(t, 2, sched.CancelAll())

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, sink.snapshot())
}

func TestDispatch_TemplatesPerType(t *testing.T) {
	d, _, _ := newTestDispatcher(testDelays)
	contacts := []models.Contact{activeContact("c1", "Alice")}

	tests := []struct {
		typ     models.NotificationType
		message string
		want    string
	}{
		{typ: models.NotificationAdditionalAlert, message: "Changed my bank PIN", want: "Update from Ada: Changed my bank PIN"},
		{typ: models.NotificationRecoveryRequest, message: "Call me.", want: "vouch for their identity. Call me."},
		{typ: models.NotificationReviewResolution, want: "false alarm"},
		{typ: models.NotificationRecoveryUpdate, want: "Ada has recovered their account"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			batch, err := d.Dispatch(contacts, Request{Type: tt.typ, ProfileName: "Ada", Message: tt.message})
			require.NoError(t, err)
			assert.Contains(t, batch[0].MessageContent, tt.want)
		})
	}
}

func TestDispatch_UnknownTypeFails(t *testing.T) {
	d, sched, _ := newTestDispatcher(testDelays)

	_, err := d.Dispatch([]models.Contact{activeContact("c1", "Alice")}, Request{Type: "carrier_pigeon"})
	assert.Error(t, err)
	assert.Zero(t, sched.Pending())
}

func TestComposeRecoveryMessage(t *testing.T) {
	msg, err := ComposeRecoveryMessage("Ada", nil, []string{"email"}, "  Please call me.  ")
	require.NoError(t, err)

	assert.Contains(t, msg, "This is Ada. My accounts were compromised (email)")
	assert.Contains(t, msg, "verified my identity never.")
	assert.True(t, len(msg) > 0 && msg[len(msg)-1] == '.')
	assert.Contains(t, msg, "Please call me.")
}

func TestUniform(t *testing.T) {
	assert.Equal(t, time.Second, uniform(time.Second, time.Second))
	assert.Equal(t, time.Second, uniform(time.Second, 0))
	for range 100 {
		v := uniform(500*time.Millisecond, time.Second)
		assert.GreaterOrEqual(t, v, 500*time.Millisecond)
		assert.LessOrEqual(t, v, time.Second)
	}
}

func TestAdvance(t *testing.T) {
	at := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)
	ns := []models.Notification{{NotificationID: "n1", DeliveryStatus: models.DeliveryPending}}

	changed, err := Advance(ns, "n1", models.DeliveryDelivered, at)
	require.NoError(t, err)
	assert.False(t, changed, "cannot skip sent")

	changed, err = Advance(ns, "n1", models.DeliverySent, at)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = Advance(ns, "n1", models.DeliveryPending, at)
	require.NoError(t, err)
	assert.False(t, changed, "no regression")

	_, err = Advance(ns, "missing", models.DeliverySent, at)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestResume(t *testing.T) {
	d, sched, sink := newTestDispatcher(config.Delivery{
		SentDelayMin: time.Hour, SentDelayMax: time.Hour,
		DeliveredDelayMin: time.Millisecond, DeliveredDelayMax: time.Millisecond,
	})

	d.Resume(models.Notification{NotificationID: "pending", DeliveryStatus: models.DeliveryPending})
	assert.Equal(t, 2, sched.Pending())

	d.Resume(models.Notification{NotificationID: "delivered", DeliveryStatus: models.DeliveryDelivered})
	d.Resume(models.Notification{NotificationID: "failed", DeliveryStatus: models.DeliveryFailed})
	assert.Equal(t, 2, sched.Pending())

	d.Resume(models.Notification{NotificationID: "sent", DeliveryStatus: models.DeliverySent})
	require.Eventually(t, func() bool {
		calls := sink.snapshot()
		return len(calls) == 1 && calls[0].id == "sent" && calls[0].status == models.DeliveryDelivered
	}, time.Second, 2*time.Millisecond)

	sched.CancelAll()
}
