package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/reclaim/internal/config"
	"github.com/MKhiriev/reclaim/internal/lifecycle"
	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/internal/store"
	"github.com/MKhiriev/reclaim/internal/validators"
	"github.com/MKhiriev/reclaim/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestRouter(t *testing.T, seed bool, opts ...lifecycle.Option) http.Handler {
	t.Helper()
	cfg := config.ServerConfig{
		App: config.App{SeedDemoData: seed, InvitationTTL: time.Hour, VoteApprovalRate: 1},
		Delivery: config.Delivery{
			SentDelayMin: time.Hour, SentDelayMax: time.Hour,
			DeliveredDelayMin: time.Hour, DeliveredDelayMax: time.Hour,
		},
	}
	svc := lifecycle.NewService(cfg, store.NewMemoryStateStore(), validators.NewRequestValidator(), logger.Nop(), opts...)
	require.NoError(t, svc.Load(context.Background()))
	t.Cleanup(func() { _ = svc.Close() })

	return NewHandler(svc, models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), logger.Nop()).Init()
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// ── routes ────────────────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router := newTestRouter(t, false)

	rec := do(t, router, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.4.0", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "2026-10-01", rec.Header().Get(buildDateHeader))
	assert.Equal(t, "abc123", rec.Header().Get(buildCommitHeader))
}

func TestGetState_SeededSession(t *testing.T) {
	router := newTestRouter(t, true)

	rec := do(t, router, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	snap := decodeBody[models.Snapshot](t, rec)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, models.StatusSafe, snap.Profile.CurrentStatus)
	assert.Len(t, snap.Contacts, 2)

	rec = do(t, router, http.MethodGet, "/api/activity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]models.ActivityLogEntry](t, rec)
	assert.Equal(t, snap.ActivityLog, entries)
}

func TestOnboard(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "created", body: `{"name":"Jordan","authMethod":"passkey"}`, wantStatus: http.StatusCreated},
		{name: "invalid json", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "missing name", body: `{"authMethod":"passkey"}`, wantStatus: http.StatusBadRequest},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, false)
			rec := do(t, router, http.MethodPost, "/api/profile", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestOnboard_SecondProfileConflicts(t *testing.T) {
	router := newTestRouter(t, true)

	rec := do(t, router, http.MethodPost, "/api/profile", `{"name":"Jordan","authMethod":"passkey"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "operation rejected")
}

func TestGuardRejectionIsConflict(t *testing.T) {
	router := newTestRouter(t, true)

	rec := do(t, router, http.MethodPost, "/api/recovery/complete", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUnknownContactIsNotFound(t *testing.T) {
	router := newTestRouter(t, true)

	rec := do(t, router, http.MethodPost, "/api/contacts/nobody/accept", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/notifications/nothing/read", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAlertsWithoutContactsAreUnprocessable(t *testing.T) {
	router := newTestRouter(t, false)
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/profile", `{"name":"Jordan","authMethod":"passkey"}`).Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/review/self", "").Code)

	rec := do(t, router, http.MethodPost, "/api/review/confirm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decodeBody[models.Snapshot](t, rec)
	assert.Equal(t, models.StatusCompromised, snap.Profile.CurrentStatus)
	assert.NotEmpty(t, snap.Error)

	rec = do(t, router, http.MethodPost, "/api/alerts", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/error", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[models.Snapshot](t, rec).Error)
}

func TestFullRecoveryOverHTTP(t *testing.T) {
	router := newTestRouter(t, false)

	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/profile", `{"name":"Jordan","authMethod":"passkey"}`).Code)

	rec := do(t, router, http.MethodPost, "/api/contacts", `{"name":"Alice","contactMethod":"alice@example.com","type":"email","relationship":"Sister"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	alice := decodeBody[models.Contact](t, rec)
	assert.Equal(t, models.ContactPendingInvitation, alice.Status)

	rec = do(t, router, http.MethodPost, "/api/contacts/"+alice.ContactID+"/accept", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ContactActive, decodeBody[models.Contact](t, rec).Status)

	rec = do(t, router, http.MethodPost, "/api/contacts/"+alice.ContactID+"/flag", `{"platforms":["email"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.StatusUnderReview, decodeBody[models.Snapshot](t, rec).Profile.CurrentStatus)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/review/verify", `{"success":true}`).Code)
	rec = do(t, router, http.MethodPost, "/api/review/confirm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decodeBody[models.Snapshot](t, rec)
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, models.DeliveryPending, snap.Notifications[0].DeliveryStatus)

	rec = do(t, router, http.MethodPost, "/api/recovery/message", `{"message":"call me"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody[models.ComposedMessage](t, rec).Message, "call me")

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/recovery/initiate", "").Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/recovery/view", "").Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/recovery/requests", "").Code)

	rec = do(t, router, http.MethodPost, "/api/recovery/votes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tally := decodeBody[models.VoteTally](t, rec)
	assert.Equal(t, 1, tally.Approved)
	assert.Equal(t, models.StageFinalizing, tally.Stage)

	rec = do(t, router, http.MethodPost, "/api/recovery/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusRecovered, decodeBody[models.Snapshot](t, rec).Profile.CurrentStatus)

	rec = do(t, router, http.MethodPost, "/api/session/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody[models.Snapshot](t, rec).Profile)
}

func TestContactRoutes(t *testing.T) {
	router := newTestRouter(t, true)
	snap := decodeBody[models.Snapshot](t, do(t, router, http.MethodGet, "/api/state", ""))
	active, pending := snap.Contacts[0], snap.Contacts[1]

	rec := do(t, router, http.MethodPut, "/api/contacts/"+active.ContactID, `{"name":"Alice J","contactMethod":"alice@example.com","type":"email"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Alice J", decodeBody[models.Contact](t, rec).Name)

	rec = do(t, router, http.MethodPut, "/api/contacts/"+pending.ContactID, `{"name":"Bob","contactMethod":"+15551234567","type":"phone"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/contacts/"+active.ContactID, `{"name":"Alice","contactMethod":"nope","type":"email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/contacts/"+pending.ContactID+"/resend", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/contacts/check-expiry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ExpiryResult{Expired: 0}, decodeBody[models.ExpiryResult](t, rec))

	rec = do(t, router, http.MethodDelete, "/api/contacts/"+pending.ContactID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ContactRemoved, decodeBody[models.Contact](t, rec).Status)
}

func TestProfileRoutes(t *testing.T) {
	router := newTestRouter(t, true)

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/profile/verify", "").Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/system-check", "").Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/security-actions", `{"action":"rotate passwords"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, "/api/security-actions", `{}`).Code)
}

func TestReviewRoutes(t *testing.T) {
	router := newTestRouter(t, true)

	rec := do(t, router, http.MethodPost, "/api/review/breach", `{"platforms":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/review/breach", `{"platforms":["bank"],"reason":"credential dump"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ReviewSourceSystem, decodeBody[models.Snapshot](t, rec).Profile.ReviewRequestDetails.Source)

	rec = do(t, router, http.MethodPost, "/api/review/report", `{"reporterName":"Neighbour"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/review/dismiss", `{"notifyReporter":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusSafe, decodeBody[models.Snapshot](t, rec).Profile.CurrentStatus)
}

func TestWrongMethodIsNotFound(t *testing.T) {
	router := newTestRouter(t, false)

	rec := do(t, router, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/state", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTraceIDEchoed(t *testing.T) {
	router := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))

	rec = do(t, router, http.MethodGet, "/api/version", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestGzipResponses(t *testing.T) {
	router := newTestRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.NotNil(t, snap.Profile)
}

func TestGzipRequestBody(t *testing.T) {
	router := newTestRouter(t, false)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"name":"Jordan","authMethod":"passkey"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
