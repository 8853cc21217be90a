package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/reclaim/internal/config"
	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/internal/utils"
	"github.com/MKhiriev/reclaim/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST implementation of [ServerAdapter]
// pointed at cfg.HTTPAddress. A bare host:port is treated as http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// call sends body (if any) to path and decodes a 2xx answer into T.
func call[T any](ctx context.Context, h *httpServerAdapter, method, path string, body any) (T, error) {
	var out T

	req := h.client.R().SetContext(ctx).SetResult(&out)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("request rejected by server")
		return out, err
	}

	return out, nil
}

func (h *httpServerAdapter) snapshot(ctx context.Context, method, path string, body any) (models.Snapshot, error) {
	return call[models.Snapshot](ctx, h, method, path, body)
}

func (h *httpServerAdapter) contact(ctx context.Context, method, contactID, action string, body any) (models.Contact, error) {
	path := "/api/contacts/" + url.PathEscape(contactID)
	if action != "" {
		path += "/" + action
	}
	return call[models.Contact](ctx, h, method, path, body)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) State(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodGet, "/api/state", nil)
}

func (h *httpServerAdapter) DismissError(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodDelete, "/api/error", nil)
}

func (h *httpServerAdapter) ResetSession(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/session/reset", nil)
}

func (h *httpServerAdapter) Onboard(ctx context.Context, req models.OnboardRequest) (models.UserProfile, error) {
	return call[models.UserProfile](ctx, h, http.MethodPost, "/api/profile", req)
}

func (h *httpServerAdapter) VerifyIdentity(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/profile/verify", nil)
}

func (h *httpServerAdapter) RunSystemCheck(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/system-check", nil)
}

func (h *httpServerAdapter) CheckSecurityAction(ctx context.Context, req models.SecurityActionRequest) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/security-actions", req)
}

func (h *httpServerAdapter) ReportSuspicion(ctx context.Context, report models.SuspicionReport) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/review/report", report)
}

func (h *httpServerAdapter) SelfReport(ctx context.Context, report models.SuspicionReport) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/review/self", report)
}

func (h *httpServerAdapter) DetectBreach(ctx context.Context, detection models.BreachDetection) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/review/breach", detection)
}

func (h *httpServerAdapter) VerifyReviewIdentity(ctx context.Context, check models.IdentityCheck) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/review/verify", check)
}

func (h *httpServerAdapter) ConfirmCompromise(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/review/confirm", nil)
}

func (h *httpServerAdapter) DismissFalseAlarm(ctx context.Context, req models.DismissRequest) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/review/dismiss", req)
}

func (h *httpServerAdapter) SendAlerts(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/alerts", nil)
}

func (h *httpServerAdapter) SendAdditionalAlert(ctx context.Context, message string) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/alerts/additional", models.MessageRequest{Message: message})
}

func (h *httpServerAdapter) ComposeRecoveryMessage(ctx context.Context, message string) (models.ComposedMessage, error) {
	return call[models.ComposedMessage](ctx, h, http.MethodPost, "/api/recovery/message", models.MessageRequest{Message: message})
}

func (h *httpServerAdapter) InitiateRecovery(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/recovery/initiate", nil)
}

func (h *httpServerAdapter) ViewRecovery(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/recovery/view", nil)
}

func (h *httpServerAdapter) SendRecoveryRequests(ctx context.Context, message string) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/recovery/requests", models.MessageRequest{Message: message})
}

func (h *httpServerAdapter) SimulateVotes(ctx context.Context) (models.VoteTally, error) {
	return call[models.VoteTally](ctx, h, http.MethodPost, "/api/recovery/votes", nil)
}

func (h *httpServerAdapter) CompleteRecovery(ctx context.Context) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/recovery/complete", nil)
}

func (h *httpServerAdapter) InviteContact(ctx context.Context, input models.ContactInput) (models.Contact, error) {
	return call[models.Contact](ctx, h, http.MethodPost, "/api/contacts/", input)
}

func (h *httpServerAdapter) UpdateContact(ctx context.Context, contactID string, input models.ContactInput) (models.Contact, error) {
	return h.contact(ctx, http.MethodPut, contactID, "", input)
}

func (h *httpServerAdapter) RemoveContact(ctx context.Context, contactID string) (models.Contact, error) {
	return h.contact(ctx, http.MethodDelete, contactID, "", nil)
}

func (h *httpServerAdapter) ResendInvitation(ctx context.Context, contactID string) (models.Contact, error) {
	return h.contact(ctx, http.MethodPost, contactID, "resend", nil)
}

func (h *httpServerAdapter) AcceptInvitation(ctx context.Context, contactID string) (models.Contact, error) {
	return h.contact(ctx, http.MethodPost, contactID, "accept", nil)
}

func (h *httpServerAdapter) FlagSuspicion(ctx context.Context, contactID string, report models.SuspicionReport) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/contacts/"+url.PathEscape(contactID)+"/flag", report)
}

func (h *httpServerAdapter) CheckInvitationExpiry(ctx context.Context) (int, error) {
	res, err := call[models.ExpiryResult](ctx, h, http.MethodPost, "/api/contacts/check-expiry", nil)
	return res.Expired, err
}

func (h *httpServerAdapter) MarkNotificationRead(ctx context.Context, notificationID string) (models.Snapshot, error) {
	return h.snapshot(ctx, http.MethodPost, "/api/notifications/"+url.PathEscape(notificationID)+"/read", nil)
}
