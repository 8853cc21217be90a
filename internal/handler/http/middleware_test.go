package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/reclaim/internal/logger"
)

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/alerts", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, `"method":"POST"`)
	assert.Contains(t, line, `"uri":"/api/alerts"`)
	assert.Contains(t, line, `"status":202`)
	assert.Contains(t, line, `"size":2`)
}

func TestWithLogging_ImplicitOKAndErrorLevel(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status string
		level  string
	}{
		{
			name:   "body without header",
			write:  func(w http.ResponseWriter) { _, _ = w.Write([]byte("x")) },
			status: `"status":200`,
			level:  `"level":"info"`,
		},
		{
			name:   "nothing written",
			write:  func(http.ResponseWriter) {},
			status: `"status":200`,
			level:  `"level":"info"`,
		},
		{
			name:   "server error",
			write:  func(w http.ResponseWriter) { w.WriteHeader(http.StatusInternalServerError) },
			status: `"status":500`,
			level:  `"level":"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { tt.write(w) })

			req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Contains(t, buf.String(), tt.status)
			assert.Contains(t, buf.String(), tt.level)
		})
	}
}

func TestWithTraceID_AttachesLoggerToContext(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}
