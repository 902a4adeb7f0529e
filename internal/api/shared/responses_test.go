package shared

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureDefaultLogger swaps the slog default for a text logger writing to buf.
func captureDefaultLogger(t *testing.T) *strings.Builder {
	t.Helper()
	var logBuf strings.Builder
	oldLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(oldLogger) })
	return &logBuf
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusOK,
			data:         map[string]interface{}{"status": "ok"},
			expectedBody: `{"status":"ok"}`,
		},
		{
			name:         "empty slice",
			status:       http.StatusOK,
			data:         []string{},
			expectedBody: `[]`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody+"\n", w.Body.String())
		})
	}
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	logBuf := captureDefaultLogger(t)

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/9999", nil)
	req = req.WithContext(WithTraceID(req.Context(), "test-trace-id"))
	w := httptest.NewRecorder()
	logBuf := captureDefaultLogger(t)

	RespondWithError(w, req, http.StatusNotFound, "User not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String(),
		"trace ID must stay out of the body")
	assert.Contains(t, logBuf.String(), "trace_id=test-trace-id")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		message          string
		err              error
		expectedLogLevel string
	}{
		{
			name:             "server error",
			statusCode:       http.StatusInternalServerError,
			message:          "An unexpected error occurred",
			err:              errors.New("dataset unavailable"),
			expectedLogLevel: "level=ERROR",
		},
		{
			name:             "client error",
			statusCode:       http.StatusBadRequest,
			message:          "Invalid user id",
			err:              errors.New("strconv.Atoi: parsing \"abc\": invalid syntax"),
			expectedLogLevel: "level=DEBUG",
		},
		{
			name:             "nil error",
			statusCode:       http.StatusNotFound,
			message:          "Product not found",
			err:              nil,
			expectedLogLevel: "level=DEBUG",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			logBuf := captureDefaultLogger(t)

			RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err)

			assert.Equal(t, tc.statusCode, w.Code)
			assert.JSONEq(t, `{"message":"`+tc.message+`"}`, w.Body.String())

			logs := logBuf.String()
			assert.Contains(t, logs, tc.expectedLogLevel)
			assert.Contains(t, logs, "API error response")
			if tc.err != nil {
				assert.Contains(t, logs, "error_type=")
				assert.NotContains(t, w.Body.String(), tc.err.Error(),
					"raw error must never reach the client")
			}
		})
	}
}

func TestRespondWithErrorAndLogRedactsError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	logBuf := captureDefaultLogger(t)

	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "An unexpected error occurred",
		errors.New("open /srv/catalog/products.json: permission denied"))

	logs := logBuf.String()
	assert.Contains(t, logs, "[REDACTED_PATH]")
	assert.NotContains(t, logs, "/srv/catalog/products.json")
}
