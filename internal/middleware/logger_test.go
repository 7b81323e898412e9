package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name             string
		handler          http.HandlerFunc
		expectedStatus   int
		expectedLevel    zapcore.Level
		expectedSize     int64
		expectedLocation string
	}{
		{
			name: "Redirect",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "https://example.com")
				w.WriteHeader(http.StatusFound)
			},
			expectedStatus:   http.StatusFound,
			expectedLevel:    zapcore.InfoLevel,
			expectedLocation: "https://example.com",
		},
		{
			name: "Implicit OK with body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("hello"))
			},
			expectedStatus: http.StatusOK,
			expectedLevel:  zapcore.InfoLevel,
			expectedSize:   5,
		},
		{
			name: "No write at all",
			handler: func(w http.ResponseWriter, r *http.Request) {
			},
			expectedStatus: http.StatusOK,
			expectedLevel:  zapcore.InfoLevel,
		},
		{
			name: "Gone",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Expired", http.StatusGone)
			},
			expectedStatus: http.StatusGone,
			expectedLevel:  zapcore.WarnLevel,
			expectedSize:   int64(len("Expired\n")),
		},
		{
			name: "Server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedLevel:  zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			core, logs := observer.New(zapcore.DebugLevel)
			handler := Logger(zap.New(core))(tt.handler)
			req := httptest.NewRequest(http.MethodGet, "/u/abc12345", nil)
			rec := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(rec, req)

			// Assert
			entries := logs.All()
			require.Len(t, entries, 1)
			entry := entries[0]
			fields := entry.ContextMap()

			assert.Equal(t, "HTTP request", entry.Message)
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, http.MethodGet, fields["method"])
			assert.Equal(t, "/u/abc12345", fields["uri"])
			assert.Equal(t, int64(tt.expectedStatus), fields["status"])
			assert.Equal(t, tt.expectedSize, fields["size"])
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, fields["location"])
			} else {
				assert.NotContains(t, fields, "location")
			}
		})
	}
}

func TestLogger_RequestID(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.InfoLevel)
	handler := chimw.RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(chimw.RequestIDHeader, "req-42")

	// Act
	handler.ServeHTTP(httptest.NewRecorder(), req)

	// Assert
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
}
