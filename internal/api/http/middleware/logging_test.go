package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algoroadmap/roadmap-server/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := &logger.Logger{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{}))}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	m := NewLogging(lg)

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	rr := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Contains(t, buf.String(), "method=GET")
	assert.Contains(t, buf.String(), "path=/notes")
	assert.Contains(t, buf.String(), "status=418")
}

func TestLogging_DefaultStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := &logger.Logger{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{}))}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	m := NewLogging(lg)

	rr := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "status=200")
}
