package quotes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/juju/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/infrastructure/config"
	"gestion_tramites/internal/usecase/interfaces"
)

func newTestGateway(url string) *Gateway {
	return NewGateway(config.QuotesConfig{
		BaseURL:       url,
		Token:         "secret",
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
		Timeout:       time.Second,
	}, clock.WallClock)
}

func TestGateway_ListDeleted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/quotes/deleted", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"q-1","number":"P-0001","detail":"Acme SA","deleted_at":"2026-03-01T10:00:00Z"}]`))
	}))
	defer srv.Close()

	rows, err := newTestGateway(srv.URL).ListDeleted(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entities.EntityKindQuote, rows[0].Kind)
	assert.Equal(t, "P-0001", rows[0].Label)
	assert.Equal(t, "Acme SA", rows[0].Detail)
	assert.True(t, rows[0].DeletedAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestGateway_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		assert.Equal(t, "/quotes/q-1/restore", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestGateway(srv.URL).Restore(context.Background(), "q-1"))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGateway_GivesUpAfterAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestGateway(srv.URL).HardDelete(context.Background(), "q-1")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.Status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGateway_ClientErrorsAreNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()
	g := newTestGateway(srv.URL)

	err := g.HardDelete(context.Background(), "q-404")
	assert.True(t, errors.Is(err, interfaces.ErrQuoteNotFound))

	err = g.Restore(context.Background(), "q-1")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGateway_MalformedBodyIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	rows, err := newTestGateway(srv.URL).ListDeleted(context.Background())
	assert.Nil(t, rows)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "/quotes/deleted", de.Path)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGateway_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := newTestGateway(srv.URL).Restore(ctx, "q-1")
	assert.True(t, errors.Is(err, context.Canceled))
}
