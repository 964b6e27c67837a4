package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/infrastructure/config"
	"gestion_tramites/internal/infrastructure/quotes"
)

func newQuoteBin(t *testing.T, status int, calls *int32) *RecycleBinUseCase {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	s := seedScenarioC(t)
	clk := newTestClock()
	gateway := quotes.NewGateway(config.QuotesConfig{
		BaseURL:       srv.URL,
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
		Timeout:       time.Second,
	}, nil)
	sd := NewSoftDeleteUseCase(s.SoftDelete(), s.Activity(), clk)
	return NewRecycleBinUseCase(s.SoftDelete(), sd, gateway, 30, clk)
}

func TestRecycleBinUseCase_QuoteGoneIsNotFound(t *testing.T) {
	for name, action := range map[string]func(*RecycleBinUseCase) error{
		"purge": func(uc *RecycleBinUseCase) error {
			return uc.Purge(context.Background(), entities.EntityKindQuote, "q-gone")
		},
		"restore": func(uc *RecycleBinUseCase) error {
			return uc.Restore(context.Background(), entities.EntityKindQuote, "q-gone")
		},
	} {
		t.Run(name, func(t *testing.T) {
			var calls int32
			err := action(newQuoteBin(t, http.StatusNotFound, &calls))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrQuoteNotFound), "got %v", err)
			assert.False(t, errors.Is(err, ErrPersistenceFailure), "got %v", err)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestRecycleBinUseCase_QuoteServerDownIsPersistenceFailure(t *testing.T) {
	var calls int32
	err := newQuoteBin(t, http.StatusBadGateway, &calls).Purge(context.Background(), entities.EntityKindQuote, "q-1")
	assert.True(t, errors.Is(err, ErrPersistenceFailure), "got %v", err)

	var se *quotes.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.Status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
