// Package quotes talks to the quote subsystem over HTTP. Quotes own their
// deletion workflow; this client only lists deleted quotes, restores them and
// purges them.
package quotes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/juju/clock"
	"github.com/juju/retry"
	"github.com/rs/zerolog"
	"gopkg.in/httprequest.v1"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/infrastructure/config"
	"gestion_tramites/internal/infrastructure/logger"
	"gestion_tramites/internal/usecase/interfaces"
)

type deletedQuote struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Detail    string    `json:"detail"`
	DeletedAt time.Time `json:"deleted_at"`
}

// StatusError is a non-2xx answer from the quote subsystem.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("quotes: %s %s returned %d", e.Method, e.Path, e.Status)
}

// DecodeError is a 2xx answer whose body could not be read as the expected JSON.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("quotes: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Gateway implements interfaces.IQuoteGateway. Transport errors and 5xx
// answers are retried; 4xx answers are not.
type Gateway struct {
	baseURL  string
	token    string
	client   *http.Client
	attempts int
	delay    time.Duration
	clock    clock.Clock
	log      zerolog.Logger
}

var _ interfaces.IQuoteGateway = (*Gateway)(nil)

func NewGateway(cfg config.QuotesConfig, clk clock.Clock) *Gateway {
	if clk == nil {
		clk = clock.WallClock
	}
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 200 * time.Millisecond
	}
	return &Gateway{
		baseURL:  cfg.BaseURL,
		token:    cfg.Token,
		client:   &http.Client{Timeout: cfg.Timeout},
		attempts: attempts,
		delay:    delay,
		clock:    clk,
		log:      logger.WithComponent("quotes"),
	}
}

func (g *Gateway) ListDeleted(ctx context.Context) ([]entities.DeletedRecord, error) {
	var rows []deletedQuote
	if err := g.do(ctx, http.MethodGet, "/quotes/deleted", &rows); err != nil {
		return nil, err
	}
	out := make([]entities.DeletedRecord, 0, len(rows))
	for _, q := range rows {
		out = append(out, entities.DeletedRecord{
			Kind:      entities.EntityKindQuote,
			ID:        q.ID,
			Label:     q.Number,
			Detail:    q.Detail,
			DeletedAt: q.DeletedAt,
		})
	}
	return out, nil
}

func (g *Gateway) Restore(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodPost, "/quotes/"+url.PathEscape(id)+"/restore", nil)
}

func (g *Gateway) HardDelete(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodDelete, "/quotes/"+url.PathEscape(id), nil)
}

func (g *Gateway) do(ctx context.Context, method, path string, out any) error {
	var last error
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			last = g.once(ctx, method, path, out)
			return last
		},
		IsFatalError: isFatal,
		NotifyFunc: func(err error, attempt int) {
			g.log.Warn().Err(err).Int("attempt", attempt).Str("method", method).Str("path", path).Msg("quote call failed")
		},
		Attempts: g.attempts,
		Delay:    g.delay,
		Clock:    g.clock,
		Stop:     ctx.Done(),
	})
	if err == nil {
		return nil
	}
	// retry wraps its result, so hand back the call's own error.
	if last != nil && (isFatal(last) || retry.IsAttemptsExceeded(err)) {
		return last
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

func (g *Gateway) once(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return interfaces.ErrQuoteNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: method, Path: path, Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := httprequest.UnmarshalJSONResponse(resp, out); err != nil {
		return &DecodeError{Method: method, Path: path, Err: err}
	}
	return nil
}

// isFatal stops retrying on client errors, decoding errors and cancellation.
func isFatal(err error) bool {
	if errors.Is(err, interfaces.ErrQuoteNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status < 500
	}
	var de *DecodeError
	return errors.As(err, &de)
}
