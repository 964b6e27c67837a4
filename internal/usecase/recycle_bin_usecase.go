package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/juju/clock"
	"github.com/rs/zerolog"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	"gestion_tramites/internal/infrastructure/logger"
	"gestion_tramites/internal/infrastructure/metrics"
	"gestion_tramites/internal/usecase/interfaces"
)

// RecycleBinEntry is a deleted row annotated with its retention countdown.
type RecycleBinEntry struct {
	entities.DeletedRecord
	RemainingDays int  `json:"remaining_days"`
	Urgent        bool `json:"urgent"`
	PurgeEligible bool `json:"purge_eligible"`
}

// RecycleBin is the merged listing. QuotesAvailable is false when the quote
// subsystem is not configured or could not be reached.
type RecycleBin struct {
	Entries         []RecycleBinEntry `json:"entries"`
	RetentionDays   int               `json:"retention_days"`
	QuotesAvailable bool              `json:"quotes_available"`
}

type IRecycleBinUseCase interface {
	List(ctx context.Context) (RecycleBin, error)
	Restore(ctx context.Context, kind entities.EntityKind, id string) error
	Purge(ctx context.Context, kind entities.EntityKind, id string) error
}

// RecycleBinUseCase merges the local soft-deleted sets with the remote quote
// set. Its only kind-specific logic is routing quotes to the gateway.
type RecycleBinUseCase struct {
	store         interfaces.ISoftDeleteStore
	softDelete    ISoftDeleteUseCase
	quotes        interfaces.IQuoteGateway
	retentionDays int
	clock         clock.Clock
	log           zerolog.Logger
}

var _ IRecycleBinUseCase = (*RecycleBinUseCase)(nil)

// NewRecycleBinUseCase accepts a nil quote gateway; quotes are then left out
// of listings and quote actions fail with ErrQuoteGatewayNotConfigured.
func NewRecycleBinUseCase(
	store interfaces.ISoftDeleteStore,
	softDelete ISoftDeleteUseCase,
	quotes interfaces.IQuoteGateway,
	retentionDays int,
	clk clock.Clock,
) *RecycleBinUseCase {
	if retentionDays <= 0 {
		retentionDays = lifecycle.DefaultRetentionDays
	}
	if clk == nil {
		clk = clock.WallClock
	}
	return &RecycleBinUseCase{
		store:         store,
		softDelete:    softDelete,
		quotes:        quotes,
		retentionDays: retentionDays,
		clock:         clk,
		log:           logger.WithComponent("recycle_bin"),
	}
}

// List returns every soft-deleted row, newest deletion first.
func (u *RecycleBinUseCase) List(ctx context.Context) (RecycleBin, error) {
	var records []entities.DeletedRecord
	for _, kind := range entities.EntityKinds {
		if !lifecycle.IsLocalKind(kind) {
			continue
		}
		rows, err := u.store.ListDeleted(ctx, kind)
		if err != nil {
			return RecycleBin{}, persistenceFailure(err)
		}
		records = append(records, rows...)
	}

	quotesAvailable := false
	if u.quotes != nil {
		rows, err := u.quotes.ListDeleted(ctx)
		if err != nil {
			u.log.Warn().Err(err).Msg("quote subsystem unavailable, listing local kinds only")
		} else {
			quotesAvailable = true
			for _, r := range rows {
				r.Kind = entities.EntityKindQuote
				records = append(records, r)
			}
		}
	}

	now := u.clock.Now()
	entries := make([]RecycleBinEntry, 0, len(records))
	for _, r := range records {
		remaining := lifecycle.RemainingRetentionDays(r.DeletedAt, now, u.retentionDays)
		entries = append(entries, RecycleBinEntry{
			DeletedRecord: r,
			RemainingDays: remaining,
			Urgent:        lifecycle.IsRetentionUrgent(remaining),
			PurgeEligible: lifecycle.IsPurgeEligible(remaining),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.DeletedAt.Equal(b.DeletedAt) {
			return a.DeletedAt.After(b.DeletedAt)
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.ID < b.ID
	})

	return RecycleBin{Entries: entries, RetentionDays: u.retentionDays, QuotesAvailable: quotesAvailable}, nil
}

func (u *RecycleBinUseCase) Restore(ctx context.Context, kind entities.EntityKind, id string) error {
	if kind == entities.EntityKindQuote {
		return u.quoteAction(ctx, OperationRestore, id, u.quotesRestore)
	}
	_, err := u.softDelete.Restore(ctx, kind, id)
	return err
}

func (u *RecycleBinUseCase) Purge(ctx context.Context, kind entities.EntityKind, id string) error {
	if kind == entities.EntityKindQuote {
		return u.quoteAction(ctx, OperationPurge, id, u.quotesHardDelete)
	}
	return u.softDelete.Purge(ctx, kind, id)
}

func (u *RecycleBinUseCase) quotesRestore(ctx context.Context, id string) error {
	return u.quotes.Restore(ctx, id)
}

func (u *RecycleBinUseCase) quotesHardDelete(ctx context.Context, id string) error {
	return u.quotes.HardDelete(ctx, id)
}

func (u *RecycleBinUseCase) quoteAction(ctx context.Context, op, id string, call func(context.Context, string) error) error {
	if u.quotes == nil {
		return ErrQuoteGatewayNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if err := call(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrQuoteNotFound) {
			return ErrQuoteNotFound
		}
		u.log.Error().Err(err).Str("operation", op).Str("quote_id", id).Msg("quote action failed")
		return persistenceFailure(err)
	}
	metrics.RecycleBinActionTotal.WithLabelValues(op, string(entities.EntityKindQuote)).Inc()
	return nil
}
