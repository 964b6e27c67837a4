// Package app wires the persistence adapters, the quote gateway and the use
// cases. Both the HTTP API and recyclectl build on it.
package app

import (
	"context"
	"fmt"

	"github.com/juju/clock"

	"gestion_tramites/internal/adapter/persistence/memory"
	"gestion_tramites/internal/adapter/persistence/repository"
	"gestion_tramites/internal/infrastructure/config"
	"gestion_tramites/internal/infrastructure/database"
	"gestion_tramites/internal/infrastructure/logger"
	"gestion_tramites/internal/infrastructure/quotes"
	"gestion_tramites/internal/usecase"
	"gestion_tramites/internal/usecase/interfaces"
)

// Stores groups every persistence port.
type Stores struct {
	Clients            interfaces.IClientRepository
	Cases              interfaces.ICaseRepository
	Procedures         interfaces.IProcedureRepository
	ProcedureDocuments interfaces.IProcedureDocumentRepository
	ClientDocuments    interfaces.IClientDocumentRepository
	Activity           interfaces.IActivityRepository
	SoftDelete         interfaces.ISoftDeleteStore
}

func MemoryStores(s *memory.Store) Stores {
	return Stores{
		Clients:            s.Clients(),
		Cases:              s.Cases(),
		Procedures:         s.Procedures(),
		ProcedureDocuments: s.ProcedureDocuments(),
		ClientDocuments:    s.ClientDocuments(),
		Activity:           s.Activity(),
		SoftDelete:         s.SoftDelete(),
	}
}

func DynamoStores(ddb repository.DynamoAPI) Stores {
	return Stores{
		Clients:            repository.NewClientDynamoRepository(ddb),
		Cases:              repository.NewCaseDynamoRepository(ddb),
		Procedures:         repository.NewProcedureDynamoRepository(ddb),
		ProcedureDocuments: repository.NewProcedureDocumentDynamoRepository(ddb),
		ClientDocuments:    repository.NewClientDocumentDynamoRepository(ddb),
		Activity:           repository.NewActivityDynamoRepository(ddb),
		SoftDelete:         repository.NewSoftDeleteDynamoStore(ddb),
	}
}

type UseCases struct {
	Cases      usecase.ICaseUseCase
	Procedures usecase.IProcedureUseCase
	Documents  usecase.IDocumentUseCase
	Attention  usecase.IAttentionUseCase
	SoftDelete usecase.ISoftDeleteUseCase
	RecycleBin usecase.IRecycleBinUseCase
}

// Wire builds the use cases over s. A nil gateway leaves quotes out of the
// recycle bin.
func Wire(s Stores, gateway interfaces.IQuoteGateway, retentionDays int, clk clock.Clock) UseCases {
	softDelete := usecase.NewSoftDeleteUseCase(s.SoftDelete, s.Activity, clk)
	return UseCases{
		Cases:      usecase.NewCaseUseCase(s.Cases, s.Clients, s.Activity, clk),
		Procedures: usecase.NewProcedureUseCase(s.Procedures, s.Cases, s.Clients, s.Activity, clk),
		Documents:  usecase.NewDocumentUseCase(s.ProcedureDocuments, s.ClientDocuments, s.Activity, clk),
		Attention:  usecase.NewAttentionUseCase(s.Clients, s.Cases, s.Procedures, s.ProcedureDocuments, s.ClientDocuments, clk),
		SoftDelete: softDelete,
		RecycleBin: usecase.NewRecycleBinUseCase(s.SoftDelete, softDelete, gateway, retentionDays, clk),
	}
}

// OpenStores selects the persistence adapter named by cfg.StoreDriver.
func OpenStores(ctx context.Context, cfg config.Config) (Stores, error) {
	log := logger.WithComponent("app")
	switch cfg.StoreDriver {
	case config.StoreMemory:
		store := memory.NewStore()
		if cfg.MemorySeedFile != "" {
			if err := store.LoadSeedFile(cfg.MemorySeedFile); err != nil {
				return Stores{}, err
			}
			log.Info().Str("file", cfg.MemorySeedFile).Msg("memory store seeded")
		}
		log.Warn().Msg("using in-memory store, data is lost on exit")
		return MemoryStores(store), nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return Stores{}, err
		}
		return DynamoStores(ddb), nil
	default:
		return Stores{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// QuoteGateway returns nil when no quote service URL is configured.
func QuoteGateway(cfg config.QuotesConfig, clk clock.Clock) interfaces.IQuoteGateway {
	if cfg.BaseURL == "" {
		log := logger.WithComponent("app")
		log.Warn().Msg("QUOTES_SERVICE_URL not set, quotes are left out of the recycle bin")
		return nil
	}
	return quotes.NewGateway(cfg, clk)
}

// New opens the configured stores and wires the use cases on the wall clock.
func New(ctx context.Context, cfg config.Config) (UseCases, error) {
	stores, err := OpenStores(ctx, cfg)
	if err != nil {
		return UseCases{}, err
	}
	return Wire(stores, QuoteGateway(cfg.Quotes, clock.WallClock), cfg.RetentionDays, clock.WallClock), nil
}
