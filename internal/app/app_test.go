package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion_tramites/internal/adapter/persistence/memory"
	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/infrastructure/config"
	"gestion_tramites/internal/usecase"
)

func TestWire_MemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	store.PutClient(entities.Client{ID: "cli-1", Name: "Panadería Sur"})

	uc := Wire(MemoryStores(store), nil, 30, testclock.NewClock(now))

	c, err := uc.Cases.CreateCase(ctx, usecase.CreateCaseInput{ClientID: "cli-1", Title: "Habilitación"})
	require.NoError(t, err)
	_, err = uc.Procedures.CreateProcedure(ctx, usecase.CreateProcedureInput{ClientID: "cli-1", CaseID: c.ID, Title: "Plano"})
	require.NoError(t, err)

	res, err := uc.SoftDelete.SoftDelete(ctx, entities.EntityKindClient, "cli-1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Affected)

	bin, err := uc.RecycleBin.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bin.Entries, 3)
	assert.False(t, bin.QuotesAvailable)

	err = uc.RecycleBin.Purge(ctx, entities.EntityKindQuote, "q-1")
	assert.True(t, errors.Is(err, usecase.ErrQuoteGatewayNotConfigured))
}

func TestOpenStores(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenStores(ctx, config.Config{StoreDriver: "postgres"})
		assert.Error(t, err)
	})

	t.Run("memory with seed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"clients":[{"id":"cli-1","name":"Panadería Sur"}]}`), 0o600))

		stores, err := OpenStores(ctx, config.Config{StoreDriver: config.StoreMemory, MemorySeedFile: path})
		require.NoError(t, err)

		cli, err := stores.Clients.GetByID(ctx, "cli-1")
		require.NoError(t, err)
		assert.Equal(t, "Panadería Sur", cli.Name)
	})

	t.Run("memory with missing seed", func(t *testing.T) {
		_, err := OpenStores(ctx, config.Config{StoreDriver: config.StoreMemory, MemorySeedFile: "missing.json"})
		assert.Error(t, err)
	})
}

func TestQuoteGateway(t *testing.T) {
	assert.Nil(t, QuoteGateway(config.QuotesConfig{}, nil))
	assert.NotNil(t, QuoteGateway(config.QuotesConfig{BaseURL: "http://quotes:8081"}, nil))
}
