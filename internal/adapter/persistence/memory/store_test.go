package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
)

func TestSoftDeleteStore_MarkDeletedKeepsFirstTimestamp(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.PutCase(entities.Case{ID: "case-1", ClientID: "cli-1", Title: "Habilitación"})
	sd := s.SoftDelete()

	first := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	changed, err := sd.MarkDeleted(ctx, entities.EntityKindCase, "case-1", first)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = sd.MarkDeleted(ctx, entities.EntityKindCase, "case-1", first.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)

	c, _ := s.Cases().GetByID(ctx, "case-1")
	require.NotNil(t, c.DeletedAt)
	assert.True(t, c.DeletedAt.Equal(first))
}

func TestSoftDeleteStore_ClearDeleted(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	at := time.Now()
	s.PutProcedure(entities.Procedure{ID: "proc-1", ClientID: "cli-1", DeletedAt: &at})
	sd := s.SoftDelete()

	changed, err := sd.ClearDeleted(ctx, entities.EntityKindProcedure, "proc-1")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = sd.ClearDeleted(ctx, entities.EntityKindProcedure, "proc-1")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSoftDeleteStore_ListChildIDsIncludesDeletedRows(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	at := time.Now()
	s.PutProcedure(entities.Procedure{ID: "p-1", ClientID: "cli-1", CaseID: "case-1"})
	s.PutProcedure(entities.Procedure{ID: "p-2", ClientID: "cli-1", CaseID: "case-1", DeletedAt: &at})
	s.PutProcedure(entities.Procedure{ID: "p-3", ClientID: "cli-1"})

	ids, err := s.SoftDelete().ListChildIDs(ctx, entities.EntityKindProcedure, lifecycle.ForeignKeyCaseID, "case-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2"}, ids)

	ids, err = s.SoftDelete().ListChildIDs(ctx, entities.EntityKindProcedure, lifecycle.ForeignKeyClientID, "cli-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, ids)

	_, err = s.SoftDelete().ListChildIDs(ctx, entities.EntityKindClient, lifecycle.ForeignKeyCaseID, "x")
	assert.Error(t, err)
}

func TestSoftDeleteStore_ListDeletedAndPurge(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	s.PutClient(entities.Client{ID: "cli-1", Name: "Acme SA", TaxID: "30-1", DeletedAt: &at})
	s.PutClient(entities.Client{ID: "cli-2", Name: "Beta SRL"})

	rows, err := s.SoftDelete().ListDeleted(ctx, entities.EntityKindClient)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entities.DeletedRecord{Kind: entities.EntityKindClient, ID: "cli-1", Label: "Acme SA", Detail: "30-1", DeletedAt: at}, rows[0])

	existed, err := s.SoftDelete().Purge(ctx, entities.EntityKindClient, "cli-1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = s.SoftDelete().Purge(ctx, entities.EntityKindClient, "cli-1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestStore_WriteHookAbortsOnlyThatWrite(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.PutCase(entities.Case{ID: "case-1"})
	s.PutCase(entities.Case{ID: "case-2"})
	boom := errors.New("throttled")
	s.SetWriteHook(func(op string, kind entities.EntityKind, id string) error {
		if id == "case-2" {
			return boom
		}
		return nil
	})

	_, err := s.SoftDelete().MarkDeleted(ctx, entities.EntityKindCase, "case-2", time.Now())
	assert.ErrorIs(t, err, boom)
	changed, err := s.SoftDelete().MarkDeleted(ctx, entities.EntityKindCase, "case-1", time.Now())
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestProcedureRepo_ListActiveExcludesDeleted(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	at := time.Now()
	s.PutProcedure(entities.Procedure{ID: "p-1", ClientID: "cli-1"})
	s.PutProcedure(entities.Procedure{ID: "p-2", ClientID: "cli-1", DeletedAt: &at})

	got, err := s.Procedures().ListActiveByClientID(ctx, "cli-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p-1", got[0].ID)

	missing, err := s.Procedures().UpdateStatus(ctx, "nope", entities.ProcedureStatusEnCurso)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestSoftDeleteStore_OwnersAndIsDeleted(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	at := time.Now()
	s.PutClient(entities.Client{ID: "cli-1", Name: "Acme SA", DeletedAt: &at})
	s.PutCase(entities.Case{ID: "case-1", ClientID: "cli-1"})
	s.PutProcedure(entities.Procedure{ID: "p-1", ClientID: "cli-1", CaseID: "case-1"})
	s.PutProcedure(entities.Procedure{ID: "p-2", ClientID: "cli-1"})
	sd := s.SoftDelete()

	owners, err := sd.Owners(ctx, entities.EntityKindProcedure, "p-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{lifecycle.ForeignKeyClientID: "cli-1", lifecycle.ForeignKeyCaseID: "case-1"}, owners)

	owners, err = sd.Owners(ctx, entities.EntityKindProcedure, "p-2")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{lifecycle.ForeignKeyClientID: "cli-1"}, owners)

	owners, err = sd.Owners(ctx, entities.EntityKindClient, "cli-1")
	require.NoError(t, err)
	assert.Empty(t, owners)

	deleted, err := sd.IsDeleted(ctx, entities.EntityKindClient, "cli-1")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = sd.IsDeleted(ctx, entities.EntityKindCase, "case-1")
	require.NoError(t, err)
	assert.False(t, deleted)
	deleted, err = sd.IsDeleted(ctx, entities.EntityKindCase, "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
}
