package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/juju/clock/testclock"

	"gestion_tramites/internal/adapter/persistence/memory"
	"gestion_tramites/internal/app"
	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*App, *memory.Store, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	store := memory.NewStore()
	store.PutClient(entities.Client{ID: "cli-1", Name: "Panadería Sur"})
	store.PutCase(entities.Case{ID: "case-a", ClientID: "cli-1", Title: "Habilitación", Status: entities.CaseStatusEnCurso})
	store.PutProcedure(entities.Procedure{ID: "proc-1", ClientID: "cli-1", CaseID: "case-a", Title: "Plano", Status: entities.ProcedureStatusEnCurso})
	deleted := testNow.Add(-28 * 24 * time.Hour)
	store.PutProcedure(entities.Procedure{ID: "proc-old", ClientID: "cli-1", Title: "Inscripción", Status: entities.ProcedureStatusConsulta, DeletedAt: &deleted})

	uc := app.Wire(app.MemoryStores(store), nil, 30, testclock.NewClock(testNow))
	var stdout, stderr bytes.Buffer
	a := New(func(context.Context) (app.UseCases, error) { return uc, nil }).WithOutput(&stdout, &stderr)
	return a, store, &stdout, &stderr
}

func TestApp_Help(t *testing.T) {
	a, _, stdout, _ := newTestApp(t)
	if err := a.ExecuteWithArgs(context.Background(), []string{"--help"}); err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, cmd := range []string{"list", "delete", "restore", "purge"} {
		if !strings.Contains(stdout.String(), cmd) {
			t.Errorf("help output missing %q: %s", cmd, stdout.String())
		}
	}
}

func TestApp_List(t *testing.T) {
	a, _, stdout, stderr := newTestApp(t)
	if err := a.ExecuteWithArgs(context.Background(), []string{"list"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "DAYS LEFT") {
		t.Errorf("expected table header, got: %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "proc-old") || !strings.Contains(stdout.String(), "URGENT") {
		t.Errorf("expected urgent proc-old row, got: %s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "quote subsystem unavailable") {
		t.Errorf("expected quote warning, got: %s", stderr.String())
	}
}

func TestApp_ListJSONByKind(t *testing.T) {
	a, _, stdout, _ := newTestApp(t)
	if err := a.ExecuteWithArgs(context.Background(), []string{"delete", "case", "case-a"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	stdout.Reset()

	if err := a.ExecuteWithArgs(context.Background(), []string{"list", "--json", "--kind", "cases"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var out struct {
		Entries []struct {
			Kind string `json:"kind"`
			ID   string `json:"id"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", stdout.String(), err)
	}
	if len(out.Entries) != 1 || out.Entries[0].ID != "case-a" {
		t.Fatalf("expected only case-a, got %+v", out.Entries)
	}
}

func TestApp_DeleteAndRestore(t *testing.T) {
	ctx := context.Background()
	a, store, stdout, _ := newTestApp(t)

	if err := a.ExecuteWithArgs(ctx, []string{"delete", "client", "cli-1"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "deleted client cli-1, 2 dependent(s) updated") {
		t.Errorf("unexpected output: %s", stdout.String())
	}

	if err := a.ExecuteWithArgs(ctx, []string{"restore", "client", "cli-1"}); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	p, _ := store.Procedures().GetByID(ctx, "proc-1")
	if !p.IsActive() {
		t.Fatalf("expected proc-1 restored")
	}
	old, _ := store.Procedures().GetByID(ctx, "proc-old")
	if !old.IsActive() {
		t.Fatalf("expected proc-old restored through its client")
	}
}

func TestApp_Purge(t *testing.T) {
	ctx := context.Background()

	t.Run("requires confirmation", func(t *testing.T) {
		a, store, _, _ := newTestApp(t)
		if err := a.ExecuteWithArgs(ctx, []string{"purge", "procedure", "proc-old"}); err == nil {
			t.Fatalf("expected purge without --yes to fail")
		}
		if p, _ := store.Procedures().GetByID(ctx, "proc-old"); p.ID == "" {
			t.Fatalf("proc-old must survive an unconfirmed purge")
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		a, store, stdout, _ := newTestApp(t)
		if err := a.ExecuteWithArgs(ctx, []string{"purge", "procedure", "proc-old", "--yes"}); err != nil {
			t.Fatalf("purge failed: %v", err)
		}
		if p, _ := store.Procedures().GetByID(ctx, "proc-old"); p.ID != "" {
			t.Fatalf("expected proc-old purged")
		}
		if !strings.Contains(stdout.String(), "purged procedure proc-old") {
			t.Errorf("unexpected output: %s", stdout.String())
		}
	})

	t.Run("quote without gateway", func(t *testing.T) {
		a, _, _, _ := newTestApp(t)
		err := a.ExecuteWithArgs(ctx, []string{"purge", "quote", "q-1", "-y"})
		if !errors.Is(err, usecase.ErrQuoteGatewayNotConfigured) {
			t.Fatalf("expected ErrQuoteGatewayNotConfigured, got %v", err)
		}
	})
}

func TestApp_UnknownKind(t *testing.T) {
	a, _, _, _ := newTestApp(t)
	if err := a.ExecuteWithArgs(context.Background(), []string{"restore", "invoice", "inv-1"}); err == nil {
		t.Fatalf("expected unknown kind to fail")
	}
}
