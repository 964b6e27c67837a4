// Package memory is an in-process implementation of the persistence ports.
// It backs STORE_DRIVER=memory, local runs of recyclectl and the use case
// tests. Every write touches one row under the store mutex, so cascades built
// on top of it are as non-atomic as they are against DynamoDB.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase/interfaces"
)

// WriteHook runs before every write. A non-nil error aborts that write only.
type WriteHook func(op string, kind entities.EntityKind, id string) error

type Store struct {
	mu         sync.RWMutex
	clients    map[string]entities.Client
	cases      map[string]entities.Case
	procedures map[string]entities.Procedure
	docs       map[string]entities.ProcedureDocument
	clientDocs map[string]entities.ClientDocument
	notes      []entities.ActivityNote
	hook       WriteHook
}

func NewStore() *Store {
	return &Store{
		clients:    map[string]entities.Client{},
		cases:      map[string]entities.Case{},
		procedures: map[string]entities.Procedure{},
		docs:       map[string]entities.ProcedureDocument{},
		clientDocs: map[string]entities.ClientDocument{},
	}
}

// SetWriteHook installs h; nil removes it.
func (s *Store) SetWriteHook(h WriteHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = h
}

func (s *Store) checkWrite(op string, kind entities.EntityKind, id string) error {
	if s.hook == nil {
		return nil
	}
	return s.hook(op, kind, id)
}

func (s *Store) PutClient(c entities.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.DeletedAt = cloneTime(c.DeletedAt)
	s.clients[c.ID] = c
}

func (s *Store) PutCase(c entities.Case) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.DeletedAt = cloneTime(c.DeletedAt)
	s.cases[c.ID] = c
}

func (s *Store) PutProcedure(p entities.Procedure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.procedures[p.ID] = cloneProcedure(p)
}

func (s *Store) PutProcedureDocument(d entities.ProcedureDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[d.ID] = d
}

func (s *Store) PutClientDocument(d entities.ClientDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ExpiresAt = cloneTime(d.ExpiresAt)
	s.clientDocs[d.ID] = d
}

// Notes returns a copy of the activity notes in insertion order.
func (s *Store) Notes() []entities.ActivityNote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.ActivityNote(nil), s.notes...)
}

// Repository views over the shared state.

func (s *Store) Clients() interfaces.IClientRepository { return clientRepo{s} }

func (s *Store) Cases() interfaces.ICaseRepository { return caseRepo{s} }

func (s *Store) Procedures() interfaces.IProcedureRepository { return procedureRepo{s} }

func (s *Store) ProcedureDocuments() interfaces.IProcedureDocumentRepository {
	return procedureDocumentRepo{s}
}

func (s *Store) ClientDocuments() interfaces.IClientDocumentRepository {
	return clientDocumentRepo{s}
}

func (s *Store) Activity() interfaces.IActivityRepository { return activityRepo{s} }

func (s *Store) SoftDelete() interfaces.ISoftDeleteStore { return softDeleteStore{s} }

var (
	_ interfaces.IClientRepository            = clientRepo{}
	_ interfaces.ICaseRepository              = caseRepo{}
	_ interfaces.IProcedureRepository         = procedureRepo{}
	_ interfaces.IProcedureDocumentRepository = procedureDocumentRepo{}
	_ interfaces.IClientDocumentRepository    = clientDocumentRepo{}
	_ interfaces.IActivityRepository          = activityRepo{}
	_ interfaces.ISoftDeleteStore             = softDeleteStore{}
)

type clientRepo struct{ s *Store }

func (r clientRepo) GetByID(_ context.Context, id string) (entities.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c := r.s.clients[id]
	c.DeletedAt = cloneTime(c.DeletedAt)
	return c, nil
}

type caseRepo struct{ s *Store }

func (r caseRepo) Create(_ context.Context, c entities.Case) (entities.Case, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkWrite("create", entities.EntityKindCase, c.ID); err != nil {
		return entities.Case{}, err
	}
	r.s.cases[c.ID] = c
	return c, nil
}

func (r caseRepo) GetByID(_ context.Context, id string) (entities.Case, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c := r.s.cases[id]
	c.DeletedAt = cloneTime(c.DeletedAt)
	return c, nil
}

func (r caseRepo) ListActiveByClientID(_ context.Context, clientID string) ([]entities.Case, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.Case{}
	for _, c := range r.s.cases {
		if c.ClientID == clientID && c.IsActive() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r caseRepo) UpdateStatus(_ context.Context, id string, status entities.CaseStatus) (entities.Case, error) {
	return r.update(id, func(c *entities.Case) { c.Status = status })
}

func (r caseRepo) UpdatePriority(_ context.Context, id string, priority entities.CasePriority) (entities.Case, error) {
	return r.update(id, func(c *entities.Case) { c.Priority = priority })
}

func (r caseRepo) update(id string, apply func(*entities.Case)) (entities.Case, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkWrite("update", entities.EntityKindCase, id); err != nil {
		return entities.Case{}, err
	}
	c, ok := r.s.cases[id]
	if !ok {
		return entities.Case{}, nil
	}
	apply(&c)
	c.UpdatedAt = time.Now().UTC()
	r.s.cases[id] = c
	return c, nil
}

type procedureRepo struct{ s *Store }

func (r procedureRepo) Create(_ context.Context, p entities.Procedure) (entities.Procedure, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkWrite("create", entities.EntityKindProcedure, p.ID); err != nil {
		return entities.Procedure{}, err
	}
	r.s.procedures[p.ID] = cloneProcedure(p)
	return p, nil
}

func (r procedureRepo) GetByID(_ context.Context, id string) (entities.Procedure, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneProcedure(r.s.procedures[id]), nil
}

func (r procedureRepo) ListActiveByCaseID(_ context.Context, caseID string) ([]entities.Procedure, error) {
	return r.list(func(p entities.Procedure) bool { return p.CaseID == caseID }), nil
}

func (r procedureRepo) ListActiveByClientID(_ context.Context, clientID string) ([]entities.Procedure, error) {
	return r.list(func(p entities.Procedure) bool { return p.ClientID == clientID }), nil
}

func (r procedureRepo) list(match func(entities.Procedure) bool) []entities.Procedure {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.Procedure{}
	for _, p := range r.s.procedures {
		if p.IsActive() && match(p) {
			out = append(out, cloneProcedure(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r procedureRepo) UpdateStatus(_ context.Context, id string, status entities.ProcedureStatus) (entities.Procedure, error) {
	return r.update(id, func(p *entities.Procedure) { p.Status = status })
}

func (r procedureRepo) UpdateProgress(_ context.Context, id string, progress int) (entities.Procedure, error) {
	return r.update(id, func(p *entities.Procedure) { p.Progress = progress })
}

func (r procedureRepo) UpdateSemaphore(_ context.Context, id string, semaphore *entities.Semaphore) (entities.Procedure, error) {
	return r.update(id, func(p *entities.Procedure) {
		if semaphore == nil {
			p.Semaphore = nil
			return
		}
		v := *semaphore
		p.Semaphore = &v
	})
}

func (r procedureRepo) update(id string, apply func(*entities.Procedure)) (entities.Procedure, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkWrite("update", entities.EntityKindProcedure, id); err != nil {
		return entities.Procedure{}, err
	}
	p, ok := r.s.procedures[id]
	if !ok {
		return entities.Procedure{}, nil
	}
	p = cloneProcedure(p)
	apply(&p)
	p.UpdatedAt = time.Now().UTC()
	r.s.procedures[id] = p
	return cloneProcedure(p), nil
}

type procedureDocumentRepo struct{ s *Store }

func (r procedureDocumentRepo) GetByID(_ context.Context, id string) (entities.ProcedureDocument, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.docs[id], nil
}

func (r procedureDocumentRepo) ListByProcedureID(_ context.Context, procedureID string) ([]entities.ProcedureDocument, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.ProcedureDocument{}
	for _, d := range r.s.docs {
		if d.ProcedureID == procedureID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r procedureDocumentRepo) UpdateStatus(_ context.Context, id string, status entities.ProcedureDocumentStatus) (entities.ProcedureDocument, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkWrite("update", entities.EntityKindProcedureDocument, id); err != nil {
		return entities.ProcedureDocument{}, err
	}
	d, ok := r.s.docs[id]
	if !ok {
		return entities.ProcedureDocument{}, nil
	}
	d.Status = status
	d.UpdatedAt = time.Now().UTC()
	r.s.docs[id] = d
	return d, nil
}

func (r procedureDocumentRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkWrite("delete", entities.EntityKindProcedureDocument, id); err != nil {
		return false, err
	}
	if _, ok := r.s.docs[id]; !ok {
		return false, nil
	}
	delete(r.s.docs, id)
	return true, nil
}

type clientDocumentRepo struct{ s *Store }

func (r clientDocumentRepo) GetByID(_ context.Context, id string) (entities.ClientDocument, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d := r.s.clientDocs[id]
	d.ExpiresAt = cloneTime(d.ExpiresAt)
	return d, nil
}

func (r clientDocumentRepo) ListByClientID(_ context.Context, clientID string) ([]entities.ClientDocument, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.ClientDocument{}
	for _, d := range r.s.clientDocs {
		if d.ClientID == clientID {
			d.ExpiresAt = cloneTime(d.ExpiresAt)
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r clientDocumentRepo) UpdateStatus(_ context.Context, id string, status entities.ClientDocumentStatus) (entities.ClientDocument, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkWrite("update", entities.EntityKindClientDocument, id); err != nil {
		return entities.ClientDocument{}, err
	}
	d, ok := r.s.clientDocs[id]
	if !ok {
		return entities.ClientDocument{}, nil
	}
	d.Status = status
	d.UpdatedAt = time.Now().UTC()
	r.s.clientDocs[id] = d
	d.ExpiresAt = cloneTime(d.ExpiresAt)
	return d, nil
}

type activityRepo struct{ s *Store }

func (r activityRepo) Append(_ context.Context, note entities.ActivityNote) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkWrite("append", note.EntityKind, note.EntityID); err != nil {
		return err
	}
	r.s.notes = append(r.s.notes, note)
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneProcedure(p entities.Procedure) entities.Procedure {
	p.DeletedAt = cloneTime(p.DeletedAt)
	p.DueDate = cloneTime(p.DueDate)
	if p.Semaphore != nil {
		v := *p.Semaphore
		p.Semaphore = &v
	}
	return p
}
