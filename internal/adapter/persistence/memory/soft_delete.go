package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
)

type softDeleteStore struct{ s *Store }

// row is a kind-agnostic handle over one soft-deletable record.
type row struct {
	deletedAt *time.Time
	set       func(*time.Time)
	remove    func()
	record    entities.DeletedRecord
}

// lookup must be called with the mutex held.
func (st softDeleteStore) lookup(kind entities.EntityKind, id string) (row, bool, error) {
	s := st.s
	switch kind {
	case entities.EntityKindClient:
		c, ok := s.clients[id]
		if !ok {
			return row{}, false, nil
		}
		return row{
			deletedAt: c.DeletedAt,
			set:       func(t *time.Time) { c.DeletedAt = t; c.UpdatedAt = time.Now().UTC(); s.clients[id] = c },
			remove:    func() { delete(s.clients, id) },
			record:    entities.DeletedRecord{Kind: kind, ID: id, Label: c.Name, Detail: c.TaxID},
		}, true, nil
	case entities.EntityKindCase:
		c, ok := s.cases[id]
		if !ok {
			return row{}, false, nil
		}
		return row{
			deletedAt: c.DeletedAt,
			set:       func(t *time.Time) { c.DeletedAt = t; c.UpdatedAt = time.Now().UTC(); s.cases[id] = c },
			remove:    func() { delete(s.cases, id) },
			record:    entities.DeletedRecord{Kind: kind, ID: id, Label: c.Title, Detail: string(c.Status)},
		}, true, nil
	case entities.EntityKindProcedure:
		p, ok := s.procedures[id]
		if !ok {
			return row{}, false, nil
		}
		return row{
			deletedAt: p.DeletedAt,
			set:       func(t *time.Time) { p.DeletedAt = t; p.UpdatedAt = time.Now().UTC(); s.procedures[id] = p },
			remove:    func() { delete(s.procedures, id) },
			record:    entities.DeletedRecord{Kind: kind, ID: id, Label: p.Title, Detail: p.Type},
		}, true, nil
	}
	return row{}, false, fmt.Errorf("memory store: unsupported kind %q", kind)
}

func (st softDeleteStore) Exists(_ context.Context, kind entities.EntityKind, id string) (bool, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	_, ok, err := st.lookup(kind, id)
	return ok, err
}

func (st softDeleteStore) MarkDeleted(_ context.Context, kind entities.EntityKind, id string, at time.Time) (bool, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if err := st.s.checkWrite("mark_deleted", kind, id); err != nil {
		return false, err
	}
	r, ok, err := st.lookup(kind, id)
	if err != nil || !ok || r.deletedAt != nil {
		return false, err
	}
	at = at.UTC()
	r.set(&at)
	return true, nil
}

func (st softDeleteStore) ClearDeleted(_ context.Context, kind entities.EntityKind, id string) (bool, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if err := st.s.checkWrite("clear_deleted", kind, id); err != nil {
		return false, err
	}
	r, ok, err := st.lookup(kind, id)
	if err != nil || !ok || r.deletedAt == nil {
		return false, err
	}
	r.set(nil)
	return true, nil
}

func (st softDeleteStore) ListChildIDs(_ context.Context, kind entities.EntityKind, foreignKey, parentID string) ([]string, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	var ids []string
	switch {
	case kind == entities.EntityKindCase && foreignKey == lifecycle.ForeignKeyClientID:
		for id, c := range st.s.cases {
			if c.ClientID == parentID {
				ids = append(ids, id)
			}
		}
	case kind == entities.EntityKindProcedure && foreignKey == lifecycle.ForeignKeyClientID:
		for id, p := range st.s.procedures {
			if p.ClientID == parentID {
				ids = append(ids, id)
			}
		}
	case kind == entities.EntityKindProcedure && foreignKey == lifecycle.ForeignKeyCaseID:
		for id, p := range st.s.procedures {
			if p.CaseID == parentID {
				ids = append(ids, id)
			}
		}
	default:
		return nil, fmt.Errorf("memory store: no %s index on %s", foreignKey, kind)
	}
	sort.Strings(ids)
	return ids, nil
}

func (st softDeleteStore) Owners(_ context.Context, kind entities.EntityKind, id string) (map[string]string, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	out := map[string]string{}
	switch kind {
	case entities.EntityKindClient:
	case entities.EntityKindCase:
		if c, ok := st.s.cases[id]; ok {
			out[lifecycle.ForeignKeyClientID] = c.ClientID
		}
	case entities.EntityKindProcedure:
		if p, ok := st.s.procedures[id]; ok {
			out[lifecycle.ForeignKeyClientID] = p.ClientID
			if p.CaseID != "" {
				out[lifecycle.ForeignKeyCaseID] = p.CaseID
			}
		}
	default:
		return nil, fmt.Errorf("memory store: unsupported kind %q", kind)
	}
	return out, nil
}

func (st softDeleteStore) IsDeleted(_ context.Context, kind entities.EntityKind, id string) (bool, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	r, ok, err := st.lookup(kind, id)
	if err != nil || !ok {
		return false, err
	}
	return r.deletedAt != nil, nil
}

func (st softDeleteStore) ListDeleted(_ context.Context, kind entities.EntityKind) ([]entities.DeletedRecord, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	var ids []string
	switch kind {
	case entities.EntityKindClient:
		for id := range st.s.clients {
			ids = append(ids, id)
		}
	case entities.EntityKindCase:
		for id := range st.s.cases {
			ids = append(ids, id)
		}
	case entities.EntityKindProcedure:
		for id := range st.s.procedures {
			ids = append(ids, id)
		}
	default:
		return nil, fmt.Errorf("memory store: unsupported kind %q", kind)
	}
	sort.Strings(ids)

	out := []entities.DeletedRecord{}
	for _, id := range ids {
		r, _, _ := st.lookup(kind, id)
		if r.deletedAt == nil {
			continue
		}
		rec := r.record
		rec.DeletedAt = *r.deletedAt
		out = append(out, rec)
	}
	return out, nil
}

func (st softDeleteStore) Purge(_ context.Context, kind entities.EntityKind, id string) (bool, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if err := st.s.checkWrite("purge", kind, id); err != nil {
		return false, err
	}
	r, ok, err := st.lookup(kind, id)
	if err != nil || !ok {
		return false, err
	}
	r.remove()
	return true, nil
}
