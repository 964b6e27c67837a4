package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/rs/zerolog"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	"gestion_tramites/internal/infrastructure/logger"
	"gestion_tramites/internal/infrastructure/metrics"
	"gestion_tramites/internal/usecase/interfaces"
)

const (
	OperationSoftDelete = "soft_delete"
	OperationRestore    = "restore"
	OperationPurge      = "purge"
)

// CascadeResult summarises a soft-delete or restore. Changed refers to the
// root row; Affected counts dependents whose flag actually changed.
type CascadeResult struct {
	Kind     entities.EntityKind `json:"kind"`
	ID       string              `json:"id"`
	Changed  bool                `json:"changed"`
	Affected int                 `json:"affected"`
}

// ISoftDeleteUseCase manages deleted_at for the locally owned kinds.
type ISoftDeleteUseCase interface {
	SoftDelete(ctx context.Context, kind entities.EntityKind, id string) (CascadeResult, error)
	Restore(ctx context.Context, kind entities.EntityKind, id string) (CascadeResult, error)
	Purge(ctx context.Context, kind entities.EntityKind, id string) error
}

type SoftDeleteUseCase struct {
	store    interfaces.ISoftDeleteStore
	activity activityRecorder
	clock    clock.Clock
	log      zerolog.Logger
}

var _ ISoftDeleteUseCase = (*SoftDeleteUseCase)(nil)

func NewSoftDeleteUseCase(store interfaces.ISoftDeleteStore, activity interfaces.IActivityRepository, clk clock.Clock) *SoftDeleteUseCase {
	if clk == nil {
		clk = clock.WallClock
	}
	log := logger.WithComponent("soft_delete")
	return &SoftDeleteUseCase{
		store:    store,
		activity: activityRecorder{repo: activity, log: log},
		clock:    clk,
		log:      log,
	}
}

// SoftDelete stamps deleted_at on the root and on everything it owns. Rows
// that are already deleted keep their original timestamp.
func (u *SoftDeleteUseCase) SoftDelete(ctx context.Context, kind entities.EntityKind, id string) (CascadeResult, error) {
	now := u.clock.Now().UTC()
	res, err := u.cascade(ctx, OperationSoftDelete, kind, id, func(k entities.EntityKind, rowID string) (bool, error) {
		return u.store.MarkDeleted(ctx, k, rowID, now)
	})
	if err == nil || isPartial(err) {
		u.finish(ctx, OperationSoftDelete, res, "Enviado a la papelera", now)
	}
	return res, err
}

// Restore clears deleted_at on the root and on the same set of rows a
// soft-delete of the root would have reached. Ownership is read as it is now:
// a procedure moved to another case after deletion follows its new owner.
// Owners of the root that are still deleted are logged and left as they are.
func (u *SoftDeleteUseCase) Restore(ctx context.Context, kind entities.EntityKind, id string) (CascadeResult, error) {
	res, err := u.cascade(ctx, OperationRestore, kind, id, func(k entities.EntityKind, rowID string) (bool, error) {
		return u.store.ClearDeleted(ctx, k, rowID)
	})
	if err == nil || isPartial(err) {
		u.flagDeletedOwners(ctx, res.Kind, res.ID)
		u.finish(ctx, OperationRestore, res, "Restaurado desde la papelera", u.clock.Now().UTC())
	}
	return res, err
}

// flagDeletedOwners warns when a restored row points at an owner still in the
// recycle bin. Such a row is active but unreachable from its owner's views.
func (u *SoftDeleteUseCase) flagDeletedOwners(ctx context.Context, kind entities.EntityKind, id string) {
	edges := lifecycle.OwnersOf(kind)
	if len(edges) == 0 {
		return
	}
	owners, err := u.store.Owners(ctx, kind, id)
	if err != nil {
		u.log.Warn().Err(err).Str("kind", string(kind)).Str("id", id).Msg("could not read owners of restored row")
		return
	}
	for _, edge := range edges {
		ownerID := owners[edge.ForeignKey]
		if ownerID == "" {
			continue
		}
		deleted, err := u.store.IsDeleted(ctx, edge.Owner, ownerID)
		if err != nil {
			u.log.Warn().Err(err).Str("owner_kind", string(edge.Owner)).Str("owner_id", ownerID).Msg("could not read owner of restored row")
			continue
		}
		if deleted {
			u.log.Warn().Str("kind", string(kind)).Str("id", id).
				Str("owner_kind", string(edge.Owner)).Str("owner_id", ownerID).
				Msg("restored row is owned by a row that is still deleted")
		}
	}
}

// Purge removes a single row permanently. Dependents are not touched.
func (u *SoftDeleteUseCase) Purge(ctx context.Context, kind entities.EntityKind, id string) error {
	if !lifecycle.IsLocalKind(kind) {
		return ErrUnsupportedKind
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	existed, err := u.store.Purge(ctx, kind, id)
	if err != nil {
		u.log.Error().Err(err).Str("kind", string(kind)).Str("id", id).Msg("purge failed")
		return persistenceFailure(err)
	}
	if !existed {
		return notFoundFor(kind)
	}
	metrics.RecycleBinActionTotal.WithLabelValues(OperationPurge, string(kind)).Inc()
	u.log.Info().Str("kind", string(kind)).Str("id", id).Msg("purged")
	return nil
}

type applyFunc func(kind entities.EntityKind, id string) (bool, error)

type cascadeNode struct {
	kind entities.EntityKind
	id   string
}

// cascade applies fn to the root and then walks lifecycle.Ownership
// breadth-first, visiting each row once. A failing root aborts the walk; a
// failing dependent is recorded and the walk continues.
func (u *SoftDeleteUseCase) cascade(ctx context.Context, op string, kind entities.EntityKind, id string, fn applyFunc) (CascadeResult, error) {
	if !lifecycle.IsLocalKind(kind) {
		return CascadeResult{}, ErrUnsupportedKind
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return CascadeResult{}, ErrInvalidID
	}
	exists, err := u.store.Exists(ctx, kind, id)
	if err != nil {
		return CascadeResult{}, persistenceFailure(err)
	}
	if !exists {
		return CascadeResult{}, notFoundFor(kind)
	}

	changed, err := fn(kind, id)
	if err != nil {
		u.log.Error().Err(err).Str("operation", op).Str("kind", string(kind)).Str("id", id).Msg("root update failed")
		return CascadeResult{}, persistenceFailure(err)
	}
	res := CascadeResult{Kind: kind, ID: id, Changed: changed}

	var failures []CascadeFailure
	root := cascadeNode{kind: kind, id: id}
	visited := map[cascadeNode]struct{}{root: {}}
	direct := map[cascadeNode]struct{}{}
	queue := []cascadeNode{root}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, edge := range lifecycle.Children(node.kind) {
			childIDs, err := u.store.ListChildIDs(ctx, edge.Child, edge.ForeignKey, node.id)
			if err != nil {
				failures = append(failures, CascadeFailure{Kind: edge.Child, ParentKind: node.kind, ParentID: node.id, Err: err})
				continue
			}
			for _, childID := range childIDs {
				child := cascadeNode{kind: edge.Child, id: childID}
				if node == root {
					direct[child] = struct{}{}
				}
				if _, ok := visited[child]; ok {
					continue
				}
				visited[child] = struct{}{}

				childChanged, err := fn(child.kind, child.id)
				if err != nil {
					failures = append(failures, CascadeFailure{Kind: child.kind, ID: child.id, ParentKind: node.kind, ParentID: node.id, Err: err})
					continue
				}
				if childChanged {
					res.Affected++
				}
				if op == OperationRestore && kind == entities.EntityKindClient &&
					child.kind == entities.EntityKindProcedure && node != root {
					if _, ok := direct[child]; !ok {
						u.log.Warn().Str("client_id", id).Str("case_id", node.id).Str("procedure_id", childID).
							Msg("restored procedure through a case it no longer shares a client with")
					}
				}
				queue = append(queue, child)
			}
		}
	}

	if len(failures) == 0 {
		return res, nil
	}
	for _, f := range failures {
		metrics.CascadeFailureTotal.WithLabelValues(op, string(f.Kind)).Inc()
	}
	u.log.Warn().Str("operation", op).Str("kind", string(kind)).Str("id", id).
		Int("failures", len(failures)).Msg("cascade left dependents behind")
	return res, &PartialCascadeError{Operation: op, Kind: kind, ID: id, Failures: failures}
}

func (u *SoftDeleteUseCase) finish(ctx context.Context, op string, res CascadeResult, note string, at time.Time) {
	if res.Changed {
		metrics.RecycleBinActionTotal.WithLabelValues(op, string(res.Kind)).Inc()
		u.activity.record(ctx, res.Kind, res.ID, note, at)
	}
	u.log.Info().Str("operation", op).Str("kind", string(res.Kind)).Str("id", res.ID).
		Bool("changed", res.Changed).Int("affected", res.Affected).Msg("cascade finished")
}

func isPartial(err error) bool {
	var partial *PartialCascadeError
	return errors.As(err, &partial)
}
