package usecase

import (
	"errors"
	"fmt"
	"strings"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase/interfaces"
)

var (
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidSemaphore   = errors.New("invalid semaphore")
	ErrInvalidTitle       = errors.New("invalid title")
	ErrUnsupportedKind    = errors.New("unsupported entity kind")
	ErrCaseClientMismatch = errors.New("case belongs to a different client")

	ErrClientNotFound            = errors.New("client not found")
	ErrCaseNotFound              = errors.New("case not found")
	ErrProcedureNotFound         = errors.New("procedure not found")
	ErrDocumentNotFound          = errors.New("document not found")
	ErrClientDocumentNotFound    = errors.New("client document not found")
	ErrQuoteNotFound             = interfaces.ErrQuoteNotFound
	ErrQuoteGatewayNotConfigured = errors.New("quote gateway not configured")

	// ErrPersistenceFailure wraps any store error; nothing is assumed written.
	ErrPersistenceFailure = errors.New("persistence failure")
	// ErrPartialCascade matches every *PartialCascadeError.
	ErrPartialCascade = errors.New("partial cascade failure")
)

func persistenceFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
}

func notFoundFor(kind entities.EntityKind) error {
	switch kind {
	case entities.EntityKindClient:
		return ErrClientNotFound
	case entities.EntityKindCase:
		return ErrCaseNotFound
	case entities.EntityKindProcedure:
		return ErrProcedureNotFound
	case entities.EntityKindQuote:
		return ErrQuoteNotFound
	}
	return ErrUnsupportedKind
}

// CascadeFailure is one dependent that a cascade could not update. When the
// child listing itself failed, ID is empty and Parent identifies the node.
type CascadeFailure struct {
	Kind       entities.EntityKind
	ID         string
	ParentKind entities.EntityKind
	ParentID   string
	Err        error
}

// PartialCascadeError reports a cascade whose root was updated while some
// dependents were not. Re-running the same operation retries them.
type PartialCascadeError struct {
	Operation string
	Kind      entities.EntityKind
	ID        string
	Failures  []CascadeFailure
}

func (e *PartialCascadeError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		if f.ID == "" {
			parts = append(parts, fmt.Sprintf("list %s of %s %s: %v", f.Kind, f.ParentKind, f.ParentID, f.Err))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s: %v", f.Kind, f.ID, f.Err))
	}
	return fmt.Sprintf("%s of %s %s left %d dependent(s) behind: %s",
		e.Operation, e.Kind, e.ID, len(e.Failures), strings.Join(parts, "; "))
}

func (e *PartialCascadeError) Is(target error) bool {
	return target == ErrPartialCascade
}
