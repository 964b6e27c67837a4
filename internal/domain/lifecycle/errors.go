package lifecycle

import (
	"errors"
	"fmt"

	"gestion_tramites/internal/domain/entities"
)

var (
	// ErrTransitionRejected matches every *TransitionRejectedError.
	ErrTransitionRejected = errors.New("transition rejected")

	ErrDocumentRejectNotAllowed = errors.New("document can only be rejected while presentado")
	ErrUnknownDocumentStatus    = errors.New("unknown document status")
)

// TransitionRejectedError reports a status change absent from the transition table.
type TransitionRejectedError struct {
	Kind entities.EntityKind
	From string
	To   string
}

func (e *TransitionRejectedError) Error() string {
	return fmt.Sprintf("%s transition from %q to %q is not allowed", e.Kind, e.From, e.To)
}

func (e *TransitionRejectedError) Is(target error) bool {
	return target == ErrTransitionRejected
}
