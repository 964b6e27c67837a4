package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestion_tramites/internal/domain/lifecycle"
	"gestion_tramites/internal/usecase"
	"gestion_tramites/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid payload", http.StatusBadRequest)
	errInvalidKind    = pkg.NewDomainErrorSimple("INVALID_KIND", "Unknown entity kind", http.StatusBadRequest)
)

// mapError translates use case and domain errors into the HTTP envelope.
// Not-found and rejected transitions are final; persistence and partial
// cascade failures are retryable.
func mapError(err error) *pkg.AppError {
	var rejected *lifecycle.TransitionRejectedError
	switch {
	case errors.As(err, &rejected):
		return pkg.NewDomainError("TRANSITION_REJECTED", rejected.Error(), err, http.StatusConflict)
	case errors.Is(err, lifecycle.ErrDocumentRejectNotAllowed):
		return pkg.NewDomainErrorSimple("DOCUMENT_REJECT_NOT_ALLOWED", "Only a presented document can be rejected", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrUnknownDocumentStatus):
		return pkg.NewDomainError("UNKNOWN_DOCUMENT_STATUS", "Document has an unknown status", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCaseClientMismatch):
		return pkg.NewDomainErrorSimple("CASE_CLIENT_MISMATCH", "Case belongs to a different client", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidSemaphore),
		errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, lifecycle.ErrProgressOutOfRange):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedKind):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_KIND", "Operation not supported for this kind", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProcedureNotFound):
		return pkg.NewDomainErrorSimple("PROCEDURE_NOT_FOUND", "Procedure not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientDocumentNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_DOCUMENT_NOT_FOUND", "Client document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartialCascade):
		return pkg.NewDomainError("PARTIAL_CASCADE", "Some dependents were not updated, retry the operation", err, http.StatusMultiStatus)
	case errors.Is(err, usecase.ErrQuoteGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("QUOTES_UNAVAILABLE", "Quote subsystem is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Storage is unavailable, retry the operation", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
