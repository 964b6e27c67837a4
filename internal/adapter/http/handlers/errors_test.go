package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	"gestion_tramites/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"transition rejected", &lifecycle.TransitionRejectedError{Kind: entities.EntityKindCase, From: "archivado", To: "en_curso"}, http.StatusConflict, "TRANSITION_REJECTED"},
		{"reject not allowed", lifecycle.ErrDocumentRejectNotAllowed, http.StatusConflict, "DOCUMENT_REJECT_NOT_ALLOWED"},
		{"unknown document status", fmt.Errorf("doc-1: %w", lifecycle.ErrUnknownDocumentStatus), http.StatusUnprocessableEntity, "UNKNOWN_DOCUMENT_STATUS"},
		{"case client mismatch", usecase.ErrCaseClientMismatch, http.StatusUnprocessableEntity, "CASE_CLIENT_MISMATCH"},
		{"invalid status", usecase.ErrInvalidStatus, http.StatusBadRequest, "INVALID_REQUEST"},
		{"progress out of range", lifecycle.ErrProgressOutOfRange, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unsupported kind", usecase.ErrUnsupportedKind, http.StatusBadRequest, "UNSUPPORTED_KIND"},
		{"case not found", usecase.ErrCaseNotFound, http.StatusNotFound, "CASE_NOT_FOUND"},
		{"quote not found", usecase.ErrQuoteNotFound, http.StatusNotFound, "QUOTE_NOT_FOUND"},
		{"partial cascade", &usecase.PartialCascadeError{Operation: usecase.OperationSoftDelete, Kind: entities.EntityKindClient, ID: "cli-1"}, http.StatusMultiStatus, "PARTIAL_CASCADE"},
		{"quotes not configured", usecase.ErrQuoteGatewayNotConfigured, http.StatusServiceUnavailable, "QUOTES_UNAVAILABLE"},
		{"persistence", fmt.Errorf("%w: %w", usecase.ErrPersistenceFailure, errors.New("timeout")), http.StatusServiceUnavailable, "PERSISTENCE_FAILURE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
