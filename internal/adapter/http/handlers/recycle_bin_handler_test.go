package handlers

import (
	"net/http"
	"testing"
	"time"

	response "gestion_tramites/internal/adapter/http/dto/response"
	"gestion_tramites/internal/adapter/http/handlers/mocks"
	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRecycleBinRouter(t *testing.T) (*mocks.MockIRecycleBinUseCase, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRecycleBinUseCase(ctrl)
	h := NewRecycleBinHandler(uc)

	r := gin.New()
	r.GET("/v1/recycle-bin", h.List)
	r.POST("/v1/recycle-bin/:kind/:id/restore", h.Restore)
	r.DELETE("/v1/recycle-bin/:kind/:id", h.Purge)
	return uc, r
}

func TestRecycleBinHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, r := newRecycleBinRouter(t)
		deletedAt := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().List(gomock.Any()).Return(usecase.RecycleBin{
			RetentionDays: 30,
			Entries: []usecase.RecycleBinEntry{{
				DeletedRecord: entities.DeletedRecord{Kind: entities.EntityKindCase, ID: "case-b", Label: "Mudanza", DeletedAt: deletedAt},
				RemainingDays: 27,
			}},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/recycle-bin", "")
		expectStatus(t, w, http.StatusOK)

		var body response.RecycleBinResponse
		decodeBody(t, w, &body)
		if len(body.Entries) != 1 || body.Entries[0].RemainingDays != 27 || body.QuotesAvailable {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		uc, r := newRecycleBinRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(usecase.RecycleBin{}, usecase.ErrPersistenceFailure)

		w := serve(r, http.MethodGet, "/v1/recycle-bin", "")
		expectStatus(t, w, http.StatusServiceUnavailable)
	})
}

func TestRecycleBinHandler_Actions(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		_, r := newRecycleBinRouter(t)
		w := serve(r, http.MethodPost, "/v1/recycle-bin/invoice/inv-1/restore", "")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("restore", func(t *testing.T) {
		uc, r := newRecycleBinRouter(t)
		uc.EXPECT().Restore(gomock.Any(), entities.EntityKindClient, "cli-1").Return(nil)

		w := serve(r, http.MethodPost, "/v1/recycle-bin/clients/cli-1/restore", "")
		expectStatus(t, w, http.StatusNoContent)
	})

	t.Run("restore partial", func(t *testing.T) {
		uc, r := newRecycleBinRouter(t)
		uc.EXPECT().Restore(gomock.Any(), entities.EntityKindClient, "cli-1").
			Return(&usecase.PartialCascadeError{Operation: usecase.OperationRestore, Kind: entities.EntityKindClient, ID: "cli-1"})

		w := serve(r, http.MethodPost, "/v1/recycle-bin/client/cli-1/restore", "")
		expectStatus(t, w, http.StatusMultiStatus)
	})

	t.Run("purge quote without gateway", func(t *testing.T) {
		uc, r := newRecycleBinRouter(t)
		uc.EXPECT().Purge(gomock.Any(), entities.EntityKindQuote, "q-1").Return(usecase.ErrQuoteGatewayNotConfigured)

		w := serve(r, http.MethodDelete, "/v1/recycle-bin/quote/q-1", "")
		expectStatus(t, w, http.StatusServiceUnavailable)
	})

	t.Run("purge", func(t *testing.T) {
		uc, r := newRecycleBinRouter(t)
		uc.EXPECT().Purge(gomock.Any(), entities.EntityKindProcedure, "proc-3").Return(nil)

		w := serve(r, http.MethodDelete, "/v1/recycle-bin/procedure/proc-3", "")
		expectStatus(t, w, http.StatusNoContent)
	})
}
