package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	request "gestion_tramites/internal/adapter/http/dto/request"
	response "gestion_tramites/internal/adapter/http/dto/response"
	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase"
)

type RecycleBinHandler struct {
	usecase usecase.IRecycleBinUseCase
}

func NewRecycleBinHandler(uc usecase.IRecycleBinUseCase) *RecycleBinHandler {
	return &RecycleBinHandler{usecase: uc}
}

// List godoc
// @Summary      Every soft-deleted row with its retention countdown
// @Tags         recycle-bin
// @Produce      json
// @Success      200  {object}  response.RecycleBinResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /recycle-bin [get]
func (h *RecycleBinHandler) List(c *gin.Context) {
	bin, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecycleBin(bin))
}

// Restore godoc
// @Summary      Restore a row and, for local kinds, everything it owns
// @Tags         recycle-bin
// @Param        kind  path  string  true  "client, case, procedure or quote"
// @Param        id    path  string  true  "Row ID"
// @Success      204
// @Failure      207   {object}  pkg.HTTPError
// @Router       /recycle-bin/{kind}/{id}/restore [post]
func (h *RecycleBinHandler) Restore(c *gin.Context) {
	h.act(c, h.usecase.Restore)
}

// Purge godoc
// @Summary      Permanently delete a single row
// @Tags         recycle-bin
// @Param        kind  path  string  true  "client, case, procedure or quote"
// @Param        id    path  string  true  "Row ID"
// @Success      204
// @Router       /recycle-bin/{kind}/{id} [delete]
func (h *RecycleBinHandler) Purge(c *gin.Context) {
	h.act(c, h.usecase.Purge)
}

func (h *RecycleBinHandler) act(c *gin.Context, action func(ctx context.Context, kind entities.EntityKind, id string) error) {
	kind, err := request.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(errInvalidKind.HTTPStatus, errInvalidKind.ToHTTPError())
		return
	}
	if err := action(c.Request.Context(), kind, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
