package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase"
)

type ClientHandler struct {
	attention  usecase.IAttentionUseCase
	softDelete usecase.ISoftDeleteUseCase
}

func NewClientHandler(attention usecase.IAttentionUseCase, softDelete usecase.ISoftDeleteUseCase) *ClientHandler {
	return &ClientHandler{attention: attention, softDelete: softDelete}
}

// Overview godoc
// @Summary      Client portal roll-up over every active procedure of the client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  lifecycle.ClientOverview
// @Router       /clients/{id}/overview [get]
func (h *ClientHandler) Overview(c *gin.Context) {
	overview, err := h.attention.ClientOverview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// DeleteClient godoc
// @Summary      Send a client, its cases and its procedures to the recycle bin
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.CascadeResponse
// @Success      207  {object}  response.CascadeResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	softDelete(c, h.softDelete, entities.EntityKindClient)
}
