package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "gestion_tramites/internal/adapter/http/dto/response"
	"gestion_tramites/internal/usecase"
)

// DocumentHandler drives the two document micro-state machines. Requests
// carry no body: the next state is always computed from the stored one.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// CycleProcedureDocument godoc
// @Summary      Advance a procedure document (pendiente → presentado → aprobado)
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  response.ProcedureDocumentResponse
// @Router       /procedure-documents/{id}/cycle [post]
func (h *DocumentHandler) CycleProcedureDocument(c *gin.Context) {
	doc, err := h.usecase.CycleProcedureDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProcedureDocument(doc))
}

// RejectProcedureDocument godoc
// @Summary      Reject a presented procedure document
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  response.ProcedureDocumentResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /procedure-documents/{id}/reject [post]
func (h *DocumentHandler) RejectProcedureDocument(c *gin.Context) {
	doc, err := h.usecase.RejectProcedureDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProcedureDocument(doc))
}

// DeleteProcedureDocument godoc
// @Summary      Permanently remove a procedure document
// @Tags         documents
// @Param        id   path  string  true  "Document ID"
// @Success      204
// @Router       /procedure-documents/{id} [delete]
func (h *DocumentHandler) DeleteProcedureDocument(c *gin.Context) {
	if err := h.usecase.DeleteProcedureDocument(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CycleClientDocument godoc
// @Summary      Advance a client document (vigente → vencido → pendiente)
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Client document ID"
// @Success      200  {object}  response.ClientDocumentResponse
// @Router       /client-documents/{id}/cycle [post]
func (h *DocumentHandler) CycleClientDocument(c *gin.Context) {
	doc, err := h.usecase.CycleClientDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClientDocument(doc))
}
