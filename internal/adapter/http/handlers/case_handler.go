package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "gestion_tramites/internal/adapter/http/dto/request"
	response "gestion_tramites/internal/adapter/http/dto/response"
	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase"
)

type CaseHandler struct {
	cases      usecase.ICaseUseCase
	attention  usecase.IAttentionUseCase
	softDelete usecase.ISoftDeleteUseCase
}

func NewCaseHandler(cases usecase.ICaseUseCase, attention usecase.IAttentionUseCase, softDelete usecase.ISoftDeleteUseCase) *CaseHandler {
	return &CaseHandler{cases: cases, attention: attention, softDelete: softDelete}
}

// CreateCase godoc
// @Summary      Open a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateCaseRequest  true  "Case"
// @Success      201      {object}  response.CaseResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /cases [post]
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var payload request.CreateCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.cases.CreateCase(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCase(created))
}

// GetCase godoc
// @Summary      Get a case
// @Tags         cases
// @Produce      json
// @Param        id   path      string  true  "Case ID"
// @Success      200  {object}  response.CaseResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /cases/{id} [get]
func (h *CaseHandler) GetCase(c *gin.Context) {
	found, err := h.cases.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCase(found))
}

// ChangeStatus godoc
// @Summary      Move a case to another status
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Case ID"
// @Param        payload  body      request.StatusRequest  true  "Target status"
// @Success      200      {object}  response.CaseResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /cases/{id}/status [patch]
func (h *CaseHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.cases.ChangeStatus(c.Request.Context(), c.Param("id"), entities.CaseStatus(payload.ResolveStatus()))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCase(updated))
}

// AllowedTransitions godoc
// @Summary      Statuses reachable from the current one
// @Tags         cases
// @Produce      json
// @Param        id   path      string  true  "Case ID"
// @Success      200  {object}  response.TransitionsResponse
// @Router       /cases/{id}/transitions [get]
func (h *CaseHandler) AllowedTransitions(c *gin.Context) {
	id := c.Param("id")
	allowed, err := h.cases.AllowedTransitions(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransitions(id, allowed))
}

// UpdatePriority godoc
// @Summary      Change the case priority
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Case ID"
// @Param        payload  body      request.PriorityRequest  true  "Priority"
// @Success      200      {object}  response.CaseResponse
// @Router       /cases/{id}/priority [patch]
func (h *CaseHandler) UpdatePriority(c *gin.Context) {
	var payload request.PriorityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.cases.UpdatePriority(c.Request.Context(), c.Param("id"), payload.ResolvePriority())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCase(updated))
}

// Aggregate godoc
// @Summary      Case roll-up over its active procedures
// @Tags         cases
// @Produce      json
// @Param        id   path      string  true  "Case ID"
// @Success      200  {object}  lifecycle.CaseAggregate
// @Router       /cases/{id}/aggregate [get]
func (h *CaseHandler) Aggregate(c *gin.Context) {
	agg, err := h.attention.CaseAggregate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

// DeleteCase godoc
// @Summary      Send a case and its procedures to the recycle bin
// @Tags         cases
// @Produce      json
// @Param        id   path      string  true  "Case ID"
// @Success      200  {object}  response.CascadeResponse
// @Success      207  {object}  response.CascadeResponse
// @Router       /cases/{id} [delete]
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	softDelete(c, h.softDelete, entities.EntityKindCase)
}
