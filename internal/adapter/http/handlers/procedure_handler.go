package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "gestion_tramites/internal/adapter/http/dto/request"
	response "gestion_tramites/internal/adapter/http/dto/response"
	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase"
	"gestion_tramites/pkg"
)

type ProcedureHandler struct {
	procedures usecase.IProcedureUseCase
	attention  usecase.IAttentionUseCase
	softDelete usecase.ISoftDeleteUseCase
}

func NewProcedureHandler(procedures usecase.IProcedureUseCase, attention usecase.IAttentionUseCase, softDelete usecase.ISoftDeleteUseCase) *ProcedureHandler {
	return &ProcedureHandler{procedures: procedures, attention: attention, softDelete: softDelete}
}

// CreateProcedure godoc
// @Summary      Open a procedure, inside a case or independent
// @Tags         procedures
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateProcedureRequest  true  "Procedure"
// @Success      201      {object}  response.ProcedureResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /procedures [post]
func (h *ProcedureHandler) CreateProcedure(c *gin.Context) {
	var payload request.CreateProcedureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.procedures.CreateProcedure(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProcedure(created))
}

// GetProcedure godoc
// @Summary      Get a procedure
// @Tags         procedures
// @Produce      json
// @Param        id   path      string  true  "Procedure ID"
// @Success      200  {object}  response.ProcedureResponse
// @Router       /procedures/{id} [get]
func (h *ProcedureHandler) GetProcedure(c *gin.Context) {
	found, err := h.procedures.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProcedure(found))
}

// ChangeStatus godoc
// @Summary      Move a procedure to another status
// @Tags         procedures
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Procedure ID"
// @Param        payload  body      request.StatusRequest  true  "Target status"
// @Success      200      {object}  response.ProcedureResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /procedures/{id}/status [patch]
func (h *ProcedureHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.procedures.ChangeStatus(c.Request.Context(), c.Param("id"), entities.ProcedureStatus(payload.ResolveStatus()))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProcedure(updated))
}

// AllowedTransitions godoc
// @Summary      Statuses reachable from the current one
// @Tags         procedures
// @Produce      json
// @Param        id   path      string  true  "Procedure ID"
// @Success      200  {object}  response.TransitionsResponse
// @Router       /procedures/{id}/transitions [get]
func (h *ProcedureHandler) AllowedTransitions(c *gin.Context) {
	id := c.Param("id")
	allowed, err := h.procedures.AllowedTransitions(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransitions(id, allowed))
}

// UpdateProgress godoc
// @Summary      Adjust (delta) or set (progress) the completion percentage
// @Tags         procedures
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Procedure ID"
// @Param        payload  body      request.ProgressRequest  true  "Exactly one of delta or progress"
// @Success      200      {object}  response.ProcedureResponse
// @Router       /procedures/{id}/progress [patch]
func (h *ProcedureHandler) UpdateProgress(c *gin.Context) {
	var payload request.ProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var (
		updated entities.Procedure
		err     error
	)
	if payload.Delta != nil {
		updated, err = h.procedures.AdjustProgress(c.Request.Context(), c.Param("id"), *payload.Delta)
	} else {
		updated, err = h.procedures.SetProgress(c.Request.Context(), c.Param("id"), *payload.Progress)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProcedure(updated))
}

// SetSemaphore godoc
// @Summary      Set or clear the manual traffic-light flag
// @Tags         procedures
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Procedure ID"
// @Param        payload  body      request.SemaphoreRequest  true  "Semaphore, null clears it"
// @Success      200      {object}  response.ProcedureResponse
// @Router       /procedures/{id}/semaphore [patch]
func (h *ProcedureHandler) SetSemaphore(c *gin.Context) {
	var payload request.SemaphoreRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.procedures.SetSemaphore(c.Request.Context(), c.Param("id"), payload.ResolveSemaphore())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProcedure(updated))
}

// Signals godoc
// @Summary      Derived attention signals of a procedure
// @Tags         procedures
// @Produce      json
// @Param        id   path      string  true  "Procedure ID"
// @Success      200  {object}  lifecycle.ProcedureSignals
// @Router       /procedures/{id}/signals [get]
func (h *ProcedureHandler) Signals(c *gin.Context) {
	signals, err := h.attention.ProcedureSignals(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, signals)
}

// DeleteProcedure godoc
// @Summary      Send a procedure to the recycle bin
// @Tags         procedures
// @Produce      json
// @Param        id   path      string  true  "Procedure ID"
// @Success      200  {object}  response.CascadeResponse
// @Router       /procedures/{id} [delete]
func (h *ProcedureHandler) DeleteProcedure(c *gin.Context) {
	softDelete(c, h.softDelete, entities.EntityKindProcedure)
}
