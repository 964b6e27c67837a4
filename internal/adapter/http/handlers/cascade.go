package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "gestion_tramites/internal/adapter/http/dto/response"
	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase"
)

// writeCascade answers a soft-delete or restore. A partial cascade still
// reports the root result, with 207 and the error envelope embedded.
func writeCascade(c *gin.Context, res usecase.CascadeResult, err error) {
	if err == nil {
		c.JSON(http.StatusOK, response.FromCascade(res, nil))
		return
	}
	if errors.Is(err, usecase.ErrPartialCascade) {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, response.FromCascade(res, appErr))
		return
	}
	writeError(c, err)
}

func softDelete(c *gin.Context, uc usecase.ISoftDeleteUseCase, kind entities.EntityKind) {
	res, err := uc.SoftDelete(c.Request.Context(), kind, c.Param("id"))
	writeCascade(c, res, err)
}
