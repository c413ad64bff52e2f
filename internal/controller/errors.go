package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lshigami/exam-portal/internal/dto"
	"github.com/lshigami/exam-portal/internal/service"
)

// WriteError converts a service error into the JSON error envelope. Domain
// sentinels map to client statuses; anything else is an internal error and
// its detail stays out of the response.
func WriteError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrNotAuthorized),
		errors.Is(err, service.ErrAlreadyTaken):
		ctx.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}
