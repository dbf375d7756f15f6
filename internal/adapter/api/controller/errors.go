package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
	"github.com/hugohenrick/loja-virtual/pkg/middleware"
)

// statusFor converte o tipo do erro no status HTTP correspondente
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrReferentialIntegrity):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError escreve a resposta de erro; erros inesperados são registrados e
// a causa interna não é exposta ao cliente
func respondError(ctx *gin.Context, log logger.Logger, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(message,
			"error", err,
			"path", ctx.Request.URL.Path,
			"request_id", middleware.GetRequestID(ctx),
		)
		ctx.JSON(status, dto.NewErrorResponse(status, message, ""))
		return
	}

	ctx.JSON(status, dto.NewErrorResponse(status, message, apperr.Message(err)))
}

// int64Param lê um parâmetro numérico da rota; responde 400 quando inválido
func int64Param(ctx *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || value <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, name+" inválido", ctx.Param(name)))
		return 0, false
	}
	return value, true
}

func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return false
	}
	return true
}
