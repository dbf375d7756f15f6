package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

// Pinger verifica se o armazenamento está acessível
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController informa o estado da API
type HealthController struct {
	storage string
	pinger  Pinger
	logger  logger.Logger
}

// NewHealthController cria uma nova instância de HealthController; pinger pode ser nil
func NewHealthController(storage string, pinger Pinger, logger logger.Logger) *HealthController {
	return &HealthController{
		storage: storage,
		pinger:  pinger,
		logger:  logger,
	}
}

// Check verifica a saúde da API
// @Summary Verificar saúde
// @Description Retorna o estado da API e do armazenamento
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	if c.pinger != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.pinger.Ping(pingCtx); err != nil {
			c.logger.Warn("armazenamento indisponível", "storage", c.storage, "error", err)
			ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Storage: c.storage})
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Storage: c.storage})
}
