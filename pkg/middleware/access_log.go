package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

// AccessLog registra cada requisição atendida
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		keysAndValues := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
			"request_id", GetRequestID(c),
		}
		if len(c.Errors) > 0 {
			keysAndValues = append(keysAndValues, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("requisição com erro", keysAndValues...)
		case status >= 400:
			log.Warn("requisição rejeitada", keysAndValues...)
		default:
			log.Info("requisição atendida", keysAndValues...)
		}
	}
}
