package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

func TestRequestIDAndAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)

	r := gin.New()
	r.Use(RequestID(), AccessLog(logger.NewFromZap(zap.New(core))))
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFromContext(c.Request.Context()))
	})
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	const given = "6f1c2d4e-3b5a-4c7d-9e8f-0a1b2c3d4e5f"
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, given)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != given {
		t.Errorf("cabeçalho = %q, want %q", got, given)
	}
	if w.Body.String() != given {
		t.Errorf("id no contexto = %q", w.Body.String())
	}

	// id inválido é substituído
	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "nao-e-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got == "" || got == "nao-e-uuid" {
		t.Errorf("cabeçalho = %q, deveria ser gerado", got)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("%d entradas de log, want 2", len(entries))
	}
	first := entries[0].ContextMap()
	if entries[0].Level != zap.InfoLevel || first["path"] != "/ok" || first["request_id"] != given {
		t.Errorf("primeira entrada = %v %v", entries[0].Level, first)
	}
	if entries[1].Level != zap.WarnLevel || entries[1].ContextMap()["status"] != int64(http.StatusNotFound) {
		t.Errorf("segunda entrada = %v %v", entries[1].Level, entries[1].ContextMap())
	}
}
