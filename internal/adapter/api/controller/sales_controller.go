package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-virtual/internal/service"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

// SalesController gerencia as vendas no back office
type SalesController struct {
	invoices *service.InvoiceService
	logger   logger.Logger
}

// NewSalesController cria uma nova instância de SalesController
func NewSalesController(invoices *service.InvoiceService, logger logger.Logger) *SalesController {
	return &SalesController{
		invoices: invoices,
		logger:   logger,
	}
}

// List lista todas as boletas
// @Summary Listar vendas
// @Tags admin-sales
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/sales [get]
func (c *SalesController) List(ctx *gin.Context) {
	invoices, err := c.invoices.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar vendas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// Get retorna uma boleta com as linhas
// @Summary Detalhe da venda
// @Tags admin-sales
// @Produce json
// @Security Bearer
// @Param number path int true "Número da boleta"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/sales/{number} [get]
func (c *SalesController) Get(ctx *gin.Context) {
	number, ok := int64Param(ctx, "number")
	if !ok {
		return
	}

	inv, err := c.invoices.Get(ctx.Request.Context(), number)
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar venda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// ChangeStatus altera o estado de uma boleta
// @Summary Alterar estado da venda
// @Description Aceita sold, dispatched, delivered e cancelled (ou os rótulos Vendido, Despachado, Entregado, Anulado). As datas são ajustadas conforme o novo estado.
// @Tags admin-sales
// @Produce json
// @Security Bearer
// @Param number path int true "Número da boleta"
// @Param status path string true "Novo estado"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/sales/{number}/status/{status} [patch]
func (c *SalesController) ChangeStatus(ctx *gin.Context) {
	number, ok := int64Param(ctx, "number")
	if !ok {
		return
	}

	inv, err := c.invoices.ChangeStatus(ctx.Request.Context(), number, ctx.Param("status"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao alterar estado da venda", err)
		return
	}

	identity, _ := auth.CurrentIdentity(ctx)
	c.logger.Info("estado da venda alterado",
		"invoice", inv.Number,
		"status", inv.Status,
		"by", identity.Username,
	)
	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}
