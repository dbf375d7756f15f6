package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-virtual/internal/service"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

// CartController gerencia o carrinho do cliente autenticado
type CartController struct {
	cart     *service.CartService
	invoices *service.InvoiceService
	logger   logger.Logger
}

// NewCartController cria uma nova instância de CartController
func NewCartController(cart *service.CartService, invoices *service.InvoiceService, logger logger.Logger) *CartController {
	return &CartController{
		cart:     cart,
		invoices: invoices,
		logger:   logger,
	}
}

// View retorna o carrinho
// @Summary Ver carrinho
// @Description Retorna as linhas do carrinho com o valor líquido, o IVA e o total
// @Tags cart
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cart [get]
func (c *CartController) View(ctx *gin.Context) {
	view, err := c.cart.View(ctx.Request.Context(), auth.CurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao carregar carrinho", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(view))
}

// AddItem inclui um produto no carrinho
// @Summary Incluir produto no carrinho
// @Description Congela o preço atual do produto em uma nova linha do carrinho
// @Tags cart
// @Accept json
// @Produce json
// @Security Bearer
// @Param item body dto.AddCartItemRequest true "Produto"
// @Success 201 {object} cart.Line
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cart/items [post]
func (c *CartController) AddItem(ctx *gin.Context) {
	var request dto.AddCartItemRequest
	if !bindJSON(ctx, &request) {
		return
	}

	line, err := c.cart.AddProduct(ctx.Request.Context(), auth.CurrentUserID(ctx), request.ProductID)
	if err != nil {
		respondError(ctx, c.logger, "erro ao incluir produto no carrinho", err)
		return
	}

	ctx.JSON(http.StatusCreated, line)
}

// RemoveItem remove uma linha do carrinho
// @Summary Remover linha do carrinho
// @Tags cart
// @Produce json
// @Security Bearer
// @Param id path int true "ID da linha"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cart/items/{id} [delete]
func (c *CartController) RemoveItem(ctx *gin.Context) {
	id, ok := int64Param(ctx, "id")
	if !ok {
		return
	}

	if err := c.cart.RemoveLine(ctx.Request.Context(), auth.CurrentUserID(ctx), id); err != nil {
		respondError(ctx, c.logger, "erro ao remover linha do carrinho", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Checkout fecha a compra
// @Summary Finalizar compra
// @Description Reserva uma unidade do estoque por linha, emite a boleta e esvazia o carrinho
// @Tags cart
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cart/checkout [post]
func (c *CartController) Checkout(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)

	inv, err := c.cart.Checkout(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, c.logger, "erro ao finalizar compra", err)
		return
	}

	c.logger.Info("compra finalizada", "user_id", userID, "invoice", inv.Number, "total", inv.Total)
	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// Purchases lista as compras do cliente
// @Summary Minhas compras
// @Description Lista as boletas do usuário autenticado
// @Tags cart
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [get]
func (c *CartController) Purchases(ctx *gin.Context) {
	invoices, err := c.invoices.MyPurchases(ctx.Request.Context(), auth.CurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar compras", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}
