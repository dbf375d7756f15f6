package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-virtual/internal/service"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

// ProductController gerencia a manutenção de produtos
type ProductController struct {
	products *service.ProductService
	logger   logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(products *service.ProductService, logger logger.Logger) *ProductController {
	return &ProductController{
		products: products,
		logger:   logger,
	}
}

// List lista os produtos ordenados por id
// @Summary Listar produtos (manutenção)
// @Tags admin-products
// @Produce json
// @Security Bearer
// @Success 200 {array} product.Product
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/products [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.products.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar produtos", err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// Create cria um novo produto
// @Summary Criar produto
// @Tags admin-products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body dto.CreateProductRequest true "Dados do produto"
// @Success 201 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.CreateProductRequest
	if !bindJSON(ctx, &request) {
		return
	}

	p, err := c.products.Create(ctx.Request.Context(), request.ID, request.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar produto", err)
		return
	}

	c.logger.Info("produto criado", "product_id", p.ID, "name", p.Name)
	ctx.JSON(http.StatusCreated, p)
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Tags admin-products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id, ok := int64Param(ctx, "id")
	if !ok {
		return
	}

	var request dto.ProductRequest
	if !bindJSON(ctx, &request) {
		return
	}

	p, err := c.products.Update(ctx.Request.Context(), id, request.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao atualizar produto", err)
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// Delete remove um produto
// @Summary Remover produto
// @Description Produtos com unidades no estoque, em carrinhos ou em boletas não podem ser removidos
// @Tags admin-products
// @Produce json
// @Security Bearer
// @Param id path int true "ID do produto"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id, ok := int64Param(ctx, "id")
	if !ok {
		return
	}

	if err := c.products.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, c.logger, "erro ao remover produto", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
