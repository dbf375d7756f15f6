package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-virtual/internal/service"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

// CatalogController atende a vitrine da loja
type CatalogController struct {
	catalog *service.CatalogService
	logger  logger.Logger
}

// NewCatalogController cria uma nova instância de CatalogController
func NewCatalogController(catalog *service.CatalogService, logger logger.Logger) *CatalogController {
	return &CatalogController{
		catalog: catalog,
		logger:  logger,
	}
}

// Search lista os produtos da vitrine
// @Summary Listar produtos
// @Description Lista os produtos ordenados por nome; q filtra por trecho do nome. Os preços consideram a assinatura do usuário autenticado.
// @Tags catalog
// @Produce json
// @Param q query string false "Trecho do nome"
// @Success 200 {array} dto.CatalogProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /catalog/products [get]
func (c *CatalogController) Search(ctx *gin.Context) {
	infos, err := c.catalog.Search(ctx.Request.Context(), ctx.Query("q"), auth.CurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produtos", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatalogProductResponses(infos))
}

// Get retorna a ficha de um produto
// @Summary Ficha do produto
// @Description Retorna preços, etiquetas e disponibilidade de um produto
// @Tags catalog
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} dto.CatalogProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /catalog/products/{id} [get]
func (c *CatalogController) Get(ctx *gin.Context) {
	id, ok := int64Param(ctx, "id")
	if !ok {
		return
	}

	info, err := c.catalog.ProductInfo(ctx.Request.Context(), id, auth.CurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produto", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatalogProductResponse(info))
}

// Stock retorna a disponibilidade atual de um produto
// @Summary Disponibilidade do produto
// @Description Conta as unidades não vendidas no momento da consulta
// @Tags catalog
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /catalog/products/{id}/stock [get]
func (c *CatalogController) Stock(ctx *gin.Context) {
	id, ok := int64Param(ctx, "id")
	if !ok {
		return
	}

	availability, err := c.catalog.ResolveStock(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, c.logger, "erro ao consultar estoque", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

// Categories lista as categorias
// @Summary Listar categorias
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /catalog/categories [get]
func (c *CatalogController) Categories(ctx *gin.Context) {
	categories, err := c.catalog.Categories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar categorias", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// ProductsByCategory lista os produtos de uma categoria
// @Summary Produtos por categoria
// @Tags catalog
// @Produce json
// @Param id path int true "ID da categoria"
// @Success 200 {array} dto.CategoryProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /catalog/categories/{id}/products [get]
func (c *CatalogController) ProductsByCategory(ctx *gin.Context) {
	id, ok := int64Param(ctx, "id")
	if !ok {
		return
	}

	products, err := c.catalog.ProductsByCategory(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar produtos da categoria", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryProductResponses(products))
}
