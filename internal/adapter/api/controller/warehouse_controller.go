package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-virtual/internal/service"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

// WarehouseController gerencia a manutenção do estoque
type WarehouseController struct {
	warehouse *service.WarehouseService
	logger    logger.Logger
}

// NewWarehouseController cria uma nova instância de WarehouseController
func NewWarehouseController(warehouse *service.WarehouseService, logger logger.Logger) *WarehouseController {
	return &WarehouseController{
		warehouse: warehouse,
		logger:    logger,
	}
}

// List lista as unidades do estoque
// @Summary Listar estoque
// @Tags admin-warehouse
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.UnitResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/warehouse [get]
func (c *WarehouseController) List(ctx *gin.Context) {
	listings, err := c.warehouse.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar estoque", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUnitResponses(listings))
}

// AddUnits inclui unidades de um produto no estoque
// @Summary Incluir unidades
// @Tags admin-warehouse
// @Accept json
// @Produce json
// @Security Bearer
// @Param units body dto.AddUnitsRequest true "Produto e quantidade"
// @Success 201 {object} dto.AddUnitsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/warehouse [post]
func (c *WarehouseController) AddUnits(ctx *gin.Context) {
	var request dto.AddUnitsRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := c.warehouse.AddUnits(ctx.Request.Context(), request.ProductID, request.Quantity)
	if err != nil {
		respondError(ctx, c.logger, "erro ao incluir unidades", err)
		return
	}

	ids := make([]int64, 0, len(result.Units))
	for _, u := range result.Units {
		ids = append(ids, u.ID)
	}

	c.logger.Info("unidades incluídas no estoque", "product_id", request.ProductID, "quantity", len(ids))
	ctx.JSON(http.StatusCreated, dto.AddUnitsResponse{Message: result.Message, UnitIDs: ids})
}

// Delete remove uma unidade do estoque
// @Summary Remover unidade
// @Description Unidades que já constam em boletas não podem ser removidas
// @Tags admin-warehouse
// @Produce json
// @Security Bearer
// @Param id path int true "ID da unidade"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/warehouse/{id} [delete]
func (c *WarehouseController) Delete(ctx *gin.Context) {
	id, ok := int64Param(ctx, "id")
	if !ok {
		return
	}

	if err := c.warehouse.DeleteUnit(ctx.Request.Context(), id); err != nil {
		respondError(ctx, c.logger, "erro ao remover unidade", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
