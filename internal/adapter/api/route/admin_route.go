package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
)

// AdminControllers agrupa os controllers do back office
type AdminControllers struct {
	Products  *controller.ProductController
	Warehouse *controller.WarehouseController
	Sales     *controller.SalesController
}

// SetupAdminRoutes configura as rotas de manutenção, restritas a administradores
func SetupAdminRoutes(router *gin.RouterGroup, c AdminControllers, jwtService *auth.JWTService) {
	adminRouter := router.Group("/admin")
	adminRouter.Use(auth.JWTAuthMiddleware(jwtService))
	adminRouter.Use(auth.RoleAuthMiddleware(auth.RoleAdmin))
	{
		products := adminRouter.Group("/products")
		{
			products.GET("", c.Products.List)
			products.POST("", c.Products.Create)
			products.PUT("/:id", c.Products.Update)
			products.DELETE("/:id", c.Products.Delete)
		}

		warehouse := adminRouter.Group("/warehouse")
		{
			warehouse.GET("", c.Warehouse.List)
			warehouse.POST("", c.Warehouse.AddUnits)
			warehouse.DELETE("/:id", c.Warehouse.Delete)
		}

		sales := adminRouter.Group("/sales")
		{
			sales.GET("", c.Sales.List)
			sales.GET("/:number", c.Sales.Get)
			sales.PATCH("/:number/status/:status", c.Sales.ChangeStatus)
		}
	}
}
