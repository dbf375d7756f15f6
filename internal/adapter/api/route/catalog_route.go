package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
)

// SetupCatalogRoutes configura as rotas da vitrine; o token é opcional e só
// altera os preços exibidos para assinantes
func SetupCatalogRoutes(router *gin.RouterGroup, catalogController *controller.CatalogController, jwtService *auth.JWTService) {
	catalogRouter := router.Group("/catalog")
	{
		products := catalogRouter.Group("/products")
		products.Use(auth.OptionalJWTAuthMiddleware(jwtService))
		{
			products.GET("", catalogController.Search)
			products.GET("/:id", catalogController.Get)
			products.GET("/:id/stock", catalogController.Stock)
		}

		catalogRouter.GET("/categories", catalogController.Categories)
		catalogRouter.GET("/categories/:id/products", catalogController.ProductsByCategory)
	}
}
