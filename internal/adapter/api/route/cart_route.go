package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
)

// SetupCartRoutes configura as rotas do carrinho e das compras do cliente
func SetupCartRoutes(router *gin.RouterGroup, cartController *controller.CartController, jwtService *auth.JWTService) {
	customer := router.Group("")
	customer.Use(auth.JWTAuthMiddleware(jwtService))
	customer.Use(auth.RoleAuthMiddleware(auth.RoleCustomer))
	{
		cartRouter := customer.Group("/cart")
		{
			cartRouter.GET("", cartController.View)
			cartRouter.POST("/items", cartController.AddItem)
			cartRouter.DELETE("/items/:id", cartController.RemoveItem)
			cartRouter.POST("/checkout", cartController.Checkout)
		}

		customer.GET("/purchases", cartController.Purchases)
	}
}
