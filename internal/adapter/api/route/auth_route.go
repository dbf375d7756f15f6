package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)

		// Não requer autenticação pois usa o próprio token
		authRouter.POST("/refresh-token", authController.RefreshToken)

		authRouter.GET("/me", auth.JWTAuthMiddleware(jwtService), authController.Me)
	}
}
