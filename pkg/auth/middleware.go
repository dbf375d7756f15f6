package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
)

var errMissingHeader = errors.New("o cabeçalho Authorization não foi fornecido")

// JWTAuthMiddleware cria um middleware que exige um token JWT válido
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, jwtService)
		if err != nil {
			message := "Token inválido"
			switch {
			case errors.Is(err, errMissingHeader):
				message = "Autenticação requerida"
			case errors.Is(err, ErrExpiredToken):
				message = "Token expirado"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		// Armazenar as claims no contexto
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalJWTAuthMiddleware identifica o usuário quando há token válido e
// segue como anônimo nos demais casos
func OptionalJWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := authenticate(c, jwtService); err == nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// RoleAuthMiddleware cria um middleware para verificação de papel/função do usuário
func RoleAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"",
			))
			return
		}

		for _, r := range roles {
			if identity.Role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			http.StatusForbidden,
			"Acesso negado",
			"Você não tem permissão para acessar este recurso",
		))
	}
}

func authenticate(c *gin.Context, jwtService *JWTService) (*JWTClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errMissingHeader
	}

	// Verificar o formato "Bearer <token>"
	tokenParts := strings.Fields(authHeader)
	if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
		return nil, ErrInvalidToken
	}

	return jwtService.ValidateToken(tokenParts[1])
}
