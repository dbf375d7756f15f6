package auth

import (
	"github.com/gin-gonic/gin"
)

// Chaves usadas no contexto do gin
const (
	contextUserID   = "user_id"
	contextUsername = "username"
	contextUserRole = "user_role"
)

// Papéis reconhecidos pelos middlewares
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Identity é o usuário autenticado da requisição
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin informa se a identidade é de um administrador
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func setIdentity(c *gin.Context, claims *JWTClaims) {
	c.Set(contextUserID, claims.UserID)
	c.Set(contextUsername, claims.Username)
	c.Set(contextUserRole, claims.Role)
}

// CurrentIdentity obtém o usuário autenticado do contexto; ok é falso em requisições anônimas
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	userID := c.GetString(contextUserID)
	if userID == "" {
		return Identity{}, false
	}
	return Identity{
		UserID:   userID,
		Username: c.GetString(contextUsername),
		Role:     c.GetString(contextUserRole),
	}, true
}

// CurrentUserID retorna o id do usuário autenticado ou vazio para anônimos
func CurrentUserID(c *gin.Context) string {
	return c.GetString(contextUserID)
}
