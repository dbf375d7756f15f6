package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/loja-virtual/internal/adapter/api/dto"
	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
	"github.com/hugohenrick/loja-virtual/internal/service"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	authService *service.AuthService
	jwtService  *auth.JWTService
	logger      logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(authService *service.AuthService, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register cadastra um novo cliente
// @Summary Cadastrar cliente
// @Description Cria o usuário e o perfil de cliente em uma única transação
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Dados do cadastro"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if !bindJSON(ctx, &request) {
		return
	}

	u, p, err := c.authService.Register(ctx.Request.Context(), service.RegisterInput{
		Username:   request.Username,
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		Email:      request.Email,
		Password:   request.Password,
		NationalID: request.NationalID,
		Address:    request.Address,
		Subscribed: request.Subscribed,
		ImageURL:   request.ImageURL,
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao cadastrar usuário", err)
		return
	}

	c.logger.Info("usuário cadastrado", "user_id", u.ID, "username", u.Username)
	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u, p))
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if !bindJSON(ctx, &request) {
		return
	}

	u, err := c.authService.Authenticate(ctx.Request.Context(), request.Username, request.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
		return
	case errors.Is(err, service.ErrInactiveUser):
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Usuário inativo", "Sua conta está desativada"))
		return
	case err != nil:
		respondError(ctx, c.logger, "erro ao autenticar usuário", err)
		return
	}

	c.respondWithToken(ctx, u)
}

// RefreshToken renova um token JWT
// @Summary Renova um token JWT
// @Description Emite um novo token a partir de um token válido ou expirado há no máximo JWT_REFRESH_GRACE_HOURS
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a ser renovado"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/refresh-token [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if !bindJSON(ctx, &request) {
		return
	}

	claims, err := c.jwtService.ValidateRefreshToken(request.RefreshToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
		return
	}

	// Buscar o usuário para ter informações atualizadas
	u, _, err := c.authService.Me(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Usuário não encontrado", "O usuário associado ao token não existe mais"))
			return
		}
		respondError(ctx, c.logger, "erro ao buscar usuário", err)
		return
	}
	if !u.IsActive() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Usuário inativo", "Sua conta está desativada"))
		return
	}

	c.respondWithToken(ctx, u)
}

// Me retorna informações do usuário atual
// @Summary Retorna informações do usuário atual
// @Description Retorna o usuário autenticado e o perfil de cliente
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	identity, ok := auth.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Não autenticado", ""))
		return
	}

	u, p, err := c.authService.Me(ctx.Request.Context(), identity.UserID)
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar usuário", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u, p))
}

func (c *AuthController) respondWithToken(ctx *gin.Context, u *user.User) {
	token, expiresAt, err := c.jwtService.GenerateToken(u.ID, u.Username, string(u.Role))
	if err != nil {
		respondError(ctx, c.logger, "erro ao gerar token", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(u, nil),
		AccessToken:  token,
		RefreshToken: token,
		ExpiresAt:    expiresAt,
	})
}
