package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Erros específicos
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingJWTKey = errors.New("chave secreta JWT não configurada")
	ErrRefreshWindow = errors.New("prazo de renovação do token esgotado")
)

const issuer = "loja-virtual-api"

// JWTClaims representa as claims personalizadas do token JWT
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService implementa serviços relacionados a tokens JWT
type JWTService struct {
	secretKey    []byte
	expiration   time.Duration
	refreshGrace time.Duration
	now          func() time.Time
}

// NewJWTService cria uma nova instância de JWTService.
// refreshGrace é por quanto tempo após expirar um token ainda pode ser renovado;
// zero ou negativo só permite renovar tokens ainda válidos.
func NewJWTService(secretKey string, expiration, refreshGrace time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, ErrMissingJWTKey
	}
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	if refreshGrace < 0 {
		refreshGrace = 0
	}
	return &JWTService{
		secretKey:    []byte(secretKey),
		expiration:   expiration,
		refreshGrace: refreshGrace,
		now:          time.Now,
	}, nil
}

// GenerateToken gera um token JWT para o usuário, retornando também o instante de expiração
func (s *JWTService) GenerateToken(userID, username, role string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.expiration)

	claims := JWTClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID,
		},
	}

	tokenString, err := s.sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ValidateToken valida um token JWT e retorna as claims se for válido
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		// Verificar se o erro é de token expirado
		if errors.Is(err, jwt.ErrTokenExpired) {
			return claims, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// ValidateRefreshToken valida um token apresentado para renovação. Aceita
// tokens válidos e tokens expirados há no máximo o prazo de renovação.
func (s *JWTService) ValidateRefreshToken(tokenString string) (*JWTClaims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err == nil {
		return claims, nil
	}
	if !errors.Is(err, ErrExpiredToken) {
		return nil, err
	}

	if claims.Issuer != issuer || claims.UserID == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidClaims
	}
	if s.now().Sub(claims.ExpiresAt.Time) > s.refreshGrace {
		return nil, ErrRefreshWindow
	}
	return claims, nil
}

func (s *JWTService) keyFunc(token *jwt.Token) (interface{}, error) {
	// Verificar o método de assinatura
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return s.secretKey, nil
}

func (s *JWTService) sign(claims JWTClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
