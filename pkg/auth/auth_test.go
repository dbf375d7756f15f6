package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	s, err := NewJWTService("segredo-de-teste", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewJWTService: %v", err)
	}
	return s
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	s := newTestService(t)

	token, expiresAt, err := s.GenerateToken("u1", "ana", RoleCustomer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiresAt no passado: %s", expiresAt)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Username != "ana" || claims.Role != RoleCustomer || claims.ID == "" {
		t.Errorf("claims = %+v", claims)
	}

	other, _ := NewJWTService("outro-segredo", time.Hour, 24*time.Hour)
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("assinatura errada: erro = %v, want ErrInvalidToken", err)
	}
	if _, err := s.ValidateToken("lixo"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token malformado: erro = %v", err)
	}
}

func TestJWTService_ValidateRefreshToken(t *testing.T) {
	s := newTestService(t)
	issue := func(age time.Duration) string {
		t.Helper()
		s.now = func() time.Time { return time.Now().Add(-age) }
		defer func() { s.now = time.Now }()
		token, _, err := s.GenerateToken("u1", "ana", RoleAdmin)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		return token
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"válido", issue(0), nil},
		{"expirado dentro do prazo", issue(2 * time.Hour), nil},
		{"expirado fora do prazo", issue(365 * 24 * time.Hour), ErrRefreshWindow},
		{"expirado logo após o prazo", issue(time.Hour + 24*time.Hour + time.Minute), ErrRefreshWindow},
		{"malformado", "lixo", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := s.ValidateRefreshToken(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("erro = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateRefreshToken: %v", err)
			}
			if claims.UserID != "u1" || claims.Role != RoleAdmin {
				t.Errorf("claims = %+v", claims)
			}
		})
	}
}

func TestJWTService_ExpiredTokenRejectedByValidate(t *testing.T) {
	s := newTestService(t)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := s.GenerateToken("u1", "ana", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	s.now = time.Now

	if _, err := s.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("erro = %v, want ErrExpiredToken", err)
	}
}

func TestJWTService_NoGraceOnlyRefreshesValidTokens(t *testing.T) {
	s, err := NewJWTService("segredo-de-teste", time.Hour, 0)
	if err != nil {
		t.Fatalf("NewJWTService: %v", err)
	}
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, _ := s.GenerateToken("u1", "ana", RoleCustomer)
	s.now = time.Now
	valid, _, _ := s.GenerateToken("u1", "ana", RoleCustomer)

	if _, err := s.ValidateRefreshToken(expired); !errors.Is(err, ErrRefreshWindow) {
		t.Errorf("expirado sem prazo: erro = %v, want ErrRefreshWindow", err)
	}
	if _, err := s.ValidateRefreshToken(valid); err != nil {
		t.Errorf("válido: erro = %v", err)
	}
}

func TestNewJWTService_MissingKey(t *testing.T) {
	if _, err := NewJWTService("", time.Hour, 0); !errors.Is(err, ErrMissingJWTKey) {
		t.Errorf("erro = %v, want ErrMissingJWTKey", err)
	}
}

func TestMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestService(t)
	customerToken, _, _ := s.GenerateToken("u1", "ana", RoleCustomer)
	adminToken, _, _ := s.GenerateToken("u2", "admin", RoleAdmin)

	r := gin.New()
	r.GET("/public", OptionalJWTAuthMiddleware(s), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUserID(c))
	})
	r.GET("/me", JWTAuthMiddleware(s), func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		c.String(http.StatusOK, identity.Username)
	})
	r.GET("/admin", JWTAuthMiddleware(s), RoleAuthMiddleware(RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		path   string
		token  string
		status int
		body   string
	}{
		{"anonymous public", "/public", "", http.StatusOK, ""},
		{"identified public", "/public", customerToken, http.StatusOK, "u1"},
		{"bad token public", "/public", "lixo", http.StatusOK, ""},
		{"missing token", "/me", "", http.StatusUnauthorized, ""},
		{"valid token", "/me", customerToken, http.StatusOK, "ana"},
		{"customer on admin", "/admin", customerToken, http.StatusForbidden, ""},
		{"admin on admin", "/admin", adminToken, http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}
