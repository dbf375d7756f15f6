package config

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("STORE_TIMEZONE", "UTC")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDriver != DriverPostgres {
		t.Errorf("StoreDriver = %q", cfg.StoreDriver)
	}
	if cfg.JWT.SecretKey == "" || cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("JWT = %+v", cfg.JWT)
	}
	if cfg.Location.String() != "UTC" {
		t.Errorf("Location = %s", cfg.Location)
	}
	if cfg.TLS.Enabled() {
		t.Error("TLS não deveria estar habilitado sem TLS_P12_FILE")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("STORE_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.cl, https://b.cl ,")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "loja")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDriver != DriverMemory {
		t.Errorf("StoreDriver = %q", cfg.StoreDriver)
	}
	if cfg.JWT.Expiration != 2*time.Hour {
		t.Errorf("Expiration = %s", cfg.JWT.Expiration)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.cl" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	want := "postgres://postgres:postgres@db:6543/loja?sslmode=disable"
	if got := cfg.Database.ConnectionString(); got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}
}

func TestDatabaseConfig_ConnectionStringEscapesCredentials(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "loja:app",
		Password: "p@ss/w#rd:?%",
		Name:     "loja_virtual",
		SSLMode:  "disable",
	}

	parsed, err := pgconn.ParseConfig(cfg.ConnectionString())
	if err != nil {
		t.Fatalf("ParseConfig(%q): %v", cfg.ConnectionString(), err)
	}
	if parsed.Host != "db" || parsed.Port != 5432 {
		t.Errorf("host = %s:%d, want db:5432", parsed.Host, parsed.Port)
	}
	if parsed.User != cfg.User || parsed.Password != cfg.Password {
		t.Errorf("credenciais = %q/%q, want %q/%q", parsed.User, parsed.Password, cfg.User, cfg.Password)
	}
	if parsed.Database != "loja_virtual" {
		t.Errorf("Database = %q", parsed.Database)
	}
}

func TestDatabaseConfig_ConnectionStringPrefersURL(t *testing.T) {
	cfg := DatabaseConfig{URL: "postgres://u:p@outro:5432/x", Host: "db", Port: 5432}
	if got := cfg.ConnectionString(); got != cfg.URL {
		t.Errorf("ConnectionString() = %q, want %q", got, cfg.URL)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"missing jwt key outside development", map[string]string{"APP_ENV": "production", "JWT_SECRET_KEY": ""}, ErrMissingJWTKey},
		{"unknown driver", map[string]string{"STORE_DRIVER": "mongo"}, ErrInvalidDriver},
		{"bad port", map[string]string{"DB_PORT": "abc"}, ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "development")
			t.Setenv("STORE_TIMEZONE", "UTC")
			t.Setenv("STORE_DRIVER", "")
			t.Setenv("DB_PORT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); !errors.Is(err, tt.want) {
				t.Errorf("erro = %v, want %v", err, tt.want)
			}
		})
	}
}
