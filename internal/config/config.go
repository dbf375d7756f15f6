package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Drivers de armazenamento suportados
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var (
	ErrMissingJWTKey = errors.New("chave secreta JWT não configurada")
	ErrInvalidDriver = errors.New("STORE_DRIVER deve ser postgres ou memory")
	ErrInvalidNumber = errors.New("valor numérico inválido")
)

// DatabaseConfig contém as configurações para conexão com o PostgreSQL
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
	AutoMigrate     bool
}

// ConnectionString retorna a string de conexão para o PostgreSQL
func (c DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}
	return u.String()
}

// JWTConfig contém as configurações dos tokens de acesso
type JWTConfig struct {
	SecretKey    string
	Expiration   time.Duration
	RefreshGrace time.Duration
}

// TLSConfig aponta para o certificado PKCS#12 usado pelo servidor HTTPS
type TLSConfig struct {
	P12File     string
	P12Password string
}

// Enabled informa se o servidor deve atender em HTTPS
func (c TLSConfig) Enabled() bool {
	return c.P12File != ""
}

// AdminConfig descreve o administrador criado na inicialização, se ainda não existir
type AdminConfig struct {
	Username string
	Password string
	Email    string
}

// Config reúne toda a configuração da aplicação
type Config struct {
	HTTPPort           string
	GinMode            string
	AppEnv             string
	LogLevel           string
	StoreDriver        string
	StoreTimezone      string
	Location           *time.Location
	CORSAllowedOrigins []string
	SeedDemoData       bool
	Database           DatabaseConfig
	JWT                JWTConfig
	TLS                TLSConfig
	Admin              AdminConfig
}

// IsDevelopment informa se a aplicação roda em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load lê a configuração das variáveis de ambiente
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", DriverPostgres)),
		StoreTimezone:      getEnv("STORE_TIMEZONE", "America/Santiago"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		TLS: TLSConfig{
			P12File:     os.Getenv("TLS_P12_FILE"),
			P12Password: os.Getenv("TLS_P12_PASSWORD"),
		},
		Admin: AdminConfig{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
			Email:    getEnv("ADMIN_EMAIL", "admin@loja.local"),
		},
	}

	if cfg.StoreDriver != DriverPostgres && cfg.StoreDriver != DriverMemory {
		return nil, ErrInvalidDriver
	}

	loc, err := time.LoadLocation(cfg.StoreTimezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", cfg.StoreTimezone, err)
	}
	cfg.Location = loc

	if cfg.SeedDemoData, err = getBool("SEED_DEMO_DATA", false); err != nil {
		return nil, err
	}

	if cfg.Database, err = LoadDatabase(); err != nil {
		return nil, err
	}

	if cfg.JWT, err = loadJWT(cfg.IsDevelopment()); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase lê apenas a configuração do banco de dados
func LoadDatabase() (DatabaseConfig, error) {
	db := DatabaseConfig{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     getEnv("DB_HOST", "localhost"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		Name:     getEnv("DB_NAME", "loja_virtual"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	port, err := getInt("DB_PORT", 5432)
	if err != nil {
		return db, err
	}
	maxConns, err := getInt("DB_MAX_CONNECTIONS", 10)
	if err != nil {
		return db, err
	}
	minConns, err := getInt("DB_MIN_CONNECTIONS", 2)
	if err != nil {
		return db, err
	}
	maxLifetime, err := getInt("DB_MAX_LIFETIME", 300)
	if err != nil {
		return db, err
	}
	autoMigrate, err := getBool("DB_AUTO_MIGRATE", true)
	if err != nil {
		return db, err
	}

	db.Port = port
	db.MaxConnections = int32(maxConns)
	db.MinConnections = int32(minConns)
	db.MaxConnLifetime = time.Duration(maxLifetime) * time.Second
	db.AutoMigrate = autoMigrate
	return db, nil
}

func loadJWT(development bool) (JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		if !development {
			return JWTConfig{}, ErrMissingJWTKey
		}
		secret = "loja-virtual-dev-secret"
	}

	// Duração padrão de 24 horas se não for configurado
	hours, err := getInt("JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return JWTConfig{}, err
	}

	// Tokens expirados podem ser renovados por até 7 dias
	graceHours, err := getInt("JWT_REFRESH_GRACE_HOURS", 168)
	if err != nil {
		return JWTConfig{}, err
	}

	return JWTConfig{
		SecretKey:    secret,
		Expiration:   time.Duration(hours) * time.Hour,
		RefreshGrace: time.Duration(graceHours) * time.Hour,
	}, nil
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, ErrInvalidNumber)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: valor booleano inválido %q", key, value)
	}
	return b, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
