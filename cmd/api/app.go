package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/loja-virtual/docs"
	"github.com/hugohenrick/loja-virtual/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-virtual/internal/adapter/api/route"
	"github.com/hugohenrick/loja-virtual/internal/adapter/repository"
	"github.com/hugohenrick/loja-virtual/internal/adapter/repository/memory"
	"github.com/hugohenrick/loja-virtual/internal/config"
	"github.com/hugohenrick/loja-virtual/internal/domain/cart"
	"github.com/hugohenrick/loja-virtual/internal/domain/invoice"
	"github.com/hugohenrick/loja-virtual/internal/domain/product"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
	"github.com/hugohenrick/loja-virtual/internal/domain/warehouse"
	"github.com/hugohenrick/loja-virtual/internal/infrastructure/database"
	"github.com/hugohenrick/loja-virtual/internal/service"
	"github.com/hugohenrick/loja-virtual/pkg/auth"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
	"github.com/hugohenrick/loja-virtual/pkg/middleware"
	"github.com/hugohenrick/loja-virtual/pkg/pkcs12"
)

// storage reúne os repositórios de um driver de armazenamento
type storage struct {
	tx         service.Transactor
	pinger     controller.Pinger
	products   product.Repository
	categories product.CategoryRepository
	units      warehouse.Repository
	carts      cart.Repository
	invoices   invoice.Repository
	users      user.Repository
	profiles   user.ProfileRepository
}

func newPostgresStorage(db *database.PostgresDB) storage {
	return storage{
		tx:         db,
		pinger:     db,
		products:   repository.NewProductRepository(db),
		categories: repository.NewCategoryRepository(db),
		units:      repository.NewWarehouseRepository(db),
		carts:      repository.NewCartRepository(db),
		invoices:   repository.NewInvoiceRepository(db),
		users:      repository.NewUserRepository(db),
		profiles:   repository.NewProfileRepository(db),
	}
}

func newMemoryStorage(store *memory.Store) storage {
	return storage{
		tx:         store,
		products:   memory.NewProductRepository(store),
		categories: memory.NewCategoryRepository(store),
		units:      memory.NewWarehouseRepository(store),
		carts:      memory.NewCartRepository(store),
		invoices:   memory.NewInvoiceRepository(store),
		users:      memory.NewUserRepository(store),
		profiles:   memory.NewProfileRepository(store),
	}
}

// App representa a aplicação e suas dependências
type App struct {
	cfg        *config.Config
	logger     logger.Logger
	router     *gin.Engine
	db         *database.PostgresDB
	jwtService *auth.JWTService

	seedService *service.SeedService

	healthController    *controller.HealthController
	authController      *controller.AuthController
	catalogController   *controller.CatalogController
	cartController      *controller.CartController
	productController   *controller.ProductController
	warehouseController *controller.WarehouseController
	salesController     *controller.SalesController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{cfg: cfg, logger: log}

	// Configurar armazenamento
	var st storage
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("usando armazenamento em memória; os dados serão perdidos ao encerrar")
		st = newMemoryStorage(memory.NewStore())
	default:
		if cfg.Database.AutoMigrate {
			version, err := database.RunMigrations(cfg.Database.ConnectionString())
			if err != nil {
				return nil, err
			}
			log.Info("migrações aplicadas", "version", version)
		}

		db, err := database.NewPostgresDB(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		app.db = db
		st = newPostgresStorage(db)
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshGrace)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.jwtService = jwtService

	// Criar serviços
	clock := service.NewClock(cfg.Location)
	catalogService := service.NewCatalogService(st.products, st.categories, st.units, st.profiles)
	cartService := service.NewCartService(st.tx, st.carts, st.products, st.users, st.profiles, st.units, st.invoices, clock)
	invoiceService := service.NewInvoiceService(st.tx, st.invoices, clock)
	productService := service.NewProductService(st.tx, st.products, st.categories)
	warehouseService := service.NewWarehouseService(st.tx, st.units, st.products)
	authService := service.NewAuthService(st.tx, st.users, st.profiles)
	app.seedService = service.NewSeedService(st.tx, st.categories, productService, warehouseService, st.users)

	// Criar controllers
	app.healthController = controller.NewHealthController(cfg.StoreDriver, st.pinger, log)
	app.authController = controller.NewAuthController(authService, jwtService, log)
	app.catalogController = controller.NewCatalogController(catalogService, log)
	app.cartController = controller.NewCartController(cartService, invoiceService, log)
	app.productController = controller.NewProductController(productService, log)
	app.warehouseController = controller.NewWarehouseController(warehouseService, log)
	app.salesController = controller.NewSalesController(invoiceService, log)

	// Configurar router com modo correto
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(log))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	app.router = router

	return app, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}

// Seed cria o administrador e carrega os dados de demonstração conforme a configuração
func (a *App) Seed(ctx context.Context) error {
	admin := service.AdminAccount{
		Username: a.cfg.Admin.Username,
		Password: a.cfg.Admin.Password,
		Email:    a.cfg.Admin.Email,
	}
	if admin.Password == "" {
		admin.Username = ""
	}

	result, err := a.seedService.Run(ctx, admin, a.cfg.SeedDemoData)
	if err != nil {
		return err
	}

	a.logger.Info("carga inicial concluída",
		"admin_created", result.AdminCreated,
		"categories", result.Categories,
		"products", result.Products,
		"units", result.Units,
	)
	return nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	api.GET("/health", a.healthController.Check)

	route.SetupAuthRoutes(api, a.authController, a.jwtService)
	route.SetupCatalogRoutes(api, a.catalogController, a.jwtService)
	route.SetupCartRoutes(api, a.cartController, a.jwtService)
	route.SetupAdminRoutes(api, route.AdminControllers{
		Products:  a.productController,
		Warehouse: a.warehouseController,
		Sales:     a.salesController,
	}, a.jwtService)

	// Documentação
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Start inicia o servidor HTTP e o encerra quando ctx for cancelado
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + a.cfg.HTTPPort,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.cfg.TLS.Enabled() {
		cert, err := pkcs12.LoadTLSCertificate(a.cfg.TLS.P12File, a.cfg.TLS.P12Password)
		if err != nil {
			return fmt.Errorf("erro ao carregar certificado TLS: %w", err)
		}
		server.TLSConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", a.cfg.HTTPPort, "tls", a.cfg.TLS.Enabled(), "storage", a.cfg.StoreDriver)

		var err error
		if server.TLSConfig != nil {
			err = server.ListenAndServeTLS("", "")
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
