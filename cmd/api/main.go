package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/loja-virtual/internal/config"
	"github.com/hugohenrick/loja-virtual/pkg/logger"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	zl, err := logger.NewLogger(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg, zl)
	if err != nil {
		zl.Error("erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Seed(ctx); err != nil {
		zl.Error("erro na carga inicial", "error", err)
		os.Exit(1)
	}

	app.SetupRoutes("/api/v1")

	// Iniciar o servidor
	if err := app.Start(ctx); err != nil {
		zl.Error("erro no servidor", "error", err)
		os.Exit(1)
	}
}
