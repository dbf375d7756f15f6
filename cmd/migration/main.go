package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/loja-virtual/internal/config"
	"github.com/hugohenrick/loja-virtual/internal/infrastructure/database"
)

func main() {
	down := flag.Int("down", 0, "número de migrações a desfazer (0 aplica as pendentes)")
	flag.Parse()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}
	url := dbConfig.ConnectionString()

	if *down > 0 {
		version, err := database.RollbackMigrations(url, *down)
		if err != nil {
			log.Fatalf("Erro ao desfazer migrações: %v", err)
		}
		log.Printf("%d migração(ões) desfeita(s); versão atual: %d", *down, version)
		return
	}

	version, err := database.RunMigrations(url)
	if err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Printf("Migrações executadas com sucesso! Versão atual: %d", version)
}
