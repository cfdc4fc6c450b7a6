package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"

	"gofulfill/config"
	"gofulfill/internal/pkg/database"
)

// Uso: go run ./cmd/migrate [up|down|status|version|redo|reset] [args...]
// As migrações ficam embutidas no binário (internal/pkg/database/migrations).
func main() {
	verbose := flag.Bool("v", false, "exibe o log do goose")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("goose: configuração inválida: %v\n", err)
	}
	if cfg.StorageDriver != config.StorageDriverPostgres {
		log.Fatalf("goose: migrações só se aplicam com STORAGE_DRIVER=%s\n", config.StorageDriverPostgres)
	}

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, database.DefaultPoolConfig)
	if err != nil {
		log.Fatalf("goose: failed to connect to DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: failed to close DB: %v\n", err)
		}
	}()

	if !*verbose {
		goose.SetLogger(goose.NopLogger())
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // 'up' quando nenhum comando é informado
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := database.Migrate(ctx, db, command, args...); err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("goose %s success\n", command)
}
