// CLI tool to apply the embedded SQL migrations in db/migrations.
// golang-migrate tracks applied versions in schema_migrations.
// Usage: go run ./cmd/migrate [-direction up|down]
package main

import (
	"flag"
	"fmt"
	"os"

	"lg/macro-plan-api/config"
	"lg/macro-plan-api/db/migrate"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := migrate.Run(cfg.DatabaseURL, *direction); err != nil {
		fmt.Fprintf(os.Stderr, "Error running migrations: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Migrations applied (%s).\n", *direction)
}
