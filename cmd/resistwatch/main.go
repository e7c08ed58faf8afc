// Package main provides the resistwatch CLI entry point.
package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "resistwatch",
		Short: "Resistance scoring for public officials",
		Long: `Resistwatch scores public officials from their verified, dated actions:
time-decayed category scores, integrity metrics, and a resistance level.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newRecalcCmd(),
		newBreakdownCmd(),
		newImportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDB(databaseURL string) (*sql.DB, error) {
	url := firstNonEmpty(databaseURL, os.Getenv("DATABASE_URL"),
		"postgres://localhost:5432/resistwatch?sslmode=disable")

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
