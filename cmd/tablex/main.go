package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tablex/internal/config"
	"tablex/internal/logging"
	"tablex/internal/pipeline"
	"tablex/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	cmd := "run"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "run":
		run(cfg)
	case "stats":
		stats(cfg)
	default:
		usage()
		os.Exit(1)
	}
}

func run(cfg config.Config) {
	must(cfg.Validate())

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	must(err)
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("run_id", uuid.NewString()))

	var mirror pipeline.Mirror
	if cfg.SQLitePath != "" {
		db, err := storage.Open(cfg.SQLitePath)
		must(err)
		defer db.Close()
		mirror = db
		log.Info("mirroring output to sqlite", zap.String("path", cfg.SQLitePath))
	}

	fmt.Println("TableX data extraction")
	fmt.Printf("  source: %s\n", cfg.SourceDir)
	fmt.Printf("  output: %s\n", cfg.OutputDir)

	summary, err := pipeline.NewRunner(cfg, log, mirror).Run()
	must(err)

	fmt.Println("extraction complete")
	fmt.Printf("  profit analysis: %d records\n", summary.Profit)
	fmt.Printf("  product catalog: %d records\n", summary.Catalog)
	fmt.Printf("  quote queue:     %d entries\n", summary.Queue)
	fmt.Printf("  staff:           %d entries\n", summary.Staff)
	fmt.Printf("  dealers:         %d entries\n", summary.Dealers)
	fmt.Printf("  written to:      %s\n", summary.OutputDir)
}

// stats reports what the last mirrored run stored.
func stats(cfg config.Config) {
	must(cfg.Require("SQLITE_PATH", cfg.SQLitePath))

	db, err := storage.Open(cfg.SQLitePath)
	must(err)
	defer db.Close()

	for _, table := range []string{"profit_analysis", "product_catalog", "quote_queue", "staff", "dealers"} {
		n, err := db.Count(table)
		must(err)
		fmt.Printf("%-16s %d\n", table, n)
	}

	years, err := db.QueueYears()
	must(err)
	keys := make([]int, 0, len(years))
	for year := range years {
		keys = append(keys, year)
	}
	sort.Ints(keys)
	for _, year := range keys {
		fmt.Printf("queue %d: %d\n", year, years[year])
	}
}

func usage() {
	fmt.Println("usage: tablex [command]")
	fmt.Println("commands:")
	fmt.Println("  run     extract all workbooks to JSON (default)")
	fmt.Println("  stats   print row counts from the sqlite mirror (needs SQLITE_PATH)")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
