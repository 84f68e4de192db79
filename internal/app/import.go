package app

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Michwuanquana/vybav.it-sub000/internal/cli"
	"github.com/Michwuanquana/vybav.it-sub000/internal/config"
	"github.com/Michwuanquana/vybav.it-sub000/internal/db"
	"github.com/Michwuanquana/vybav.it-sub000/internal/dedup"
	"github.com/Michwuanquana/vybav.it-sub000/internal/importer"
	"github.com/Michwuanquana/vybav.it-sub000/internal/logging"
	"github.com/Michwuanquana/vybav.it-sub000/internal/rowparser"
)

func runImport(args []string) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	file := fs.String("file", "", "Path to the vendor CSV export")
	vendorName := fs.String("vendor", "", "Vendor shape: ikea, jysk or clean")
	limit := fs.Int("limit", 0, "Process at most N rows, 0 means all")
	dryRun := fs.Bool("dry-run", false, "Run the full pipeline without writing products")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if strings.TrimSpace(*file) == "" {
		fmt.Fprintln(os.Stderr, "Missing required flag: -file")
		return 2
	}
	vendor, err := rowparser.ParseVendor(*vendorName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -vendor: %v\n", err)
		return 2
	}
	if *limit < 0 {
		fmt.Fprintln(os.Stderr, "-limit must be >= 0")
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	rows, err := readCSVRows(*file)
	if err != nil {
		logger.Error().Err(err).Str("file", *file).Msg("reading vendor export failed")
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", *file, err)
		return 1
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		return 1
	}
	defer pool.Close()

	runID, err := pool.StartImportRun(ctx, string(vendor), *dryRun)
	if err != nil {
		logger.Error().Err(err).Msg("opening import run ledger failed")
		fmt.Fprintf(os.Stderr, "Failed to open import run: %v\n", err)
		return 1
	}

	logger.Info().
		Int64("run_id", runID).
		Str("vendor", string(vendor)).
		Str("file", *file).
		Int("rows", len(rows)).
		Int("limit", *limit).
		Bool("dry_run", *dryRun).
		Msg("import run started")

	imp := importer.New(
		rowparser.New(vendor, cfg.AffiliateBaseURL),
		pool,
		logger,
		importer.Options{DryRun: *dryRun, RowLimit: *limit},
	)

	stats, runErr := imp.Run(ctx, rows)

	if err := pool.FinishImportRun(ctx, runID, db.RunCounters{
		Total:            stats.Total,
		Imported:         stats.Imported,
		Skipped:          stats.Skipped,
		ValidationErrors: stats.ValidationErrors,
		Duplicates:       stats.Duplicates,
		Warnings:         stats.Warnings,
	}, runErr); err != nil {
		logger.Error().Err(err).Int64("run_id", runID).Msg("closing import run ledger failed")
	}

	printImportReport(runID, vendor, *dryRun, stats)

	if runErr != nil {
		var abort *importer.ValidationAbortError
		if errors.As(runErr, &abort) {
			fmt.Fprintf(os.Stderr, "Import aborted: %v\n", abort)
			return 1
		}
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", runErr)
		return 1
	}
	return 0
}

// readCSVRows loads the whole export into memory. Vendor exports are in the
// thousands of rows, not millions, and the duplicate pass needs the full set.
func readCSVRows(path string) ([]rowparser.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("file is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []rowparser.RawRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, rowparser.NewRawRow(header, record))
	}
	return rows, nil
}

func printImportReport(runID int64, vendor rowparser.Vendor, dryRun bool, stats importer.Stats) {
	fmt.Printf("import run %d (%s)", runID, vendor)
	if dryRun {
		fmt.Print(" [dry-run]")
	}
	fmt.Println()
	fmt.Printf("  rows processed      %d\n", stats.Total)
	fmt.Printf("  imported            %d\n", stats.Imported)
	fmt.Printf("  skipped             %d\n", stats.Skipped)
	fmt.Printf("  validation errors   %d\n", stats.ValidationErrors)
	fmt.Printf("  duplicates          %d\n", stats.Duplicates)
	if len(stats.DuplicatesByKind) > 0 {
		kinds := make([]string, 0, len(stats.DuplicatesByKind))
		for kind := range stats.DuplicatesByKind {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Printf("    %-17s %d\n", kind, stats.DuplicatesByKind[dedup.Kind(kind)])
		}
	}
	fmt.Printf("  warnings            %d\n", stats.Warnings)
	fmt.Printf("  store errors        %d\n", stats.Errors)
	fmt.Printf("  success rate        %.1f%%\n", stats.SuccessRate())
}
