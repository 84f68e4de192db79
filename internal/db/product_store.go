package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
	"github.com/Michwuanquana/vybav.it-sub000/internal/globaltime"
)

const maxRunErrorLength = 4000

// UpsertProduct inserts or replaces one product by id. Re-running the same
// input refreshes fields and updated_at and nothing else.
func (p *Pool) UpsertProduct(ctx context.Context, product *catalog.Product) error {
	if p == nil || p.gdb == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	if product == nil {
		return fmt.Errorf("product is nil")
	}

	const q = `
INSERT INTO catalog.products (
	product_id,
	name,
	brand,
	category,
	collection_name,
	style_tags,
	color,
	material,
	price,
	image_url,
	affiliate_url,
	width_cm,
	height_cm,
	depth_cm,
	length_cm,
	diameter_cm,
	availability,
	is_seasonal,
	season,
	search_keywords,
	created_at,
	updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $21)
ON CONFLICT (product_id) DO UPDATE
SET
	name = EXCLUDED.name,
	brand = EXCLUDED.brand,
	category = EXCLUDED.category,
	collection_name = EXCLUDED.collection_name,
	style_tags = EXCLUDED.style_tags,
	color = EXCLUDED.color,
	material = EXCLUDED.material,
	price = EXCLUDED.price,
	image_url = EXCLUDED.image_url,
	affiliate_url = EXCLUDED.affiliate_url,
	width_cm = EXCLUDED.width_cm,
	height_cm = EXCLUDED.height_cm,
	depth_cm = EXCLUDED.depth_cm,
	length_cm = EXCLUDED.length_cm,
	diameter_cm = EXCLUDED.diameter_cm,
	availability = EXCLUDED.availability,
	is_seasonal = EXCLUDED.is_seasonal,
	season = EXCLUDED.season,
	search_keywords = EXCLUDED.search_keywords,
	updated_at = EXCLUDED.updated_at
`

	var dims catalog.Dimensions
	if product.Dimensions != nil {
		dims = *product.Dimensions
	}

	now := globaltime.UTC()
	_, err := p.Exec(
		ctx,
		q,
		product.ID,
		product.Name,
		string(product.Brand),
		string(product.Category),
		nullableString(product.CollectionName),
		nullableString(strings.Join(product.StyleTags, "|")),
		nullableString(product.Color),
		nullableString(product.Material),
		product.Price,
		product.ImageURL,
		product.AffiliateURL,
		dims.Width,
		dims.Height,
		dims.Depth,
		dims.Length,
		dims.Diameter,
		string(product.Availability),
		product.IsSeasonal,
		nullableString(product.Season),
		nullableString(strings.Join(product.SearchKeywords, "|")),
		now,
	)
	if err != nil {
		return fmt.Errorf("upsert product %s: %w", product.ID, err)
	}
	return nil
}

// InsertProductImages stores secondary images in order, ignoring URLs the
// product already has.
func (p *Pool) InsertProductImages(ctx context.Context, productID string, urls []string) error {
	if p == nil || p.gdb == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	if len(urls) == 0 {
		return nil
	}

	tx, err := p.BeginTx(ctx, TxOptions{})
	if err != nil {
		return fmt.Errorf("begin image insert tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const q = `
INSERT INTO catalog.product_images (product_id, url, position, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (product_id, url) DO NOTHING
`

	now := globaltime.UTC()
	for position, url := range urls {
		trimmed := strings.TrimSpace(url)
		if trimmed == "" {
			continue
		}
		if _, err := tx.Exec(ctx, q, productID, trimmed, position, now); err != nil {
			return fmt.Errorf("insert product image %s[%d]: %w", productID, position, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit image insert tx: %w", err)
	}
	return nil
}

// RunCounters mirrors the orchestrator stats written into the run ledger.
type RunCounters struct {
	Total            int
	Imported         int
	Skipped          int
	ValidationErrors int
	Duplicates       int
	Warnings         int
}

// StartImportRun opens a row in the import-run ledger.
func (p *Pool) StartImportRun(ctx context.Context, vendor string, dryRun bool) (int64, error) {
	const q = `
INSERT INTO catalog.import_runs (vendor, dry_run, started_at, status, created_at, updated_at)
VALUES ($1, $2, $3, 'running', $3, $3)
RETURNING run_id
`
	var runID int64
	if err := p.QueryRow(ctx, q, vendor, dryRun, globaltime.UTC()).Scan(&runID); err != nil {
		return 0, fmt.Errorf("insert import run: %w", err)
	}
	return runID, nil
}

// FinishImportRun closes a ledger row as completed or failed.
func (p *Pool) FinishImportRun(ctx context.Context, runID int64, counters RunCounters, cause error) error {
	const q = `
UPDATE catalog.import_runs
SET
	status = $2,
	total_rows = $3,
	imported_rows = $4,
	skipped_rows = $5,
	validation_errors = $6,
	duplicate_rows = $7,
	warning_count = $8,
	error_message = $9,
	finished_at = $10,
	updated_at = $10
WHERE run_id = $1
`

	status := "completed"
	var errMsg *string
	if cause != nil {
		status = "failed"
		msg := strings.TrimSpace(cause.Error())
		if len(msg) > maxRunErrorLength {
			msg = msg[:maxRunErrorLength]
		}
		errMsg = &msg
	}

	_, err := p.Exec(
		ctx,
		q,
		runID,
		status,
		counters.Total,
		counters.Imported,
		counters.Skipped,
		counters.ValidationErrors,
		counters.Duplicates,
		counters.Warnings,
		errMsg,
		globaltime.UTC(),
	)
	if err != nil {
		return fmt.Errorf("finish import run %d: %w", runID, err)
	}
	return nil
}

// ImportRunSummary is one ledger row as reported to operators.
type ImportRunSummary struct {
	RunID            int64      `json:"run_id"`
	Vendor           string     `json:"vendor"`
	DryRun           bool       `json:"dry_run"`
	Status           string     `json:"status"`
	TotalRows        int        `json:"total_rows"`
	ImportedRows     int        `json:"imported_rows"`
	SkippedRows      int        `json:"skipped_rows"`
	ValidationErrors int        `json:"validation_errors"`
	DuplicateRows    int        `json:"duplicate_rows"`
	WarningCount     int        `json:"warning_count"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
}

// ListImportRuns returns the most recent ledger rows, newest first.
func (p *Pool) ListImportRuns(ctx context.Context, limit int) ([]ImportRunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	const q = `
SELECT
	run_id, vendor, dry_run, status,
	total_rows, imported_rows, skipped_rows, validation_errors, duplicate_rows, warning_count,
	error_message, started_at, finished_at
FROM catalog.import_runs
ORDER BY started_at DESC
LIMIT $1
`

	rows, err := p.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query import runs: %w", err)
	}
	defer rows.Close()

	var runs []ImportRunSummary
	for rows.Next() {
		var run ImportRunSummary
		if err := rows.Scan(
			&run.RunID, &run.Vendor, &run.DryRun, &run.Status,
			&run.TotalRows, &run.ImportedRows, &run.SkippedRows, &run.ValidationErrors, &run.DuplicateRows, &run.WarningCount,
			&run.ErrorMessage, &run.StartedAt, &run.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan import run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate import runs: %w", err)
	}
	return runs, nil
}

// CatalogStats is the read model behind the stats endpoint.
type CatalogStats struct {
	TotalProducts int64            `json:"total_products"`
	TotalImages   int64            `json:"total_images"`
	ByBrand       map[string]int64 `json:"by_brand"`
	ByCategory    map[string]int64 `json:"by_category"`
	LastRunAt     *time.Time       `json:"last_run_at,omitempty"`
}

// QueryCatalogStats aggregates product counts for the operator API.
func (p *Pool) QueryCatalogStats(ctx context.Context) (CatalogStats, error) {
	stats := CatalogStats{
		ByBrand:    make(map[string]int64),
		ByCategory: make(map[string]int64),
	}

	if err := p.QueryRow(ctx, `SELECT COUNT(*) FROM catalog.products WHERE deleted_at IS NULL`).Scan(&stats.TotalProducts); err != nil {
		return CatalogStats{}, fmt.Errorf("count products: %w", err)
	}
	if err := p.QueryRow(ctx, `SELECT COUNT(*) FROM catalog.product_images`).Scan(&stats.TotalImages); err != nil {
		return CatalogStats{}, fmt.Errorf("count product images: %w", err)
	}

	groupCounts := []struct {
		query  string
		target map[string]int64
	}{
		{`SELECT brand, COUNT(*) FROM catalog.products WHERE deleted_at IS NULL GROUP BY brand`, stats.ByBrand},
		{`SELECT category, COUNT(*) FROM catalog.products WHERE deleted_at IS NULL GROUP BY category`, stats.ByCategory},
	}
	for _, group := range groupCounts {
		rows, err := p.Query(ctx, group.query)
		if err != nil {
			return CatalogStats{}, fmt.Errorf("query grouped counts: %w", err)
		}
		for rows.Next() {
			var key string
			var count int64
			if err := rows.Scan(&key, &count); err != nil {
				rows.Close()
				return CatalogStats{}, fmt.Errorf("scan grouped count: %w", err)
			}
			group.target[key] = count
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return CatalogStats{}, fmt.Errorf("iterate grouped counts: %w", err)
		}
		rows.Close()
	}

	var lastRun *time.Time
	err := p.QueryRow(ctx, `SELECT finished_at FROM catalog.import_runs WHERE status = 'completed' ORDER BY finished_at DESC NULLS LAST LIMIT 1`).Scan(&lastRun)
	if err != nil && !IsNoRows(err) {
		return CatalogStats{}, fmt.Errorf("query last run: %w", err)
	}
	stats.LastRunAt = lastRun

	return stats, nil
}

func nullableString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
