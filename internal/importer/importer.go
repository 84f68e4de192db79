package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
	"github.com/Michwuanquana/vybav.it-sub000/internal/dedup"
	"github.com/Michwuanquana/vybav.it-sub000/internal/rowparser"
	"github.com/Michwuanquana/vybav.it-sub000/internal/validate"
)

// Store is the target store seen by the pipeline: an id-keyed upsert plus an
// ignore-on-conflict image insert. The core never issues other queries.
type Store interface {
	UpsertProduct(ctx context.Context, p *catalog.Product) error
	InsertProductImages(ctx context.Context, productID string, urls []string) error
}

// Options configures one import run.
type Options struct {
	// DryRun performs parsing, validation and duplicate registration exactly
	// as a live run but skips the store writes.
	DryRun bool
	// RowLimit caps how many input rows are processed; 0 means no cap.
	RowLimit int
}

// Stats are the operator-facing counters for one run.
type Stats struct {
	Total            int
	Imported         int
	Skipped          int
	ValidationErrors int
	Duplicates       int
	DuplicatesByKind map[dedup.Kind]int
	Warnings         int
	Errors           int
}

// SuccessRate is the imported share of all processed rows, in percent.
func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Imported) / float64(s.Total) * 100
}

// ValidationAbortError carries the full finding list of the row that halted
// the run. A blocking finding means the parser itself mis-extracted
// something; continuing would corrupt the result set.
type ValidationAbortError struct {
	RowIndex int
	Product  *catalog.Product
	Findings []validate.Finding
}

func (e *ValidationAbortError) Error() string {
	messages := make([]string, 0, len(e.Findings))
	for _, f := range validate.Blocking(e.Findings) {
		messages = append(messages, f.String())
	}
	return fmt.Sprintf("row %d failed validation: %s", e.RowIndex, strings.Join(messages, "; "))
}

const advisoryLogPreview = 3

// Importer drives a batch of raw rows through parse, validate, duplicate
// check and store upsert, sequentially and in input order.
type Importer struct {
	parser *rowparser.Parser
	store  Store
	logger zerolog.Logger
	opts   Options
}

func New(parser *rowparser.Parser, store Store, logger zerolog.Logger, opts Options) *Importer {
	return &Importer{
		parser: parser,
		store:  store,
		logger: logger,
		opts:   opts,
	}
}

// Run processes one batch. It returns the stats collected so far together
// with the first fatal error: a blocking validation finding or a store
// failure aborts the whole run, while skips and duplicates are expected and
// only counted.
func (im *Importer) Run(ctx context.Context, rows []rowparser.RawRow) (Stats, error) {
	if im.opts.RowLimit > 0 && len(rows) > im.opts.RowLimit {
		rows = rows[:im.opts.RowLimit]
	}

	detector := dedup.NewDetector()
	stats := Stats{DuplicatesByKind: make(map[dedup.Kind]int)}

	for i, row := range rows {
		stats.Total++

		product := im.parser.Parse(row)
		if product == nil {
			stats.Skipped++
			im.logger.Debug().Int("row", i).Msg("row unsalvageable, skipped")
			continue
		}

		findings := validate.Product(product)
		if blocking := validate.Blocking(findings); len(blocking) > 0 {
			stats.ValidationErrors++
			abort := &ValidationAbortError{RowIndex: i, Product: product, Findings: findings}
			im.logger.Error().
				Int("row", i).
				Str("product_id", product.ID).
				Int("blocking_findings", len(blocking)).
				Msg("blocking validation finding, aborting run")
			for _, f := range blocking {
				im.logger.Error().Str("product_id", product.ID).Msg(f.String())
			}
			return stats, abort
		}
		if len(findings) > 0 {
			stats.Warnings += len(findings)
			preview := findings
			if len(preview) > advisoryLogPreview {
				preview = preview[:advisoryLogPreview]
			}
			for _, f := range preview {
				im.logger.Warn().Int("row", i).Str("product_id", product.ID).Msg(f.String())
			}
		}

		if verdict := detector.Check(product); verdict != nil {
			stats.Duplicates++
			stats.DuplicatesByKind[verdict.Kind]++
			stats.Skipped++
			im.logger.Info().
				Int("row", i).
				Str("kind", string(verdict.Kind)).
				Str("incoming_id", product.ID).
				Str("existing_id", verdict.Existing.ID).
				Float64("similarity", verdict.Similarity).
				Str("reason", verdict.Explanation).
				Msg("duplicate skipped")
			continue
		}

		detector.Accept(product)

		if !im.opts.DryRun {
			if err := im.upsert(ctx, product); err != nil {
				stats.Errors++
				im.logger.Error().Err(err).Str("product_id", product.ID).Msg("store write failed, aborting run")
				return stats, err
			}
		}
		stats.Imported++
	}

	im.logger.Info().
		Int("total", stats.Total).
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped).
		Int("duplicates", stats.Duplicates).
		Int("warnings", stats.Warnings).
		Bool("dry_run", im.opts.DryRun).
		Float64("success_rate", stats.SuccessRate()).
		Msg("import run completed")

	return stats, nil
}

func (im *Importer) upsert(ctx context.Context, product *catalog.Product) error {
	if err := im.store.UpsertProduct(ctx, product); err != nil {
		return fmt.Errorf("upsert product %s: %w", product.ID, err)
	}
	if len(product.AdditionalImages) > 0 {
		if err := im.store.InsertProductImages(ctx, product.ID, product.AdditionalImages); err != nil {
			return fmt.Errorf("insert images for product %s: %w", product.ID, err)
		}
	}
	return nil
}
