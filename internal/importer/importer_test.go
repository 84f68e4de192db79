package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
	"github.com/Michwuanquana/vybav.it-sub000/internal/dedup"
	"github.com/Michwuanquana/vybav.it-sub000/internal/rowparser"
)

type fakeStore struct {
	upserts   []string
	images    map[string][]string
	upsertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{images: make(map[string][]string)}
}

func (s *fakeStore) UpsertProduct(_ context.Context, p *catalog.Product) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserts = append(s.upserts, p.ID)
	return nil
}

func (s *fakeStore) InsertProductImages(_ context.Context, productID string, urls []string) error {
	s.images[productID] = append(s.images[productID], urls...)
	return nil
}

var cleanHeader = []string{
	"id", "name", "brand", "category", "collection_name", "price",
	"image_url", "affiliate_url", "width", "height", "color", "material",
	"availability_status", "additional_images",
}

func cleanRow(collection, name, price string) rowparser.RawRow {
	id := catalog.ProductID(catalog.BrandIkea, collection, name)
	return rowparser.NewRawRow(cleanHeader, []string{
		id, name, "ikea", "shelf", collection, price,
		"https://www.ikea.com/cz/images/products/" + collection + ".jpg",
		"https://vybav.it/go/ikea/" + id,
		"80", "202", "white", "particleboard",
		"in_stock", "",
	})
}

func newTestImporter(store Store, opts Options) *Importer {
	return New(rowparser.New(rowparser.VendorClean, "https://vybav.it/go"), store, zerolog.Nop(), opts)
}

func TestRunImportsDistinctRows(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	imp := newTestImporter(store, Options{})

	rows := []rowparser.RawRow{
		cleanRow("BILLY", "BILLY Police bílá", "1490"),
		cleanRow("KALLAX", "KALLAX Regál černý", "2490"),
	}

	stats, err := imp.Run(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 2 || stats.Imported != 2 || stats.Skipped != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(store.upserts) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(store.upserts))
	}
	if stats.SuccessRate() != 100 {
		t.Fatalf("unexpected success rate: %g", stats.SuccessRate())
	}
}

func TestRunSkipsDuplicates(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	imp := newTestImporter(store, Options{})

	rows := []rowparser.RawRow{
		cleanRow("BILLY", "BILLY Police bílá", "1490"),
		cleanRow("BILLY", "BILLY Police bílá", "1495"),
	}

	stats, err := imp.Run(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Imported != 1 || stats.Duplicates != 1 || stats.Skipped != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.DuplicatesByKind[dedup.KindIDCollision] != 1 {
		t.Fatalf("expected an id collision, got %v", stats.DuplicatesByKind)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("duplicate must not reach the store, upserts=%v", store.upserts)
	}
}

func TestRunAbortsOnBlockingFinding(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	imp := newTestImporter(store, Options{})

	rows := []rowparser.RawRow{
		cleanRow("BILLY", "BILLY Police bílá", "1490"),
		cleanRow("KALLAX", "KALLAX Regál černý", "-5"),
		cleanRow("LACK", "LACK Stolek bílý", "990"),
	}

	stats, err := imp.Run(context.Background(), rows)
	if err == nil {
		t.Fatal("expected the run to abort")
	}
	var abort *ValidationAbortError
	if !errors.As(err, &abort) {
		t.Fatalf("expected a validation abort error, got %T", err)
	}
	if abort.RowIndex != 1 {
		t.Fatalf("unexpected aborting row index: %d", abort.RowIndex)
	}
	if stats.Total != 2 {
		t.Fatalf("rows after the abort must stay unprocessed, total=%d", stats.Total)
	}
	if stats.ValidationErrors != 1 {
		t.Fatalf("unexpected validation error count: %d", stats.ValidationErrors)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("only the first row may reach the store, upserts=%v", store.upserts)
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	imp := newTestImporter(store, Options{DryRun: true})

	rows := []rowparser.RawRow{
		cleanRow("BILLY", "BILLY Police bílá", "1490"),
		cleanRow("BILLY", "BILLY Police bílá", "1490"),
	}

	stats, err := imp.Run(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Imported != 1 || stats.Duplicates != 1 {
		t.Fatalf("dry run must count exactly as a live run: %+v", stats)
	}
	if len(store.upserts) != 0 || len(store.images) != 0 {
		t.Fatal("dry run must not touch the store")
	}
}

func TestRunHonorsRowLimit(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	imp := newTestImporter(store, Options{RowLimit: 2})

	rows := []rowparser.RawRow{
		cleanRow("BILLY", "BILLY Police bílá", "1490"),
		cleanRow("KALLAX", "KALLAX Regál černý", "2490"),
		cleanRow("LACK", "LACK Stolek bílý", "990"),
	}

	stats, err := imp.Run(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 2 || stats.Imported != 2 {
		t.Fatalf("row limit not honored: %+v", stats)
	}
}

func TestRunAbortsOnStoreError(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.upsertErr = errors.New("connection lost")
	imp := newTestImporter(store, Options{})

	rows := []rowparser.RawRow{
		cleanRow("BILLY", "BILLY Police bílá", "1490"),
		cleanRow("KALLAX", "KALLAX Regál černý", "2490"),
	}

	stats, err := imp.Run(context.Background(), rows)
	if err == nil {
		t.Fatal("expected a store error to abort the run")
	}
	if stats.Errors != 1 {
		t.Fatalf("unexpected store error count: %d", stats.Errors)
	}
	if stats.Total != 1 {
		t.Fatalf("run must stop at the failing row, total=%d", stats.Total)
	}
}

func TestRunSkipsUnsalvageableRows(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	imp := newTestImporter(store, Options{})

	junk := rowparser.NewRawRow(cleanHeader, []string{
		"", "Doprava zdarma nad 999 Kč", "ikea", "", "", "",
		"", "", "", "", "", "", "", "",
	})
	rows := []rowparser.RawRow{
		junk,
		cleanRow("BILLY", "BILLY Police bílá", "1490"),
	}

	stats, err := imp.Run(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Skipped != 1 || stats.Imported != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRunStoresAdditionalImages(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	imp := newTestImporter(store, Options{})

	id := catalog.ProductID(catalog.BrandIkea, "BILLY", "BILLY Police bílá")
	row := rowparser.NewRawRow(cleanHeader, []string{
		id, "BILLY Police bílá", "ikea", "shelf", "BILLY", "1490",
		"https://www.ikea.com/cz/images/products/billy.jpg",
		"https://vybav.it/go/ikea/" + id,
		"80", "202", "white", "particleboard", "in_stock",
		"https://www.ikea.com/cz/images/products/billy-2.jpg|https://www.ikea.com/cz/images/products/billy-3.jpg",
	})

	stats, err := imp.Run(context.Background(), []rowparser.RawRow{row})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Imported != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if got := store.images[id]; len(got) != 2 {
		t.Fatalf("expected 2 gallery images, got %v", got)
	}
}
