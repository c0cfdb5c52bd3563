package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/fnzahra/shelfwise/internal/ingest"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	if err := s.CreateSchema(); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveImport_RoundTrip(t *testing.T) {
	s := setupTestStore(t)

	imp := NewImport("january.csv")
	rows := []ingest.Row{
		{Invoice: "1001", Item: "bread"},
		{Invoice: "1001", Item: "butter"},
		{Invoice: "1002", Item: "milk"},
	}
	if err := s.SaveImport(imp, rows); err != nil {
		t.Fatalf("SaveImport failed: %v", err)
	}
	if imp.RowCount != 3 {
		t.Errorf("RowCount = %d, want 3", imp.RowCount)
	}

	baskets, err := s.LoadBaskets()
	if err != nil {
		t.Fatalf("LoadBaskets failed: %v", err)
	}
	if len(baskets) != 2 {
		t.Fatalf("expected 2 baskets, got %d", len(baskets))
	}
	if got := baskets[0].Items(); !reflect.DeepEqual(got, []string{"bread", "butter"}) {
		t.Errorf("basket 1001 = %v", got)
	}
	if got := baskets[1].Items(); !reflect.DeepEqual(got, []string{"milk"}) {
		t.Errorf("basket 1002 = %v", got)
	}
}

func TestSaveImport_DuplicateRowsIgnored(t *testing.T) {
	s := setupTestStore(t)

	first := NewImport("january.csv")
	rows := []ingest.Row{
		{Invoice: "1001", Item: "bread"},
		{Invoice: "1001", Item: "bread"}, // duplicate within the file
	}
	if err := s.SaveImport(first, rows); err != nil {
		t.Fatalf("SaveImport failed: %v", err)
	}
	if first.RowCount != 1 {
		t.Errorf("first RowCount = %d, want 1", first.RowCount)
	}

	// Re-importing the same rows under a new import changes nothing.
	second := NewImport("january-again.csv")
	if err := s.SaveImport(second, rows); err != nil {
		t.Fatalf("second SaveImport failed: %v", err)
	}
	if second.RowCount != 0 {
		t.Errorf("second RowCount = %d, want 0", second.RowCount)
	}

	baskets, err := s.LoadBaskets()
	if err != nil {
		t.Fatalf("LoadBaskets failed: %v", err)
	}
	if len(baskets) != 1 || len(baskets[0]) != 1 {
		t.Errorf("baskets = %v", baskets)
	}
}

func TestLoadBaskets_Empty(t *testing.T) {
	s := setupTestStore(t)

	baskets, err := s.LoadBaskets()
	if err != nil {
		t.Fatalf("LoadBaskets failed: %v", err)
	}
	if len(baskets) != 0 {
		t.Errorf("expected no baskets, got %d", len(baskets))
	}
}

func TestListImports_MostRecentFirst(t *testing.T) {
	s := setupTestStore(t)

	a := NewImport("a.csv")
	b := NewImport("b.csv")
	b.ImportedAt = b.ImportedAt.Add(time.Second) // strictly later at RFC3339 precision

	if err := s.SaveImport(a, []ingest.Row{{Invoice: "1", Item: "x"}}); err != nil {
		t.Fatalf("SaveImport a failed: %v", err)
	}
	if err := s.SaveImport(b, []ingest.Row{{Invoice: "2", Item: "y"}}); err != nil {
		t.Fatalf("SaveImport b failed: %v", err)
	}

	imports, err := s.ListImports()
	if err != nil {
		t.Fatalf("ListImports failed: %v", err)
	}
	if len(imports) != 2 {
		t.Fatalf("expected 2 imports, got %d", len(imports))
	}
	if imports[0].Source != "b.csv" {
		t.Errorf("imports[0].Source = %s, want b.csv", imports[0].Source)
	}
}

func TestSummary(t *testing.T) {
	s := setupTestStore(t)

	empty, err := s.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if empty.Imports != 0 || empty.Baskets != 0 || !empty.LastImport.IsZero() {
		t.Errorf("empty summary = %+v", empty)
	}

	imp := NewImport("data.csv")
	rows := []ingest.Row{
		{Invoice: "1", Item: "bread"},
		{Invoice: "1", Item: "milk"},
		{Invoice: "2", Item: "bread"},
	}
	if err := s.SaveImport(imp, rows); err != nil {
		t.Fatalf("SaveImport failed: %v", err)
	}

	sum, err := s.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if sum.Imports != 1 {
		t.Errorf("Imports = %d, want 1", sum.Imports)
	}
	if sum.Baskets != 2 {
		t.Errorf("Baskets = %d, want 2", sum.Baskets)
	}
	if sum.Items != 2 {
		t.Errorf("Items = %d, want 2", sum.Items)
	}
	if sum.Rows != 3 {
		t.Errorf("Rows = %d, want 3", sum.Rows)
	}
	if sum.LastImport.IsZero() {
		t.Error("LastImport should be set")
	}
}
