package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fnzahra/shelfwise/internal/basket"
	"github.com/fnzahra/shelfwise/internal/ingest"
)

// SaveImport inserts the rows of one ingested file together with its import
// record, in a single transaction. Rows already present from earlier imports
// are ignored; imp.RowCount is updated to the number actually inserted.
func (s *Store) SaveImport(imp *Import, rows []ingest.Row) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO imports (id, source, row_count, imported_at) VALUES (?, ?, ?, ?)`,
		imp.ID, imp.Source, 0, imp.ImportedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to record import %s: %w", imp.Source, err)
	}

	stmt, err := tx.Prepare(
		`INSERT OR IGNORE INTO transaction_items (invoice, item, import_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, row := range rows {
		res, err := stmt.Exec(row.Invoice, row.Item, imp.ID)
		if err != nil {
			return fmt.Errorf("failed to insert row %s/%s: %w", row.Invoice, row.Item, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if _, err := tx.Exec(`UPDATE imports SET row_count = ? WHERE id = ?`, inserted, imp.ID); err != nil {
		return fmt.Errorf("failed to update import row count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	imp.RowCount = inserted
	return nil
}

// LoadBaskets reads every stored transaction row and aggregates one basket
// per invoice, ordered by invoice identifier.
func (s *Store) LoadBaskets() ([]basket.Basket, error) {
	rows, err := s.db.Query(
		`SELECT invoice, item FROM transaction_items ORDER BY invoice, item`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var baskets []basket.Basket
	var current basket.Basket
	currentInvoice := ""

	for rows.Next() {
		var invoice, item string
		if err := rows.Scan(&invoice, &item); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		if current == nil || invoice != currentInvoice {
			current = basket.NewBasket()
			currentInvoice = invoice
			baskets = append(baskets, current)
		}
		current[item] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return baskets, nil
}

// ListImports returns all import records, most recent first.
func (s *Store) ListImports() ([]*Import, error) {
	rows, err := s.db.Query(
		`SELECT id, source, row_count, imported_at FROM imports ORDER BY imported_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query imports: %w", err)
	}
	defer rows.Close()

	var imports []*Import
	for rows.Next() {
		var imp Import
		var importedAt string
		if err := rows.Scan(&imp.ID, &imp.Source, &imp.RowCount, &importedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}
		imp.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse imported_at for %s: %w", imp.ID, err)
		}
		imports = append(imports, &imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate imports: %w", err)
	}
	return imports, nil
}

// Summary reports the store contents for the status command.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM imports`, &sum.Imports},
		{`SELECT COUNT(DISTINCT invoice) FROM transaction_items`, &sum.Baskets},
		{`SELECT COUNT(DISTINCT item) FROM transaction_items`, &sum.Items},
		{`SELECT COUNT(*) FROM transaction_items`, &sum.Rows},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count store contents: %w", err)
		}
	}

	var last sql.NullString
	if err := s.db.QueryRow(`SELECT MAX(imported_at) FROM imports`).Scan(&last); err != nil {
		return nil, fmt.Errorf("failed to query last import: %w", err)
	}
	if last.Valid {
		t, err := time.Parse(time.RFC3339, last.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last import time: %w", err)
		}
		sum.LastImport = t
	}
	return sum, nil
}
