// Package ingest parses raw transaction CSV exports into clean baskets.
//
// A transaction file has one row per purchased line item, with an invoice
// column identifying the receipt and an item column naming the product.
// Ingestion normalizes item names (lowercase, trimmed), drops rows with a
// blank invoice or item, removes duplicate items within an invoice, and
// aggregates the rows into one basket per invoice. The analyzer downstream
// assumes identifiers are already canonical.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fnzahra/shelfwise/internal/basket"
)

// Options selects the invoice and item columns by header name. Header
// matching is case-insensitive and ignores surrounding whitespace.
type Options struct {
	InvoiceColumn string
	ItemColumn    string
}

// DefaultOptions matches the standard export format.
func DefaultOptions() Options {
	return Options{
		InvoiceColumn: "invoice",
		ItemColumn:    "item",
	}
}

// Row is one normalized line item: which receipt it belongs to and the
// canonical product name.
type Row struct {
	Invoice string
	Item    string
}

// ReadFile reads and normalizes one transaction CSV file.
func ReadFile(path string, opts Options) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

// ReadFiles reads several transaction files and merges their rows, in
// argument order, into one collection.
func ReadFiles(paths []string, opts Options) ([]Row, error) {
	var all []Row
	for _, path := range paths {
		rows, err := ReadFile(path, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}

// ReadCSV parses one CSV stream. The first record is the header; the invoice
// and item columns are located by name. Rows with a blank invoice or item
// are dropped; item names are lowercased and trimmed.
func ReadCSV(r io.Reader, opts Options) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged exports are common, tolerate them

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	invoiceIdx, itemIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case strings.ToLower(strings.TrimSpace(opts.InvoiceColumn)):
			invoiceIdx = i
		case strings.ToLower(strings.TrimSpace(opts.ItemColumn)):
			itemIdx = i
		}
	}
	if invoiceIdx < 0 {
		return nil, fmt.Errorf("invoice column %q not found in header %v", opts.InvoiceColumn, header)
	}
	if itemIdx < 0 {
		return nil, fmt.Errorf("item column %q not found in header %v", opts.ItemColumn, header)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if invoiceIdx >= len(record) || itemIdx >= len(record) {
			continue
		}

		invoice := strings.TrimSpace(record[invoiceIdx])
		item := strings.ToLower(strings.TrimSpace(record[itemIdx]))
		if invoice == "" || item == "" {
			continue
		}
		rows = append(rows, Row{Invoice: invoice, Item: item})
	}
	return rows, nil
}

// Baskets aggregates normalized rows into one basket per invoice. Duplicate
// items within an invoice collapse. Baskets are returned ordered by invoice
// identifier; the ordering carries no meaning for the analysis but keeps
// runs reproducible.
func Baskets(rows []Row) []basket.Basket {
	byInvoice := make(map[string]basket.Basket)
	for _, row := range rows {
		b, ok := byInvoice[row.Invoice]
		if !ok {
			b = basket.NewBasket()
			byInvoice[row.Invoice] = b
		}
		b[row.Item] = struct{}{}
	}

	invoices := make([]string, 0, len(byInvoice))
	for inv := range byInvoice {
		invoices = append(invoices, inv)
	}
	sort.Strings(invoices)

	baskets := make([]basket.Basket, 0, len(invoices))
	for _, inv := range invoices {
		baskets = append(baskets, byInvoice[inv])
	}
	return baskets
}
