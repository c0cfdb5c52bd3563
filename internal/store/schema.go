package store

const schema = `
CREATE TABLE IF NOT EXISTS imports (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    row_count INTEGER NOT NULL,
    imported_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS transaction_items (
    invoice TEXT NOT NULL,
    item TEXT NOT NULL,
    import_id TEXT NOT NULL,
    PRIMARY KEY (invoice, item),
    FOREIGN KEY (import_id) REFERENCES imports(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_tx_invoice ON transaction_items(invoice);
CREATE INDEX IF NOT EXISTS idx_tx_import ON transaction_items(import_id);
`
