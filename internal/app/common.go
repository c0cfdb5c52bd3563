package app

import (
	"fmt"

	"github.com/fnzahra/shelfwise/internal/store"
)

// openStore opens the database named by --db (or the default path) and
// ensures the schema exists. The caller owns the returned store.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}
	return st, nil
}

// plural returns "s" when n != 1, for log lines.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
