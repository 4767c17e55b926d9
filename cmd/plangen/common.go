package main

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/liyichao/plangen/internal/db"
)

func openDB() (*sql.DB, string, func(), error) {
	vaultRoot, err := os.Getwd()
	if err != nil {
		return nil, "", func() {}, err
	}
	plangenDir := filepath.Join(vaultRoot, ".plangen")
	if err := os.MkdirAll(plangenDir, 0o755); err != nil {
		return nil, "", func() {}, err
	}
	dbPath := filepath.Join(plangenDir, "plangen.db")
	storeDB, err := db.Open(dbPath)
	if err != nil {
		return nil, "", func() {}, err
	}
	return storeDB, vaultRoot, func() { _ = storeDB.Close() }, nil
}

// parseTargetDate parses a --date override, defaulting to today.
func parseTargetDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", value)
}
