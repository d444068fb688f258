// Package csvout writes and reads the flat CSV tables the collector
// produces: header row first, then one row per record, UTF-8 throughout.
package csvout

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Write persists one table as <dir>/<table>.csv, preserving row order. An
// empty rows slice writes nothing and returns an empty path; that case is
// a warning, not an error.
func Write(dir, table string, header []string, rows [][]string) (string, error) {
	if len(rows) == 0 {
		slog.Warn("csv: nothing to write", slog.String("table", table))
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, table+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	return path, nil
}

// Read loads a table produced by Write, returning the header and the data
// rows.
func Read(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("read %s: empty file", path)
	}
	return all[0], all[1:], nil
}
