// Package validate sanity-checks a collected videos table. Every finding is
// printed to the report writer; only I/O problems come back as errors, so a
// dirty dataset still produces a full report.
package validate

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/Phuong414/Youtube-analytics/internal/csvout"
)

const sampleSize = 5

// countCols must hold non-negative integers in every row.
var countCols = []string{"view_count", "like_count", "comment_count"}

// Run loads the table at path and writes a diagnostic report to w.
func Run(path string, w io.Writer) error {
	header, rows, err := csvout.Read(path)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	empty := make([]int, len(header))
	for _, row := range rows {
		for i := range header {
			if cell(row, i) == "" {
				empty[i]++
			}
		}
	}

	fmt.Fprintln(w, "===== DATA OVERVIEW =====")
	fmt.Fprintf(w, "%d rows, %d columns\n", len(rows), len(header))
	for i, name := range header {
		fmt.Fprintf(w, "  %-16s %d non-empty\n", name, len(rows)-empty[i])
	}

	fmt.Fprintln(w, "\n===== NULL VALUES =====")
	for i, name := range header {
		fmt.Fprintf(w, "  %-16s %d\n", name, empty[i])
	}

	fmt.Fprintln(w, "\n===== SAMPLE ROWS =====")
	n := min(sampleSize, len(rows))
	for _, i := range rand.Perm(len(rows))[:n] {
		fmt.Fprintln(w, strings.Join(rows[i], ", "))
	}

	fmt.Fprintln(w)
	checkUnique(w, header, rows)
	for _, col := range countCols {
		checkCounts(w, header, rows, col)
	}
	checkDates(w, header, rows)

	fmt.Fprintln(w, "\nvalidation completed")
	return nil
}

func checkUnique(w io.Writer, header []string, rows [][]string) {
	idx := colIndex(header, "video_id")
	if idx < 0 {
		fmt.Fprintln(w, "[!!!] column video_id is missing")
		return
	}
	seen := make(map[string]bool, len(rows))
	dupes := 0
	for _, row := range rows {
		id := cell(row, idx)
		if seen[id] {
			dupes++
		}
		seen[id] = true
	}
	if dupes == 0 {
		fmt.Fprintln(w, "[UNQ] all video IDs are unique")
		return
	}
	fmt.Fprintf(w, "[!!!] %d duplicate video IDs found\n", dupes)
}

func checkCounts(w io.Writer, header []string, rows [][]string, col string) {
	idx := colIndex(header, col)
	if idx < 0 {
		fmt.Fprintf(w, "[!!!] column %s is missing\n", col)
		return
	}
	bad := 0
	for _, row := range rows {
		n, err := strconv.ParseInt(cell(row, idx), 10, 64)
		if err != nil || n < 0 {
			bad++
		}
	}
	if bad == 0 {
		fmt.Fprintf(w, "[OK] %s looks fine!\n", col)
		return
	}
	fmt.Fprintf(w, "[!!!] %d bad values found in %s\n", bad, col)
}

func checkDates(w io.Writer, header []string, rows [][]string) {
	idx := colIndex(header, "published_at")
	if idx < 0 {
		fmt.Fprintln(w, "[!!!] column published_at is missing")
		return
	}
	bad := 0
	for _, row := range rows {
		if _, err := dateparse.ParseAny(cell(row, idx)); err != nil {
			bad++
		}
	}
	if bad == 0 {
		fmt.Fprintln(w, "[OK] all published_at dates parsed correctly")
		return
	}
	fmt.Fprintf(w, "[!!!] %d published_at values could not be parsed\n", bad)
}

func colIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// cell tolerates short rows so one ragged line cannot panic the report.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
