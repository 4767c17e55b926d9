// Package stats extracts completion statistics from a prior day's plan.
package stats

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

var (
	doneRe = regexp.MustCompile(`(?m)^- \[[xX]\]\s*(.+)$`)
	todoRe = regexp.MustCompile(`(?m)^- \[ \]\s*(.+)$`)
)

// Daily summarizes the previous day's checklist.
type Daily struct {
	Completed      int
	Pending        int
	CompletionRate float64
	// Unfinished holds carry-over task texts in source order, capped at
	// the carry limit.
	Unfinished []string
	// HasData reports whether a prior plan artifact was found at all.
	HasData bool
}

// Extract reads the plan artifact at path and derives daily stats.
// An empty path or a missing file yields a no-data result, not an error.
func Extract(path string, carryLimit int) (Daily, error) {
	if path == "" {
		return Daily{}, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Daily{}, nil
	}
	if err != nil {
		return Daily{}, err
	}
	return Parse(string(raw), carryLimit), nil
}

// Parse derives daily stats from checklist markers in text.
func Parse(text string, carryLimit int) Daily {
	done := doneRe.FindAllStringSubmatch(text, -1)
	todo := todoRe.FindAllStringSubmatch(text, -1)

	d := Daily{
		Completed: len(done),
		Pending:   len(todo),
		HasData:   true,
	}
	if total := d.Completed + d.Pending; total > 0 {
		d.CompletionRate = float64(d.Completed) / float64(total)
	}

	for _, m := range todo {
		task := strings.TrimSpace(m[1])
		if task == "" {
			continue
		}
		d.Unfinished = append(d.Unfinished, task)
		if carryLimit > 0 && len(d.Unfinished) >= carryLimit {
			break
		}
	}
	return d
}
