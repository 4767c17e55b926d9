// Package review scans the logged error-item tree and decides which
// items are due for spaced-repetition review.
package review

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/liyichao/plangen/internal/config"
	"github.com/rs/zerolog/log"
)

// Severity classes for logged error items.
type Severity string

const (
	SeverityHigh Severity = "high"
	SeverityLow  Severity = "low"
)

// Classifier decides an item's severity and occurrence date from its
// filename. Keyword sets and the date pattern are swappable without
// touching scanner logic.
type Classifier struct {
	HighKeywords []string
	DatePattern  *regexp.Regexp
}

// DefaultClassifier matches the vault's filename conventions: a YYYYMMDD
// date embedded in the name, high severity flagged by keyword.
func DefaultClassifier() Classifier {
	return Classifier{
		HighKeywords: []string{"high", "高频", "重错", "难"},
		DatePattern:  regexp.MustCompile(`(20\d{2})(\d{2})(\d{2})`),
	}
}

// Severity classifies a filename, case-insensitively.
func (c Classifier) Severity(name string) Severity {
	lowered := strings.ToLower(name)
	for _, kw := range c.HighKeywords {
		if strings.Contains(lowered, kw) {
			return SeverityHigh
		}
	}
	return SeverityLow
}

// OccurredOn extracts the occurrence date embedded in a filename.
// Names without a parseable calendar date report ok=false.
func (c Classifier) OccurredOn(name string) (time.Time, bool) {
	m := c.DatePattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", m[1]+m[2]+m[3])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Intervals holds the due offsets per severity class as sets.
type Intervals struct {
	high map[int]struct{}
	low  map[int]struct{}
}

// NewIntervals builds interval sets from configuration.
func NewIntervals(cfg config.Intervals) Intervals {
	return Intervals{
		high: toSet(cfg.High),
		low:  toSet(cfg.Low),
	}
}

func toSet(days []int) map[int]struct{} {
	s := make(map[int]struct{}, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

// Due reports whether an item of the given severity is due after
// elapsed days.
func (iv Intervals) Due(sev Severity, elapsed int) bool {
	set := iv.low
	if sev == SeverityHigh {
		set = iv.high
	}
	_, ok := set[elapsed]
	return ok
}

// CategoryCount is one category's due-item count.
type CategoryCount struct {
	Category string
	Count    int
}

// Summary lists due counts per category, sorted by category name.
type Summary []CategoryCount

// Total sums due counts across categories.
func (s Summary) Total() int {
	total := 0
	for _, c := range s {
		total += c.Count
	}
	return total
}

// Scan walks <root>/<category>/images/* and aggregates the items due on
// target. A missing root yields an empty summary. Entries without a
// parseable date, with an invalid date, or dated after target are
// skipped silently.
func Scan(root string, intervals Intervals, clf Classifier, target time.Time) Summary {
	matches, err := filepath.Glob(filepath.Join(root, "*", "images", "*"))
	if err != nil {
		return nil
	}
	sort.Strings(matches)

	day := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	counts := make(map[string]int)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		name := filepath.Base(path)
		occurred, ok := clf.OccurredOn(name)
		if !ok {
			log.Debug().Str("file", name).Msg("skipping error item without parseable date")
			continue
		}
		if occurred.After(day) {
			continue
		}

		elapsed := int(day.Sub(occurred).Hours() / 24)
		if !intervals.Due(clf.Severity(name), elapsed) {
			continue
		}

		category := filepath.Base(filepath.Dir(filepath.Dir(path)))
		counts[category]++
	}

	summary := make(Summary, 0, len(counts))
	for category, count := range counts {
		summary = append(summary, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Category < summary[j].Category
	})
	return summary
}
