// Package vault handles plan artifact naming, lookup and persistence
// inside the Obsidian vault.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultWeekdayNames labels Monday through Sunday.
var DefaultWeekdayNames = []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// WeekdayLabel returns the label for t's weekday, Monday first.
func WeekdayLabel(t time.Time, names []string) string {
	if len(names) != 7 {
		names = DefaultWeekdayNames
	}
	return names[(int(t.Weekday())+6)%7]
}

// PlanName is the artifact filename for a date and weekday label.
func PlanName(date time.Time, weekday string) string {
	return fmt.Sprintf("%s %s.md", date.Format("2006-01-02"), weekday)
}

// PlanPath is the full artifact path under dir.
func PlanPath(dir string, date time.Time, weekday string) string {
	return filepath.Join(dir, PlanName(date, weekday))
}

// FindPlanFile locates the plan artifact for date under dir by its
// date-prefixed name. With multiple matches the lexicographically first
// wins, keeping lookup deterministic.
func FindPlanFile(dir string, date time.Time) (string, bool) {
	pattern := filepath.Join(dir, date.Format("2006-01-02")+" *.md")
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return matches[0], true
}

// Write persists content at path. An existing file without force is a
// clean no-op reporting written=false: the day's plan already exists.
// Parent directories are created as needed.
func Write(path, content string, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create plan dir: %w", err)
	}
	body := strings.TrimRight(content, "\n") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return false, fmt.Errorf("write plan: %w", err)
	}
	return true, nil
}

// Exists reports whether an artifact is already present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
