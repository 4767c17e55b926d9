package review

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/liyichao/plangen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func writeItem(t *testing.T, root, category, name string) {
	t.Helper()
	dir := filepath.Join(root, category, "images")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func testIntervals() Intervals {
	return NewIntervals(config.Intervals{High: []int{1, 3, 7, 15, 30}, Low: []int{3, 7, 15, 30}})
}

func TestClassifier_Severity(t *testing.T) {
	t.Parallel()

	clf := DefaultClassifier()
	assert.Equal(t, SeverityHigh, clf.Severity("20250101-HIGH-limits.png"))
	assert.Equal(t, SeverityHigh, clf.Severity("20250101-高频-极限.png"))
	assert.Equal(t, SeverityHigh, clf.Severity("20250101-难.png"))
	assert.Equal(t, SeverityLow, clf.Severity("20250101-normal.png"))
}

func TestClassifier_OccurredOn(t *testing.T) {
	t.Parallel()

	clf := DefaultClassifier()

	got, ok := clf.OccurredOn("20250101-limits.png")
	require.True(t, ok)
	assert.Equal(t, day("2025-01-01"), got)

	_, ok = clf.OccurredOn("no-date-here.png")
	assert.False(t, ok)

	// Feb 30 is not a calendar date.
	_, ok = clf.OccurredOn("20250230-bad.png")
	assert.False(t, ok)
}

func TestScan_DueOnMatchingInterval(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeItem(t, root, "导数", "20250101-chain-rule.png")

	summary := Scan(root, testIntervals(), DefaultClassifier(), day("2025-01-08"))
	require.Len(t, summary, 1)
	assert.Equal(t, "导数", summary[0].Category)
	assert.Equal(t, 1, summary[0].Count)
	assert.Equal(t, 1, summary.Total())
}

func TestScan_NotDueOffInterval(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeItem(t, root, "导数", "20250101-chain-rule.png")

	// elapsed = 5 is in neither interval set
	summary := Scan(root, testIntervals(), DefaultClassifier(), day("2025-01-06"))
	assert.Empty(t, summary)
}

func TestScan_FutureItemNeverDue(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeItem(t, root, "导数", "20250110-future.png")

	summary := Scan(root, testIntervals(), DefaultClassifier(), day("2025-01-08"))
	assert.Empty(t, summary)
}

func TestScan_HighSeverityUsesHighIntervals(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeItem(t, root, "极限", "20250107-高频-lhopital.png")

	// elapsed = 1 is only in the high set
	summary := Scan(root, testIntervals(), DefaultClassifier(), day("2025-01-08"))
	require.Len(t, summary, 1)
	assert.Equal(t, "极限", summary[0].Category)
}

func TestScan_SkipsUnparseableNames(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeItem(t, root, "导数", "untitled.png")
	writeItem(t, root, "导数", "20250101-ok.png")

	summary := Scan(root, testIntervals(), DefaultClassifier(), day("2025-01-08"))
	require.Len(t, summary, 1)
	assert.Equal(t, 1, summary[0].Count)
}

func TestScan_MissingRoot(t *testing.T) {
	t.Parallel()

	summary := Scan(filepath.Join(t.TempDir(), "absent"), testIntervals(), DefaultClassifier(), day("2025-01-08"))
	assert.Empty(t, summary)
}

func TestScan_SortedByCategory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeItem(t, root, "积分", "20250101-parts.png")
	writeItem(t, root, "导数", "20250101-chain.png")
	writeItem(t, root, "导数", "20250101-implicit.png")

	summary := Scan(root, testIntervals(), DefaultClassifier(), day("2025-01-08"))
	require.Len(t, summary, 2)
	assert.Equal(t, "导数", summary[0].Category)
	assert.Equal(t, 2, summary[0].Count)
	assert.Equal(t, "积分", summary[1].Category)
	assert.Equal(t, 1, summary[1].Count)
}

func TestScan_IgnoresFilesOutsideImagesShape(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "导数"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "导数", "20250101-loose.png"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "20250101-top.png"), []byte("x"), 0o644))

	summary := Scan(root, testIntervals(), DefaultClassifier(), day("2025-01-08"))
	assert.Empty(t, summary)
}
