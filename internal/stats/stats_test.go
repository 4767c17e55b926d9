package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleChecklist = `---
date: 2025-01-07
---

# 计划

- [x] 数学真题一套
- [X] 英语阅读两篇
- [x] 专业课笔记
- [ ] 政治选择题
- [ ] 复盘错题
`

func TestParse_CompletionRate(t *testing.T) {
	t.Parallel()

	d := Parse(sampleChecklist, 10)
	assert.Equal(t, 3, d.Completed)
	assert.Equal(t, 2, d.Pending)
	assert.InDelta(t, 0.6, d.CompletionRate, 1e-9)
	assert.Equal(t, []string{"政治选择题", "复盘错题"}, d.Unfinished)
	assert.True(t, d.HasData)
}

func TestParse_NoMarkers(t *testing.T) {
	t.Parallel()

	d := Parse("# 空白计划\n\n没有任何任务。\n", 5)
	assert.Equal(t, 0, d.Completed)
	assert.Equal(t, 0, d.Pending)
	assert.Zero(t, d.CompletionRate)
	assert.Empty(t, d.Unfinished)
}

func TestParse_CarryLimit(t *testing.T) {
	t.Parallel()

	text := "- [ ] 一\n- [ ] 二\n- [ ] 三\n- [ ] 四\n"
	d := Parse(text, 2)
	assert.Equal(t, 4, d.Pending)
	assert.Equal(t, []string{"一", "二"}, d.Unfinished)
}

func TestExtract_MissingFile(t *testing.T) {
	t.Parallel()

	d, err := Extract(filepath.Join(t.TempDir(), "absent.md"), 5)
	require.NoError(t, err)
	assert.False(t, d.HasData)
	assert.Zero(t, d.CompletionRate)
	assert.Empty(t, d.Unfinished)
}

func TestExtract_EmptyPath(t *testing.T) {
	t.Parallel()

	d, err := Extract("", 5)
	require.NoError(t, err)
	assert.False(t, d.HasData)
}

func TestExtract_ReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "2025-01-07 周二.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleChecklist), 0o644))

	d, err := Extract(path, 5)
	require.NoError(t, err)
	assert.True(t, d.HasData)
	assert.Equal(t, 3, d.Completed)
}
