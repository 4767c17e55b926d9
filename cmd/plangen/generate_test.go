package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/liyichao/plangen/internal/config"
)

func testConfig() config.Config {
	cfg := config.Config{
		Paths: config.Paths{PlanDir: "计划", ErrorRoot: "错题"},
		Phases: []config.Phase{
			{
				ID:    1,
				Name:  "强化",
				Start: "2024-07-01",
				End:   "2025-10-31",
				Allocation: map[string]float64{
					"math": 0.4, "major": 0.3, "english": 0.2, "review": 0.1,
				},
			},
		},
		ErrorIntervals: config.Intervals{Low: []int{3, 7, 15, 30}},
	}
	cfg.ApplyDefaults()
	return cfg
}

func writeErrorItem(t *testing.T, vaultRoot, category, name string) {
	t.Helper()
	dir := filepath.Join(vaultRoot, "错题", category, "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create error item dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatalf("write error item: %v", err)
	}
}

func TestRunGenerate_EndToEnd(t *testing.T) {
	vaultRoot := t.TempDir()
	writeErrorItem(t, vaultRoot, "导数", "20250101-chain-rule.png")

	cfg := testConfig()
	opts := generateOptions{Date: "2025-01-08"}

	res, err := runGenerate(context.Background(), vaultRoot, cfg, opts, nil)
	if err != nil {
		t.Fatalf("run generate: %v", err)
	}
	if !res.Written {
		t.Fatal("expected artifact to be written")
	}
	if res.DueTotal != 1 {
		t.Fatalf("due total = %d, want 1", res.DueTotal)
	}
	if res.CarryCount != 0 {
		t.Fatalf("carry count = %d, want 0", res.CarryCount)
	}

	wantPath := filepath.Join(vaultRoot, "计划", "2025-01-08 周三.md")
	if res.Path != wantPath {
		t.Fatalf("artifact path = %q, want %q", res.Path, wantPath)
	}

	raw, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "- [ ] 导数：1 题") {
		t.Fatalf("artifact missing due-review line:\n%s", content)
	}
	if !strings.Contains(content, "- 昨日完成率：0.0%") {
		t.Fatalf("artifact missing completion line:\n%s", content)
	}
	if !strings.Contains(content, "- [ ] 无昨日未完成任务") {
		t.Fatalf("artifact missing carry-over sentinel:\n%s", content)
	}
}

func TestRunGenerate_SecondRunSkips(t *testing.T) {
	vaultRoot := t.TempDir()
	cfg := testConfig()
	opts := generateOptions{Date: "2025-01-08"}

	first, err := runGenerate(context.Background(), vaultRoot, cfg, opts, nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if !first.Written {
		t.Fatal("first run should write")
	}
	before, err := os.ReadFile(first.Path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	second, err := runGenerate(context.Background(), vaultRoot, cfg, opts, nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Written {
		t.Fatal("second run must not rewrite the artifact")
	}

	after, err := os.ReadFile(first.Path)
	if err != nil {
		t.Fatalf("reread artifact: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("artifact changed on skipped run")
	}
}

func TestRunGenerate_ForceOverwrites(t *testing.T) {
	vaultRoot := t.TempDir()
	cfg := testConfig()

	artifactPath := filepath.Join(vaultRoot, "计划", "2025-01-08 周三.md")
	if err := os.MkdirAll(filepath.Dir(artifactPath), 0o755); err != nil {
		t.Fatalf("create plan dir: %v", err)
	}
	if err := os.WriteFile(artifactPath, []byte("stale\n"), 0o644); err != nil {
		t.Fatalf("seed stale artifact: %v", err)
	}

	res, err := runGenerate(context.Background(), vaultRoot, cfg, generateOptions{Date: "2025-01-08", Force: true}, nil)
	if err != nil {
		t.Fatalf("forced run: %v", err)
	}
	if !res.Written {
		t.Fatal("forced run should write")
	}
	raw, err := os.ReadFile(artifactPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if strings.Contains(string(raw), "stale") {
		t.Fatal("forced run left stale content")
	}
}

func TestRunGenerate_CarriesYesterdayTasks(t *testing.T) {
	vaultRoot := t.TempDir()
	cfg := testConfig()

	planDir := filepath.Join(vaultRoot, "计划")
	if err := os.MkdirAll(planDir, 0o755); err != nil {
		t.Fatalf("create plan dir: %v", err)
	}
	yesterday := "- [x] 数学真题\n- [ ] 英语阅读\n- [ ] 政治选择题\n"
	if err := os.WriteFile(filepath.Join(planDir, "2025-01-07 周二.md"), []byte(yesterday), 0o644); err != nil {
		t.Fatalf("write yesterday plan: %v", err)
	}

	res, err := runGenerate(context.Background(), vaultRoot, cfg, generateOptions{Date: "2025-01-08"}, nil)
	if err != nil {
		t.Fatalf("run generate: %v", err)
	}
	if res.CarryCount != 2 {
		t.Fatalf("carry count = %d, want 2", res.CarryCount)
	}

	raw, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "- [ ] 英语阅读") {
		t.Fatalf("artifact missing carried task:\n%s", content)
	}
	if !strings.Contains(content, "- 昨日完成率：33.3%") {
		t.Fatalf("artifact missing completion rate:\n%s", content)
	}
}

func TestRunGenerate_OutputDirOverride(t *testing.T) {
	vaultRoot := t.TempDir()
	cfg := testConfig()

	res, err := runGenerate(context.Background(), vaultRoot, cfg, generateOptions{Date: "2025-01-08", OutputDir: "其他"}, nil)
	if err != nil {
		t.Fatalf("run generate: %v", err)
	}
	want := filepath.Join(vaultRoot, "其他", "2025-01-08 周三.md")
	if res.Path != want {
		t.Fatalf("artifact path = %q, want %q", res.Path, want)
	}
}

func TestRunGenerate_BadDate(t *testing.T) {
	if _, err := runGenerate(context.Background(), t.TempDir(), testConfig(), generateOptions{Date: "01/08/2025"}, nil); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
