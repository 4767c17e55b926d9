package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "init",
		Short:        "Initialize the vault for plan generation",
		Long:         "Initialize the vault by creating the .plangen directory, the plan directory and a default config.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			vaultRoot, err := os.Getwd()
			if err != nil {
				return err
			}

			plangenDir := filepath.Join(vaultRoot, ".plangen")
			log.Info().Str("dir", plangenDir).Msg("creating plangen directory")
			if err := os.MkdirAll(plangenDir, 0o755); err != nil {
				return fmt.Errorf("create plangen dir: %w", err)
			}

			configPath := filepath.Join(plangenDir, "config.json")
			if _, err := os.Stat(configPath); err == nil {
				log.Info().Msg("config.json already exists, skipping")
			} else {
				log.Info().Str("path", configPath).Msg("installing default config")
				defaultConfig := map[string]any{
					"paths": map[string]any{
						"plan_dir":   "考研计划",
						"error_root": "考研数学/错题",
					},
					"phases": []map[string]any{
						{
							"id":    1,
							"name":  "基础",
							"start": "2026-01-01",
							"end":   "2026-06-30",
							"allocation": map[string]any{
								"math": 0.4, "english": 0.3, "major": 0.2, "review": 0.1,
							},
						},
						{
							"id":    2,
							"name":  "强化",
							"start": "2026-07-01",
							"end":   "2026-10-31",
							"allocation": map[string]any{
								"math": 0.35, "major": 0.3, "english": 0.15, "politics": 0.1, "review": 0.1,
							},
						},
						{
							"id":    3,
							"name":  "冲刺",
							"start": "2026-11-01",
							"end":   "2026-12-20",
							"allocation": map[string]any{
								"math": 0.3, "major": 0.25, "politics": 0.2, "english": 0.1, "review": 0.15,
							},
						},
					},
					"error_intervals": map[string]any{
						"high": []int{1, 3, 7, 15, 30},
						"low":  []int{3, 7, 15, 30},
					},
					"subject_templates": map[string]any{
						"math":   "真题一套 + 错题回顾",
						"major":  "专业课教材精读一章",
						"review": "整理今日错题并归档",
					},
					"generator": map[string]any{"mode": "template"},
				}
				raw, err := json.MarshalIndent(defaultConfig, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal default config: %w", err)
				}
				if err := os.WriteFile(configPath, append(raw, '\n'), 0o644); err != nil {
					return fmt.Errorf("write default config: %w", err)
				}
			}

			planDir := filepath.Join(vaultRoot, "考研计划")
			if err := os.MkdirAll(planDir, 0o755); err != nil {
				return fmt.Errorf("create plan dir: %w", err)
			}
			log.Info().Msg("vault initialized")
			return nil
		},
	}
}
