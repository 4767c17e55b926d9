package main

import (
	"fmt"
	"os"

	"github.com/liyichao/plangen/internal/stats"
	"github.com/liyichao/plangen/internal/vault"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var dateStr string
	var carryLimit int

	cmd := &cobra.Command{
		Use:          "stats",
		Short:        "Show the previous day's completion stats",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			vaultRoot, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(vaultRoot)
			if err != nil {
				return err
			}
			target, err := parseTargetDate(dateStr)
			if err != nil {
				return err
			}
			if carryLimit <= 0 {
				carryLimit = cfg.CarryLimit
			}

			planDir := resolveDir(vaultRoot, cfg.Paths.PlanDir)
			priorPath, _ := vault.FindPlanFile(planDir, target.AddDate(0, 0, -1))
			daily, err := stats.Extract(priorPath, carryLimit)
			if err != nil {
				return err
			}

			if !daily.HasData {
				fmt.Println("no plan artifact found for the previous day")
				return nil
			}
			fmt.Printf("completed: %d\n", daily.Completed)
			fmt.Printf("pending:   %d\n", daily.Pending)
			fmt.Printf("rate:      %.1f%%\n", daily.CompletionRate*100)
			for _, task := range daily.Unfinished {
				fmt.Printf("carry:     %s\n", task)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "target date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&carryLimit, "carry-limit", 0, "max carry-over tasks to list")
	return cmd
}
