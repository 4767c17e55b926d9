package main

import (
	"fmt"
	"os"

	"github.com/liyichao/plangen/internal/review"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func dueCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:          "due",
		Short:        "Show the error items due for review today",
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

			summary := review.Scan(
				resolveDir(vaultRoot, cfg.Paths.ErrorRoot),
				review.NewIntervals(cfg.ErrorIntervals),
				review.DefaultClassifier(),
				target,
			)
			if len(summary) == 0 {
				log.Info().Str("date", target.Format("2006-01-02")).Msg("no error items due")
				return nil
			}
			for _, c := range summary {
				fmt.Printf("%s\t%d\n", c.Category, c.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "target date (YYYY-MM-DD, default today)")
	return cmd
}
