package main

import (
	"fmt"

	"github.com/liyichao/plangen/internal/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:          "runs",
		Short:        "List recent plan generation runs",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDB, _, closeFn, err := openDB()
			if err != nil {
				return err
			}
			defer closeFn()

			records, err := db.NewStore(storeDB).ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				log.Info().Msg("no runs recorded yet")
				return nil
			}
			for _, rec := range records {
				status := "skipped"
				if rec.Written {
					status = "written"
				}
				fmt.Printf("%s\t%s\t%s\t%s\tdue=%d carry=%d\n",
					rec.CreatedAt, rec.PlanDate, rec.Mode, status, rec.DueTotal, rec.CarryCount)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "max runs to list")
	return cmd
}
