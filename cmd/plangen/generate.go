package main

import (
	"context"
	"os"
	"time"

	"github.com/liyichao/plangen/internal/compose"
	"github.com/liyichao/plangen/internal/config"
	"github.com/liyichao/plangen/internal/db"
	"github.com/liyichao/plangen/internal/phase"
	"github.com/liyichao/plangen/internal/review"
	"github.com/liyichao/plangen/internal/schedule"
	"github.com/liyichao/plangen/internal/stats"
	"github.com/liyichao/plangen/internal/textgen"
	"github.com/liyichao/plangen/internal/vault"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	Date       string
	OutputDir  string
	CarryLimit int
	Force      bool
}

type generateResult struct {
	Path       string
	Written    bool
	DueTotal   int
	CarryCount int
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate today's plan artifact",
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

			var gen compose.Generator
			if cfg.Generator.Mode == config.ModeAI {
				gen, err = textgen.New(textgen.Config{
					Provider:  cfg.AI.Provider,
					Model:     cfg.AI.Model,
					BaseURL:   cfg.AI.BaseURL,
					APIKey:    cfg.AI.APIKey,
					APIKeyEnv: cfg.AI.APIKeyEnv,
					Timeout:   time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
				}, nil)
				if err != nil {
					return err
				}
			}

			res, err := runGenerate(cmd.Context(), vaultRoot, cfg, opts, gen)
			if err != nil {
				return err
			}

			recordRun(cmd.Context(), cfg, opts, res)

			if res.Written {
				log.Info().Str("path", res.Path).Int("due_items", res.DueTotal).Msg("plan generated")
			} else {
				log.Info().Str("path", res.Path).Msg("plan already exists, skipping")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "target date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "override the configured plan directory")
	cmd.Flags().IntVar(&opts.CarryLimit, "carry-limit", 0, "max carry-over tasks from yesterday")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing plan artifact")
	return cmd
}

// runGenerate assembles and persists the plan for one day. The content
// is fully built in memory before any write; an existing artifact
// without force short-circuits before any upstream work.
func runGenerate(ctx context.Context, vaultRoot string, cfg config.Config, opts generateOptions, gen compose.Generator) (generateResult, error) {
	target, err := parseTargetDate(opts.Date)
	if err != nil {
		return generateResult{}, err
	}

	planDir := resolveDir(vaultRoot, cfg.Paths.PlanDir)
	if opts.OutputDir != "" {
		planDir = resolveDir(vaultRoot, opts.OutputDir)
	}
	carryLimit := cfg.CarryLimit
	if opts.CarryLimit > 0 {
		carryLimit = opts.CarryLimit
	}

	weekday := vault.WeekdayLabel(target, cfg.WeekdayNames)
	outPath := vault.PlanPath(planDir, target, weekday)
	if vault.Exists(outPath) && !opts.Force {
		return generateResult{Path: outPath}, nil
	}

	phases, err := phase.FromConfig(cfg.Phases)
	if err != nil {
		return generateResult{}, err
	}
	ph, err := phase.Resolve(target, phases)
	if err != nil {
		return generateResult{}, err
	}

	priorPath, _ := vault.FindPlanFile(planDir, target.AddDate(0, 0, -1))
	daily, err := stats.Extract(priorPath, carryLimit)
	if err != nil {
		return generateResult{}, err
	}

	due := review.Scan(
		resolveDir(vaultRoot, cfg.Paths.ErrorRoot),
		review.NewIntervals(cfg.ErrorIntervals),
		review.DefaultClassifier(),
		target,
	)

	blocks := schedule.Allocate(ph.Allocation, schedule.DefaultWindows, cfg.SubjectTemplates)

	in := compose.Input{
		Date:         target,
		Weekday:      weekday,
		WeekdayNames: cfg.WeekdayNames,
		Phase:        ph,
		Stats:        daily,
		Due:          due,
		Blocks:       blocks,
		Milestones:   cfg.Milestones[target.Format("2006-01")],
	}
	content, err := compose.Assemble(ctx, cfg.Generator.Mode, in, gen)
	if err != nil {
		return generateResult{}, err
	}

	written, err := vault.Write(outPath, content, opts.Force)
	if err != nil {
		return generateResult{}, err
	}
	return generateResult{
		Path:       outPath,
		Written:    written,
		DueTotal:   due.Total(),
		CarryCount: len(daily.Unfinished),
	}, nil
}

// recordRun appends to the generation ledger. Ledger failures never
// fail a run that already produced its artifact.
func recordRun(ctx context.Context, cfg config.Config, opts generateOptions, res generateResult) {
	storeDB, _, closeFn, err := openDB()
	if err != nil {
		log.Warn().Err(err).Msg("open run ledger")
		return
	}
	defer closeFn()

	target, err := parseTargetDate(opts.Date)
	if err != nil {
		return
	}
	rec := db.RunRecord{
		PlanDate:     target.Format("2006-01-02"),
		Mode:         cfg.Generator.Mode,
		ArtifactPath: res.Path,
		DueTotal:     res.DueTotal,
		CarryCount:   res.CarryCount,
		Written:      res.Written,
	}
	if err := db.NewStore(storeDB).RecordRun(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("record run")
	}
}
