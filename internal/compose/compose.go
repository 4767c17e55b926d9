// Package compose assembles the daily plan artifact from its upstream
// parts, either by deterministic template render or by delegating to an
// external text-generation provider.
package compose

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/liyichao/plangen/internal/config"
	"github.com/liyichao/plangen/internal/phase"
	"github.com/liyichao/plangen/internal/review"
	"github.com/liyichao/plangen/internal/schedule"
	"github.com/liyichao/plangen/internal/stats"
	"github.com/liyichao/plangen/internal/vault"
	"github.com/rs/zerolog/log"
)

// Generator produces the artifact body from a prompt. Satisfied by
// textgen providers.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Input gathers everything the assembler needs for one day.
type Input struct {
	Date         time.Time
	Weekday      string
	WeekdayNames []string
	Phase        phase.Phase
	Stats        stats.Daily
	Due          review.Summary
	Blocks       []schedule.Block
	Milestones   []string
}

// Assemble produces the finished artifact content under the selected
// strategy. In AI mode a provider failure or empty response aborts the
// run; nothing is retried locally.
func Assemble(ctx context.Context, mode string, in Input, gen Generator) (string, error) {
	switch mode {
	case config.ModeTemplate:
		return Render(in), nil
	case config.ModeAI:
		if gen == nil {
			return "", fmt.Errorf("ai mode requires a configured text generator")
		}
		content, err := gen.Generate(ctx, BuildPrompt(in))
		if err != nil {
			return "", fmt.Errorf("generate plan content: %w", err)
		}
		content = strings.TrimSpace(content)
		if !strings.HasPrefix(content, "---") {
			// Requested format is not enforced; flag drift for the user.
			log.Warn().Msg("generated plan is missing a frontmatter block")
		}
		return content, nil
	default:
		return "", fmt.Errorf("unsupported generator mode %q", mode)
	}
}

func formatAllocation(allocation map[string]float64) string {
	type pair struct {
		key    string
		weight float64
	}
	pairs := make([]pair, 0, len(allocation))
	for key, weight := range allocation {
		pairs = append(pairs, pair{key, weight})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].weight != pairs[j].weight {
			return pairs[i].weight > pairs[j].weight
		}
		return pairs[i].key < pairs[j].key
	})

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s %.0f%%", schedule.Label(p.key), p.weight*100))
	}
	return strings.Join(parts, "，")
}

func adjacentLabel(date time.Time, names []string) string {
	return fmt.Sprintf("%s %s", date.Format("2006-01-02"), vault.WeekdayLabel(date, names))
}
