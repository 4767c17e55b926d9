// Package phase resolves a calendar date to a configured study phase.
package phase

import (
	"fmt"
	"sort"
	"time"

	"github.com/liyichao/plangen/internal/config"
)

// Phase is a study phase with parsed date boundaries.
type Phase struct {
	ID         int
	Name       string
	Start      time.Time
	End        time.Time
	Allocation map[string]float64
}

// FromConfig parses configured phases into resolvable ones.
// Phase order is preserved.
func FromConfig(cfgs []config.Phase) ([]Phase, error) {
	phases := make([]Phase, 0, len(cfgs))
	for _, pc := range cfgs {
		start, err := time.Parse("2006-01-02", pc.Start)
		if err != nil {
			return nil, fmt.Errorf("parse phase %d start: %w", pc.ID, err)
		}
		end, err := time.Parse("2006-01-02", pc.End)
		if err != nil {
			return nil, fmt.Errorf("parse phase %d end: %w", pc.ID, err)
		}
		phases = append(phases, Phase{
			ID:         pc.ID,
			Name:       pc.Name,
			Start:      start,
			End:        end,
			Allocation: pc.Allocation,
		})
	}
	return phases, nil
}

// Resolve returns the phase covering target. When no phase covers it,
// the phase with the closest boundary wins: the earliest phase for dates
// before all phases, the latest phase otherwise. A non-empty phase list
// always resolves.
func Resolve(target time.Time, phases []Phase) (Phase, error) {
	if len(phases) == 0 {
		return Phase{}, config.ErrNoPhases
	}

	day := truncate(target)
	for _, p := range phases {
		if !day.Before(truncate(p.Start)) && !day.After(truncate(p.End)) {
			return p, nil
		}
	}

	ordered := make([]Phase, len(phases))
	copy(ordered, phases)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})
	if day.Before(truncate(ordered[0].Start)) {
		return ordered[0], nil
	}
	return ordered[len(ordered)-1], nil
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
