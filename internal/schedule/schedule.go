// Package schedule assigns subjects to the day's fixed time blocks.
package schedule

import "sort"

// Window is a fixed wall-clock study window.
type Window struct {
	Start string
	End   string
}

// DefaultWindows is the standard six-block study day.
var DefaultWindows = []Window{
	{"08:00", "10:00"},
	{"10:20", "12:00"},
	{"14:00", "16:00"},
	{"16:20", "18:00"},
	{"19:00", "21:00"},
	{"21:10", "21:40"},
}

// Block is one scheduled time block.
type Block struct {
	Start   string
	End     string
	Subject string
	Label   string
	Emoji   string
	Task    string
}

var subjectLabels = map[string]string{
	"math":        "数学",
	"major":       "专业课",
	"english":     "英语",
	"competition": "竞赛",
	"politics":    "政治",
	"review":      "复盘",
}

var subjectEmoji = map[string]string{
	"math":        "🧮",
	"major":       "📡",
	"english":     "📝",
	"competition": "💻",
	"politics":    "📚",
	"review":      "📊",
}

var defaultSubjects = []string{"math", "major", "english", "review"}

const subjectReview = "review"

// SubjectOrder derives the subject priority order from allocation
// weights: heaviest first, ties broken by subject key so the result is
// stable across runs. Unknown subjects are dropped; an empty result
// falls back to the default subject list.
func SubjectOrder(allocation map[string]float64) []string {
	type pair struct {
		key    string
		weight float64
	}
	pairs := make([]pair, 0, len(allocation))
	for key, weight := range allocation {
		if _, known := subjectLabels[key]; !known {
			continue
		}
		pairs = append(pairs, pair{key, weight})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].weight != pairs[j].weight {
			return pairs[i].weight > pairs[j].weight
		}
		return pairs[i].key < pairs[j].key
	})

	if len(pairs) == 0 {
		return append([]string(nil), defaultSubjects...)
	}
	subjects := make([]string, len(pairs))
	for i, p := range pairs {
		subjects[i] = p.key
	}
	return subjects
}

// Allocate assigns subjects to windows round-robin by allocation
// priority. The final window is forced to review whenever review is
// among the prioritized subjects, so every day ends with a review slot.
// Pure: identical inputs always produce identical blocks.
func Allocate(allocation map[string]float64, windows []Window, templates map[string]string) []Block {
	subjects := SubjectOrder(allocation)

	blocks := make([]Block, 0, len(windows))
	for i, w := range windows {
		subject := subjects[i%len(subjects)]
		if i == len(windows)-1 && contains(subjects, subjectReview) {
			subject = subjectReview
		}

		label := subjectLabels[subject]
		emoji := subjectEmoji[subject]
		if emoji == "" {
			emoji = "📌"
		}
		task := templates[subject]
		if task == "" {
			task = label + "重点任务"
		}

		blocks = append(blocks, Block{
			Start:   w.Start,
			End:     w.End,
			Subject: subject,
			Label:   label,
			Emoji:   emoji,
			Task:    task,
		})
	}
	return blocks
}

func contains(subjects []string, want string) bool {
	for _, s := range subjects {
		if s == want {
			return true
		}
	}
	return false
}

// Label returns the display label for a subject key, falling back to
// the key itself.
func Label(subject string) string {
	if label, ok := subjectLabels[subject]; ok {
		return label
	}
	return subject
}
