package compose

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type frontMatter struct {
	Date    string   `yaml:"date"`
	Weekday string   `yaml:"weekday"`
	Phase   string   `yaml:"phase"`
	Type    string   `yaml:"type"`
	Status  string   `yaml:"status"`
	Tags    []string `yaml:"tags"`
}

// Render formats the deterministic Markdown artifact. No external
// calls: identical inputs produce identical documents.
func Render(in Input) string {
	var b strings.Builder

	fm := frontMatter{
		Date:    in.Date.Format("2006-01-02"),
		Weekday: in.Weekday,
		Phase:   fmt.Sprintf("Phase %d - %s", in.Phase.ID, in.Phase.Name),
		Type:    "daily-plan",
		Status:  "pending",
		Tags:    []string{"kaoyan", "daily-plan"},
	}
	fmBytes, err := yaml.Marshal(fm)
	if err != nil {
		// frontMatter holds only strings and a string slice; marshal
		// cannot fail on it.
		panic(err)
	}
	b.WriteString("---\n")
	b.Write(fmBytes)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# 📝 %s %s · 每日学习计划\n\n", in.Date.Format("01.02"), in.Weekday)
	b.WriteString("> [!tip] 今日重点\n")
	b.WriteString("> 先完成数学和专业课主任务，晚间统一复盘并回收错题。\n\n")

	b.WriteString("## 昨日延续\n")
	fmt.Fprintf(&b, "- 昨日完成率：%.1f%%\n", in.Stats.CompletionRate*100)
	if len(in.Stats.Unfinished) == 0 {
		b.WriteString("- [ ] 无昨日未完成任务\n")
	} else {
		for _, task := range in.Stats.Unfinished {
			fmt.Fprintf(&b, "- [ ] %s\n", task)
		}
	}
	b.WriteString("\n")

	b.WriteString("## 错题复习\n")
	if len(in.Due) == 0 {
		b.WriteString("- 今日无命中间隔的错题复习\n")
	} else {
		for _, c := range in.Due {
			fmt.Fprintf(&b, "- [ ] %s：%d 题\n", c.Category, c.Count)
		}
	}
	b.WriteString("\n")

	b.WriteString("## 时间块任务\n")
	for _, block := range in.Blocks {
		fmt.Fprintf(&b, "- [ ] %s - %s | %s %s | %s\n", block.Start, block.End, block.Emoji, block.Label, block.Task)
	}
	b.WriteString("\n")

	if len(in.Milestones) > 0 {
		b.WriteString("## 本月里程碑\n")
		for _, m := range in.Milestones {
			fmt.Fprintf(&b, "- %s\n", m)
		}
		b.WriteString("\n")
	}

	b.WriteString("## 晚间复盘\n")
	b.WriteString("| 指标 | 计划 | 实际 |\n")
	b.WriteString("| --- | --- | --- |\n")
	b.WriteString("| 总完成率 | >= 80% | |\n")
	b.WriteString("| 数学专注时长 | >= 3h | |\n")
	b.WriteString("| 今日新增错题 | <= 5题 | |\n\n")

	b.WriteString("## 关联\n")
	fmt.Fprintf(&b, "- 上一日：[[%s]]\n", adjacentLabel(in.Date.AddDate(0, 0, -1), in.WeekdayNames))
	fmt.Fprintf(&b, "- 下一日：[[%s]]\n", adjacentLabel(in.Date.AddDate(0, 0, 1), in.WeekdayNames))

	return b.String()
}
