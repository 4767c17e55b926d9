package compose

import (
	"fmt"
	"strings"
)

// promptCarryLimit caps how many unfinished tasks the prompt embeds,
// independent of the configured carry limit.
const promptCarryLimit = 20

// BuildPrompt constructs the instruction for the external
// text-generation provider in AI mode. The structured inputs match the
// deterministic render; the output format is requested verbatim but not
// enforced.
func BuildPrompt(in Input) string {
	unfinished := in.Stats.Unfinished
	if len(unfinished) > promptCarryLimit {
		unfinished = unfinished[:promptCarryLimit]
	}
	var incompleteText string
	switch {
	case !in.Stats.HasData:
		incompleteText = "- 无昨日计划文件或未记录任务"
	case len(unfinished) == 0:
		incompleteText = "- 无"
	default:
		lines := make([]string, len(unfinished))
		for i, task := range unfinished {
			lines[i] = "- " + task
		}
		incompleteText = strings.Join(lines, "\n")
	}

	reviewText := "- 今日无命中间隔的错题复习"
	if len(in.Due) > 0 {
		lines := make([]string, len(in.Due))
		for i, c := range in.Due {
			lines[i] = fmt.Sprintf("- %s: %d 题", c.Category, c.Count)
		}
		reviewText = strings.Join(lines, "\n")
	}

	milestoneText := "- 本月无里程碑配置"
	if len(in.Milestones) > 0 {
		lines := make([]string, len(in.Milestones))
		for i, m := range in.Milestones {
			lines[i] = "- " + m
		}
		milestoneText = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`你是考研计划助理，请生成今天的 Obsidian 每日计划。

今日信息：
- 日期：%s
- 周几：%s
- 当前阶段：Phase %d · %s
- 当前阶段资源分配：%s

昨日执行：
- 完成任务数：%d
- 未完成任务数：%d
- 完成率：%.1f%%
- 未完成任务列表：
%s

今日待复习错题数（按章节）：
%s

本月里程碑：
%s

输出要求：
- 语言：中文
- 计划要结合昨日未完成任务延续安排
- 任务内容要可执行、具体，且匹配当前阶段分配
- 数学任务优先根据错题复习章节安排

严格遵循以下格式：
1. frontmatter: date/weekday/phase/type: daily-plan/status: pending/tags
2. 标题: # 📋 M.DD 周X · 主题
3. 战略重心 callout: > [!tip] 今日战略重心
4. 时间表: - [ ] HH:MM – HH:MM | 科目emoji | 描述
   科目emoji: 🔢 数学, 🔤 英语, 📡 专业课, 💻 项目, 📝 复盘
5. 晚间复盘表: | 指标 | 计划 | 实际 |
6. 关联区: 上一日/下一日 wikilink
`,
		in.Date.Format("2006-01-02"),
		in.Weekday,
		in.Phase.ID,
		in.Phase.Name,
		formatAllocation(in.Phase.Allocation),
		in.Stats.Completed,
		in.Stats.Pending,
		in.Stats.CompletionRate*100,
		incompleteText,
		reviewText,
		milestoneText,
	)
}
