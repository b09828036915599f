package planner

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// GenerateMarkdown 生成可导入 Notion / Obsidian 的 Markdown 文档
// 只依赖 Plan：模块顺序与学时足以描述课程，不需要排课结果
func (e *Exporter) GenerateMarkdown(plan *model.Plan) string {
	var b strings.Builder

	// 标题
	fmt.Fprintf(&b, "# 📚 %s\n\n", plan.SkillName)
	b.WriteString("> Generated by Skill Learning Buddy\n\n")

	// 概览
	b.WriteString("## 📊 Overview\n\n")
	b.WriteString("| Property | Value |\n")
	b.WriteString("|----------|-------|\n")
	fmt.Fprintf(&b, "| **Timeline** | %s |\n", escapeTableCell(plan.Timeline))
	fmt.Fprintf(&b, "| **Total Hours** | %s |\n", formatHours(plan.TotalHours))
	fmt.Fprintf(&b, "| **Complexity** | %s |\n", plan.Complexity)
	fmt.Fprintf(&b, "| **Feasibility** | %s |\n\n", plan.Feasibility)
	fmt.Fprintf(&b, "**Assessment:** %s\n\n", plan.FeasibilityReason)

	// 模块
	b.WriteString("## 📖 Learning Modules\n\n")
	for idx, topic := range plan.Topics {
		phase := PhaseOf(idx, len(plan.Topics))
		fmt.Fprintf(&b, "### %d. %s %s %s\n\n", idx+1, topic.Title, phaseIcon(phase), phase)

		if topic.Description != "" {
			fmt.Fprintf(&b, "*%s*\n\n", topic.Description)
		}
		fmt.Fprintf(&b, "**Estimated Time:** %s hours\n\n", formatHours(topic.EstimatedHours))

		if len(topic.DetailedGuidance) > 0 {
			b.WriteString("**Steps:**\n")
			for i, step := range topic.DetailedGuidance {
				fmt.Fprintf(&b, "%d. %s\n", i+1, step)
			}
			b.WriteString("\n")
		}

		if len(topic.Resources) > 0 {
			b.WriteString("**Resources:**\n")
			for _, r := range topic.Resources {
				fmt.Fprintf(&b, "- %s [%s](%s)\n", resourceIcon(r.Type), escapeLinkText(r.Title), e.resourceLink(r))
			}
			b.WriteString("\n")
		}

		b.WriteString("---\n\n")
	}

	// 进度清单
	b.WriteString("## ✅ Progress Tracker\n\n")
	for idx, topic := range plan.Topics {
		fmt.Fprintf(&b, "- [ ] Module %d: %s\n", idx+1, topic.Title)
	}

	return b.String()
}

// resourceLink 优先使用直链，否则构造搜索链接
func (e *Exporter) resourceLink(r model.Resource) string {
	if r.URL != "" {
		return r.URL
	}
	return e.searchBaseURL + url.QueryEscape(r.SearchQuery)
}

// phaseIcon 阶段图标，枚举全部取值
func phaseIcon(p model.Phase) string {
	switch p {
	case model.PhaseFoundation:
		return "🌱"
	case model.PhaseIntermediate:
		return "⚡"
	case model.PhaseApplied:
		return "🚀"
	}
	return ""
}

// resourceIcon 资源类型图标，枚举全部取值
// 未知类型在 Plan.Validate / 解码阶段已被拒绝
func resourceIcon(t model.ResourceType) string {
	switch t {
	case model.ResourceVideo:
		return "🎥"
	case model.ResourceCourse:
		return "📚"
	case model.ResourceTool:
		return "🛠️"
	case model.ResourceArticle:
		return "📄"
	}
	return ""
}

var linkTextEscaper = strings.NewReplacer("[", `\[`, "]", `\]`)

func escapeLinkText(s string) string {
	return linkTextEscaper.Replace(s)
}

// 表格单元格内 "|" 会被当作列分隔，换行会截断表格
var tableCellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func escapeTableCell(s string) string {
	return tableCellEscaper.Replace(s)
}
