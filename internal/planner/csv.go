package planner

import (
	"strconv"
	"strings"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// csvHeader 表头列与数据行一一对应
var csvHeader = []string{"Date", "Day", "Topic", "Module #", "Hours", "Completed"}

// GenerateCSV 生成排课表格文本
//
// 数据行之后是一个空行和计划摘要（仅供阅读，不保证可回读）。
// 日期标签含逗号，与模块标题一样总是加引号，保证每行恰好 6 列。
// 完成状态属于界面状态，这里固定为 "No"。
func (e *Exporter) GenerateCSV(plan *model.Plan, schedule *model.Schedule) string {
	rows := make([]string, 0, len(schedule.Sessions)+9)
	rows = append(rows, strings.Join(csvHeader, ","))

	for _, s := range schedule.Sessions {
		rows = append(rows, strings.Join([]string{
			isoDate(s.Date),
			csvQuote(dayLabel(s.Date)),
			csvQuote(s.TopicTitle),
			strconv.Itoa(s.TopicIndex + 1),
			formatHours(s.Hours),
			"No",
		}, ","))
	}

	rows = append(rows,
		"",
		"--- LEARNING PLAN SUMMARY ---",
		"Skill,"+csvQuote(plan.SkillName),
		"Timeline,"+csvQuote(plan.Timeline),
		"Complexity,"+string(plan.Complexity),
		"Total Hours,"+formatHours(plan.TotalHours),
		"Feasibility,"+string(plan.Feasibility),
		"Feasibility Reason,"+csvQuote(plan.FeasibilityReason),
	)

	return strings.Join(rows, "\n")
}
