package planner

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// ErrWorkbookWrite 生成 Excel 文件失败
var ErrWorkbookWrite = errors.New("生成 Excel 文件失败")

const (
	scheduleSheet = "Schedule"
	summarySheet  = "Summary"
)

// ═══════════════════════════════════════════════════════════
// GenerateXLSX — 导出排课工作簿
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Schedule"：标题行 + 与 CSV 相同的 6 列，每个 Session 一行
//   - Sheet "Summary"：计划摘要 + 各模块学时与排课次数

func (e *Exporter) GenerateXLSX(plan *model.Plan, schedule *model.Schedule) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(scheduleSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookWrite, err)
	}
	f.SetActiveSheet(idx)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookWrite, err)
	}
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	writeScheduleSheet(f, plan, schedule, headerStyle)
	writeSummarySheet(f, plan, schedule, headerStyle)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookWrite, err)
	}
	return buf, nil
}

func writeScheduleSheet(f *excelize.File, plan *model.Plan, schedule *model.Schedule, headerStyle int) {
	f.SetColWidth(scheduleSheet, "A", "A", 12)
	f.SetColWidth(scheduleSheet, "B", "B", 14)
	f.SetColWidth(scheduleSheet, "C", "C", 40)
	f.SetColWidth(scheduleSheet, "D", "F", 11)

	// 标题行
	f.SetCellValue(scheduleSheet, "A1", plan.SkillName+" Learning Plan")
	f.MergeCell(scheduleSheet, "A1", cell(colName(len(csvHeader)-1), 1))
	f.SetCellStyle(scheduleSheet, "A1", "A1", headerStyle)

	// 表头
	for i, h := range csvHeader {
		f.SetCellValue(scheduleSheet, cell(colName(i), 2), h)
	}
	f.SetCellStyle(scheduleSheet, "A2", cell(colName(len(csvHeader)-1), 2), headerStyle)

	// 数据行
	row := 3
	for _, s := range schedule.Sessions {
		f.SetCellValue(scheduleSheet, cell("A", row), isoDate(s.Date))
		f.SetCellValue(scheduleSheet, cell("B", row), dayLabel(s.Date))
		f.SetCellValue(scheduleSheet, cell("C", row), s.TopicTitle)
		f.SetCellValue(scheduleSheet, cell("D", row), s.TopicIndex+1)
		f.SetCellValue(scheduleSheet, cell("E", row), s.Hours)
		f.SetCellValue(scheduleSheet, cell("F", row), "No")
		row++
	}
}

func writeSummarySheet(f *excelize.File, plan *model.Plan, schedule *model.Schedule, headerStyle int) {
	f.SetColWidth(summarySheet, "A", "A", 20)
	f.SetColWidth(summarySheet, "B", "B", 48)
	f.SetColWidth(summarySheet, "C", "E", 14)

	pairs := [][2]interface{}{
		{"Skill", plan.SkillName},
		{"Timeline", plan.Timeline},
		{"Complexity", string(plan.Complexity)},
		{"Total Hours", plan.TotalHours},
		{"Feasibility", string(plan.Feasibility)},
		{"Feasibility Reason", plan.FeasibilityReason},
		{"Hours / Day", schedule.Cadence.HoursPerDay},
		{"Days / Week", schedule.Cadence.DaysPerWeek},
		{"Total Weeks", schedule.TotalWeeks},
	}
	row := 1
	for _, kv := range pairs {
		f.SetCellValue(summarySheet, cell("A", row), kv[0])
		f.SetCellValue(summarySheet, cell("B", row), kv[1])
		row++
	}

	// 各模块统计
	row++
	for i, h := range []string{"Module #", "Topic", "Phase", "Estimated Hours", "Sessions"} {
		f.SetCellValue(summarySheet, cell(colName(i), row), h)
	}
	f.SetCellStyle(summarySheet, cell("A", row), cell("E", row), headerStyle)
	row++

	sessionCount := make(map[int]int, len(plan.Topics))
	for _, s := range schedule.Sessions {
		sessionCount[s.TopicIndex]++
	}
	for i, t := range plan.Topics {
		f.SetCellValue(summarySheet, cell("A", row), i+1)
		f.SetCellValue(summarySheet, cell("B", row), t.Title)
		f.SetCellValue(summarySheet, cell("C", row), string(PhaseOf(i, len(plan.Topics))))
		f.SetCellValue(summarySheet, cell("D", row), t.EstimatedHours)
		f.SetCellValue(summarySheet, cell("E", row), sessionCount[i])
		row++
	}
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
