package planner

import (
	"strconv"
	"strings"
	"time"
)

// ── 导出共用的格式化辅助 ──

const (
	isoDateLayout  = "2006-01-02"
	dayLabelLayout = "Mon, Jan 2"
)

// formatHours 以最短小数形式输出学时：2 → "2"，0.75 → "0.75"
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// isoDate YYYY-MM-DD
func isoDate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// dayLabel 人类可读的日期标签，如 "Mon, Jan 6"
func dayLabel(t time.Time) string {
	return t.Format(dayLabelLayout)
}

// csvQuote 总是加引号，内部引号加倍
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
