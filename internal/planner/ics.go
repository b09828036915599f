package planner

import (
	"fmt"
	"math"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// ── ICS 导出 ──────────────────────────────────────────────
//
// 每个 Session 一个 VEVENT：
//   - DTSTART = Session 日期 + 固定学习时刻（默认 09:00，Session 日期所在时区）
//   - DTEND   = DTSTART + ceil(hours) 小时，不足 1 小时按 1 小时占位
//   - UID     = session-<序号>-<生成时间戳>@<domain>，仅保证单次导出内唯一
//   - 不写入资源链接
// ─────────────────────────────────────────────────────────────

// GenerateICS 生成日历文本（RFC 5545）
func (e *Exporter) GenerateICS(plan *model.Plan, schedule *model.Schedule) string {
	generatedAt := e.now()
	stamp := generatedAt.UnixMilli()

	cal := ics.NewCalendar()
	cal.SetProductId(e.productID)
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(plan.SkillName + " Learning Plan")

	for idx, session := range schedule.Sessions {
		start, end := e.sessionWindow(session)

		event := cal.AddEvent(fmt.Sprintf("session-%d-%d@%s", idx, stamp, e.calendarDomain))
		event.SetDtStampTime(generatedAt)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(session.TopicTitle)
		event.SetDescription(fmt.Sprintf(
			"Learning session for %s\n\nTopic: %s\nDuration: %s hour(s)",
			plan.SkillName, session.TopicTitle, formatHours(session.Hours),
		))
		event.SetStatus(ics.ObjectStatusConfirmed)
	}

	return cal.Serialize()
}

// sessionWindow 计算事件起止时间
func (e *Exporter) sessionWindow(session model.Session) (time.Time, time.Time) {
	y, m, d := session.Date.Date()
	start := time.Date(y, m, d, e.startHour, 0, 0, 0, session.Date.Location())
	blocks := int(math.Ceil(session.Hours))
	if blocks < 1 {
		blocks = 1
	}
	return start, start.Add(time.Duration(blocks) * time.Hour)
}
