// Package planner 将学习计划排入日历并导出为 ICS / CSV / Markdown / XLSX。
// 包内全部为纯函数，不做 I/O，也不记录日志。
package planner

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// ── 排课模块错误 ──

var (
	// ErrInvalidCadence hoursPerDay <= 0 或 daysPerWeek 不在 [1,7]，直接拒绝，不做钳制
	ErrInvalidCadence = errors.New("学习节奏参数无效")
	// ErrMalformedTopic 模块学时非正数
	ErrMalformedTopic = model.ErrMalformedTopic
	// ErrScheduleTooLarge 总学时 / 每天学时超出 MaxSessions
	ErrScheduleTooLarge = errors.New("排课结果过大")
)

// MaxSessions 单次排课允许的学习日上限（每天学习约 27 年）
const MaxSessions = 10000

// residueEpsilon 视为浮点残差的最大舍入幅度
const residueEpsilon = 1e-9

// completionTolerance 剩余学时不超过 模块学时 × 该比例 即视为完成
const completionTolerance = 1e-9

// hourPrecision 剩余学时的舍入精度（微小时），避免浮点残差多排一天
const hourPrecision = 1e6

// canonicalWeek 学习日固定取序：周一 … 周日
// daysPerWeek < 7 时总是先去掉周日，再去掉周六，依此类推
var canonicalWeek = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ValidateCadence 校验学习节奏
func ValidateCadence(hoursPerDay float64, daysPerWeek int) error {
	if !(hoursPerDay > 0) || math.IsInf(hoursPerDay, 0) {
		return fmt.Errorf("%w: hoursPerDay=%v 必须为正数", ErrInvalidCadence, hoursPerDay)
	}
	if daysPerWeek < 1 || daysPerWeek > 7 {
		return fmt.Errorf("%w: daysPerWeek=%d 必须在 1-7 之间", ErrInvalidCadence, daysPerWeek)
	}
	return nil
}

// StudyWeekdays 返回 daysPerWeek 对应的学习日集合（按周一起始的固定顺序）
func StudyWeekdays(daysPerWeek int) ([]time.Weekday, error) {
	if daysPerWeek < 1 || daysPerWeek > 7 {
		return nil, fmt.Errorf("%w: daysPerWeek=%d 必须在 1-7 之间", ErrInvalidCadence, daysPerWeek)
	}
	days := make([]time.Weekday, daysPerWeek)
	copy(days, canonicalWeek[:daysPerWeek])
	return days, nil
}

// ═══════════════════════════════════════════════════════════
// GenerateSchedule — 单遍贪心排课
// ═══════════════════════════════════════════════════════════
//
// 规则：
//   - 从 startDate 当天起逐日前进，非学习日跳过
//   - 每个学习日只排一个模块：hours = min(hoursPerDay, 该模块剩余学时)
//   - 剩余学时 <= 0 即视为模块完成，游标移到下一模块
//   - 学时小于 hoursPerDay 的模块仍独占当天，不与下一模块拼课
//
// topics 为空时返回零个 Session 的合法排课结果（endDate = startDate）。

func GenerateSchedule(topics []model.Topic, hoursPerDay float64, daysPerWeek int, startDate time.Time) (*model.Schedule, error) {
	if err := ValidateCadence(hoursPerDay, daysPerWeek); err != nil {
		return nil, err
	}
	for i := range topics {
		if err := topics[i].Validate(); err != nil {
			return nil, err
		}
	}

	weekdays, _ := StudyWeekdays(daysPerWeek)
	var studyDay [7]bool
	for _, wd := range weekdays {
		studyDay[wd] = true
	}

	estimated := estimateSessions(topics, hoursPerDay)
	if estimated > MaxSessions {
		return nil, fmt.Errorf("%w: 预计 %.0f 个学习日，上限 %d", ErrScheduleTooLarge, estimated, MaxSessions)
	}
	// 浮点残差最多让每个模块多出一次
	limit := int(estimated) + len(topics)

	start := dateOf(startDate)
	sessions := make([]model.Session, 0, int(estimated))

	current := start
	topicIndex := 0
	remaining := 0.0
	if len(topics) > 0 {
		remaining = topics[0].EstimatedHours
	}

	for topicIndex < len(topics) {
		if len(sessions) >= limit {
			return nil, fmt.Errorf("%w: 超过 %d 个学习日仍未排完", ErrScheduleTooLarge, limit)
		}
		for !studyDay[current.Weekday()] {
			current = current.AddDate(0, 0, 1)
		}

		hours := math.Min(hoursPerDay, remaining)
		sessions = append(sessions, model.Session{
			Date:       current,
			TopicIndex: topicIndex,
			TopicTitle: topics[topicIndex].Title,
			Hours:      hours,
			Phase:      PhaseOf(topicIndex, len(topics)),
		})

		remaining = nextRemaining(remaining, hours)
		if remaining <= completionTolerance*topics[topicIndex].EstimatedHours {
			topicIndex++
			if topicIndex < len(topics) {
				remaining = topics[topicIndex].EstimatedHours
			}
		}

		current = current.AddDate(0, 0, 1)
	}

	endDate := start
	if len(sessions) > 0 {
		endDate = sessions[len(sessions)-1].Date
	}

	return &model.Schedule{
		Sessions:   sessions,
		StartDate:  start,
		EndDate:    endDate,
		TotalWeeks: ceilDiv(len(sessions), daysPerWeek),
		Cadence: model.Cadence{
			HoursPerDay: hoursPerDay,
			DaysPerWeek: daysPerWeek,
		},
	}, nil
}

// ── 辅助函数 ──

// dateOf 截取日历日期（保留时区），排课不关心一天中的时刻
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func roundHours(h float64) float64 {
	return math.Round(h*hourPrecision) / hourPrecision
}

// nextRemaining 扣减学时，只把浮点残差舍入到微小时
// 舍入幅度超过残差量级（hoursPerDay 小于精度）或会抵消本次扣减时保留原值
func nextRemaining(remaining, hours float64) float64 {
	next := remaining - hours
	if r := roundHours(next); r < remaining && math.Abs(r-next) <= residueEpsilon {
		return r
	}
	return next
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

// estimateSessions 各模块 ceil(学时 / 每天学时) 之和，用于上限校验与切片预分配
func estimateSessions(topics []model.Topic, hoursPerDay float64) float64 {
	n := 0.0
	for _, t := range topics {
		n += math.Ceil(t.EstimatedHours / hoursPerDay)
	}
	return n
}
