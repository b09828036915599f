package planner

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// ── 测试辅助 ──

// monday 2026-01-05 为周一
var monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func topicsWithHours(hours ...float64) []model.Topic {
	topics := make([]model.Topic, len(hours))
	for i, h := range hours {
		topics[i] = model.Topic{
			Title:          "Topic " + string(rune('A'+i)),
			EstimatedHours: h,
		}
	}
	return topics
}

func mustSchedule(t *testing.T, topics []model.Topic, hoursPerDay float64, daysPerWeek int, start time.Time) *model.Schedule {
	t.Helper()
	s, err := GenerateSchedule(topics, hoursPerDay, daysPerWeek, start)
	if err != nil {
		t.Fatalf("GenerateSchedule 应成功: %v", err)
	}
	return s
}

// ════════════════════════════════════════════════════════════
// 具体场景
// ════════════════════════════════════════════════════════════

func TestGenerateSchedule_FiveDayWeek(t *testing.T) {
	s := mustSchedule(t, topicsWithHours(5, 3), 2, 5, monday)

	want := []struct {
		weekday time.Weekday
		hours   float64
		topic   int
	}{
		{time.Monday, 2, 0},
		{time.Tuesday, 2, 0},
		{time.Wednesday, 1, 0},
		{time.Thursday, 2, 1},
		{time.Friday, 1, 1},
	}

	if len(s.Sessions) != len(want) {
		t.Fatalf("期望 %d 个 Session，实际 %d", len(want), len(s.Sessions))
	}
	for i, w := range want {
		got := s.Sessions[i]
		if got.Date.Weekday() != w.weekday {
			t.Errorf("Session[%d] 期望 %s，实际 %s", i, w.weekday, got.Date.Weekday())
		}
		if got.Hours != w.hours {
			t.Errorf("Session[%d] 期望 %v 小时，实际 %v", i, w.hours, got.Hours)
		}
		if got.TopicIndex != w.topic {
			t.Errorf("Session[%d] 期望模块 %d，实际 %d", i, w.topic, got.TopicIndex)
		}
	}
	if s.TotalWeeks != 1 {
		t.Errorf("期望 TotalWeeks=1，实际=%d", s.TotalWeeks)
	}
	if !s.EndDate.Equal(monday.AddDate(0, 0, 4)) {
		t.Errorf("期望 EndDate 为周五，实际=%s", s.EndDate)
	}
	if s.Sessions[3].TopicTitle != "Topic B" {
		t.Errorf("TopicTitle 应为模块标题副本，实际=%s", s.Sessions[3].TopicTitle)
	}
}

func TestGenerateSchedule_EmptyTopics(t *testing.T) {
	s := mustSchedule(t, nil, 2, 5, monday)

	if len(s.Sessions) != 0 {
		t.Errorf("期望 0 个 Session，实际 %d", len(s.Sessions))
	}
	if s.TotalWeeks != 0 {
		t.Errorf("期望 TotalWeeks=0，实际=%d", s.TotalWeeks)
	}
	if !s.EndDate.Equal(s.StartDate) {
		t.Errorf("期望 EndDate=StartDate，实际 %s / %s", s.EndDate, s.StartDate)
	}
}

func TestGenerateSchedule_InvalidCadence(t *testing.T) {
	cases := []struct {
		name        string
		hoursPerDay float64
		daysPerWeek int
	}{
		{"零学时", 0, 5},
		{"负学时", -1, 5},
		{"NaN", math.NaN(), 5},
		{"无穷大", math.Inf(1), 5},
		{"零天", 2, 0},
		{"八天", 2, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateSchedule(topicsWithHours(5), tc.hoursPerDay, tc.daysPerWeek, monday)
			if !errors.Is(err, ErrInvalidCadence) {
				t.Errorf("期望 ErrInvalidCadence，实际: %v", err)
			}
		})
	}
}

func TestGenerateSchedule_InvalidCadenceWithEmptyTopics(t *testing.T) {
	_, err := GenerateSchedule(nil, 0, 5, monday)
	if !errors.Is(err, ErrInvalidCadence) {
		t.Errorf("空模块也应先校验节奏，实际: %v", err)
	}
}

func TestGenerateSchedule_MalformedTopic(t *testing.T) {
	for _, h := range []float64{0, -3, math.NaN()} {
		_, err := GenerateSchedule(topicsWithHours(4, h), 2, 5, monday)
		if !errors.Is(err, ErrMalformedTopic) {
			t.Errorf("hours=%v 期望 ErrMalformedTopic，实际: %v", h, err)
		}
	}
}

func TestGenerateSchedule_SmallTopicOwnsWholeDay(t *testing.T) {
	s := mustSchedule(t, topicsWithHours(0.5, 0.5, 0.5), 2, 7, monday)

	if len(s.Sessions) != 3 {
		t.Fatalf("每个小模块应独占一天，期望 3 个 Session，实际 %d", len(s.Sessions))
	}
	for i, sess := range s.Sessions {
		if sess.Hours != 0.5 {
			t.Errorf("Session[%d] 期望 0.5 小时，实际 %v", i, sess.Hours)
		}
		if !sess.Date.Equal(monday.AddDate(0, 0, i)) {
			t.Errorf("Session[%d] 日期错误: %s", i, sess.Date)
		}
	}
}

func TestGenerateSchedule_StartsOnWeekend(t *testing.T) {
	saturday := monday.AddDate(0, 0, 5)
	s := mustSchedule(t, topicsWithHours(1), 1, 5, saturday)

	if len(s.Sessions) != 1 {
		t.Fatalf("期望 1 个 Session，实际 %d", len(s.Sessions))
	}
	if got := s.Sessions[0].Date; !got.Equal(monday.AddDate(0, 0, 7)) {
		t.Errorf("周六开始应顺延到下周一，实际 %s", got)
	}
	if !s.StartDate.Equal(saturday) {
		t.Errorf("StartDate 应保留输入日期，实际 %s", s.StartDate)
	}
}

func TestGenerateSchedule_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	start := time.Date(2026, time.January, 5, 22, 45, 0, 0, loc)
	s := mustSchedule(t, topicsWithHours(1), 1, 7, start)

	d := s.Sessions[0].Date
	if d.Hour() != 0 || d.Minute() != 0 || d.Day() != 5 {
		t.Errorf("Session 日期应截取到当天零点，实际 %s", d)
	}
	if d.Location() != loc {
		t.Errorf("Session 日期应保留输入时区，实际 %s", d.Location())
	}
}

func TestGenerateSchedule_FractionalHoursNoResidue(t *testing.T) {
	// 0.3 = 0.1 × 3 在浮点下有残差，不应多排出一天
	s := mustSchedule(t, topicsWithHours(0.3), 0.1, 7, monday)
	if len(s.Sessions) != 3 {
		t.Errorf("期望 3 个 Session，实际 %d", len(s.Sessions))
	}

	s = mustSchedule(t, topicsWithHours(3), 0.75, 7, monday)
	if len(s.Sessions) != 4 {
		t.Errorf("45 分钟节奏期望 4 个 Session，实际 %d", len(s.Sessions))
	}
}

// scheduleWithin 在限定时间内运行排课，超时即判定为不收敛
func scheduleWithin(t *testing.T, d time.Duration, topics []model.Topic, hpd float64, dpw int) (*model.Schedule, error) {
	t.Helper()
	type result struct {
		s   *model.Schedule
		err error
	}
	done := make(chan result, 1)
	go func() {
		s, err := GenerateSchedule(topics, hpd, dpw, monday)
		done <- result{s, err}
	}()
	select {
	case r := <-done:
		return r.s, r.err
	case <-time.After(d):
		t.Fatalf("hpd=%v: GenerateSchedule 未在 %s 内返回", hpd, d)
		return nil, nil
	}
}

func TestGenerateSchedule_TinyHoursPerDayTerminates(t *testing.T) {
	// 每天学时小于舍入精度：1 小时需要 1e7 个学习日，超出上限
	_, err := scheduleWithin(t, 3*time.Second, topicsWithHours(1), 1e-7, 7)
	if !errors.Is(err, ErrScheduleTooLarge) {
		t.Errorf("期望 ErrScheduleTooLarge，实际: %v", err)
	}

	// 在上限之内的亚微小时节奏应正常排完且学时守恒
	topics := topicsWithHours(1e-5)
	s, err := scheduleWithin(t, 3*time.Second, topics, 1e-7, 7)
	if err != nil {
		t.Fatalf("GenerateSchedule 应成功: %v", err)
	}
	if n := len(s.Sessions); n < 100 || n > 101 {
		t.Errorf("期望约 100 个 Session，实际 %d", n)
	}
	checkScheduleProperties(t, topics, 1e-7, 7, s)
}

func TestGenerateSchedule_TooManySessions(t *testing.T) {
	tests := []struct {
		name  string
		hours []float64
		hpd   float64
	}{
		{"单个模块学时过大", []float64{1e9}, 0.5},
		{"每天学时过小", []float64{1e12}, 0.01},
		{"多个模块累计超限", []float64{4000, 4000, 4000}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scheduleWithin(t, 3*time.Second, topicsWithHours(tt.hours...), tt.hpd, 7)
			if !errors.Is(err, ErrScheduleTooLarge) {
				t.Errorf("期望 ErrScheduleTooLarge，实际: %v", err)
			}
		})
	}
}

func TestGenerateSchedule_AtSessionLimit(t *testing.T) {
	s := mustSchedule(t, topicsWithHours(MaxSessions), 1, 7, monday)
	if len(s.Sessions) != MaxSessions {
		t.Errorf("期望 %d 个 Session，实际 %d", MaxSessions, len(s.Sessions))
	}
}

func TestGenerateSchedule_DoesNotUseTotalHours(t *testing.T) {
	plan := model.Plan{TotalHours: 100, Topics: topicsWithHours(2, 2)}
	s := mustSchedule(t, plan.Topics, 2, 7, monday)
	if len(s.Sessions) != 2 {
		t.Errorf("应按模块学时排课（期望 2 个 Session），实际 %d", len(s.Sessions))
	}
}

// ════════════════════════════════════════════════════════════
// 性质检查：遍历多种节奏
// ════════════════════════════════════════════════════════════

func TestGenerateSchedule_Properties(t *testing.T) {
	topicSets := [][]float64{
		{5, 3},
		{1},
		{0.25, 7.5, 12, 3.3, 1},
		{40, 60, 35, 50, 45, 40},
	}
	hoursOptions := []float64{0.25, 0.5, 0.75, 1, 1.5, 2, 3}

	for _, hours := range topicSets {
		topics := topicsWithHours(hours...)
		for _, hpd := range hoursOptions {
			for dpw := 1; dpw <= 7; dpw++ {
				s := mustSchedule(t, topics, hpd, dpw, monday.AddDate(0, 0, dpw))
				checkScheduleProperties(t, topics, hpd, dpw, s)
			}
		}
	}
}

func checkScheduleProperties(t *testing.T, topics []model.Topic, hpd float64, dpw int, s *model.Schedule) {
	t.Helper()

	weekdays, _ := StudyWeekdays(dpw)
	allowed := make(map[time.Weekday]bool)
	for _, wd := range weekdays {
		allowed[wd] = true
	}

	sums := make([]float64, len(topics))
	for i, sess := range s.Sessions {
		if !allowed[sess.Date.Weekday()] {
			t.Errorf("dpw=%d: %s 不是学习日", dpw, sess.Date.Weekday())
		}
		if i > 0 && !sess.Date.After(s.Sessions[i-1].Date) {
			t.Errorf("dpw=%d: Session 日期应严格递增（每天至多一个）", dpw)
		}
		if i > 0 && sess.TopicIndex < s.Sessions[i-1].TopicIndex {
			t.Errorf("dpw=%d: 模块顺序不应倒退", dpw)
		}
		if sess.Hours <= 0 || sess.Hours > hpd {
			t.Errorf("hpd=%v: Session 学时越界 %v", hpd, sess.Hours)
		}
		if sess.Phase != PhaseOf(sess.TopicIndex, len(topics)) {
			t.Errorf("Session 阶段与 PhaseOf 不一致")
		}
		sums[sess.TopicIndex] += sess.Hours
	}

	for i, topic := range topics {
		if math.Abs(sums[i]-topic.EstimatedHours) > 1e-6 {
			t.Errorf("hpd=%v dpw=%d: 模块 %d 学时之和 %v ≠ %v", hpd, dpw, i, sums[i], topic.EstimatedHours)
		}
	}

	wantWeeks := int(math.Ceil(float64(len(s.Sessions)) / float64(dpw)))
	if s.TotalWeeks != wantWeeks {
		t.Errorf("期望 TotalWeeks=%d，实际=%d", wantWeeks, s.TotalWeeks)
	}
}

// ════════════════════════════════════════════════════════════
// StudyWeekdays / PhaseOf
// ════════════════════════════════════════════════════════════

func TestStudyWeekdays_DropsSundayFirst(t *testing.T) {
	days, err := StudyWeekdays(6)
	if err != nil {
		t.Fatalf("StudyWeekdays 应成功: %v", err)
	}
	for _, d := range days {
		if d == time.Sunday {
			t.Error("6 天节奏不应包含周日")
		}
	}
	days, _ = StudyWeekdays(5)
	if days[len(days)-1] != time.Friday {
		t.Errorf("5 天节奏最后一天应为周五，实际 %s", days[len(days)-1])
	}
	if _, err := StudyWeekdays(0); !errors.Is(err, ErrInvalidCadence) {
		t.Errorf("期望 ErrInvalidCadence，实际: %v", err)
	}
}

func TestPhaseOf(t *testing.T) {
	cases := []struct {
		count int
		want  []model.Phase
	}{
		{1, []model.Phase{model.PhaseFoundation}},
		{3, []model.Phase{model.PhaseFoundation, model.PhaseIntermediate, model.PhaseApplied}},
		{4, []model.Phase{model.PhaseFoundation, model.PhaseFoundation, model.PhaseIntermediate, model.PhaseApplied}},
		{6, []model.Phase{
			model.PhaseFoundation, model.PhaseFoundation,
			model.PhaseIntermediate, model.PhaseIntermediate,
			model.PhaseApplied, model.PhaseApplied,
		}},
	}
	for _, tc := range cases {
		for i, want := range tc.want {
			if got := PhaseOf(i, tc.count); got != want {
				t.Errorf("PhaseOf(%d, %d) 期望 %s，实际 %s", i, tc.count, want, got)
			}
		}
	}
}
