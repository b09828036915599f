package model

import "time"

// Phase 模块所处阶段，仅由模块在计划中的位置决定
type Phase string

const (
	PhaseFoundation   Phase = "Foundation"
	PhaseIntermediate Phase = "Intermediate"
	PhaseApplied      Phase = "Applied"
)

// Cadence 学习节奏：每天学时 × 每周学习天数
type Cadence struct {
	HoursPerDay float64 `json:"hours_per_day"`
	DaysPerWeek int     `json:"days_per_week"`
}

// Session 单次学习安排，只由排课器产生
// 一天至多一个 Session，且只属于一个模块
type Session struct {
	Date       time.Time `json:"date"`
	TopicIndex int       `json:"topic_index"`
	TopicTitle string    `json:"topic_title"`
	Hours      float64   `json:"hours"`
	Phase      Phase     `json:"phase"`
}

// Schedule 排课结果（纯投影，不单独持久化）
// Sessions 按日期升序，导出与按周分组都依赖此顺序
type Schedule struct {
	Sessions   []Session `json:"sessions"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalWeeks int       `json:"total_weeks"`
	Cadence    Cadence   `json:"cadence"`
}
