package dto

import "github.com/muzmmils/Skill-Learning-Buddy/internal/model"

// ── 排课模块 DTO ──

// CadenceRequest 学习节奏参数
// 字段缺省时使用服务端配置的默认值；显式给出的非法值（如 0）直接报错，不做钳制
type CadenceRequest struct {
	HoursPerDay *float64 `json:"hours_per_day" form:"hours_per_day"`
	DaysPerWeek *int     `json:"days_per_week" form:"days_per_week"`
	StartDate   string   `json:"start_date"    form:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

// SchedulePreviewRequest 排课预览请求
// topics 可为空：返回零个 Session 的排课结果
type SchedulePreviewRequest struct {
	Topics []model.Topic `json:"topics" binding:"omitempty,max=100,dive"`
	CadenceRequest
}

// SessionResponse 单次学习安排
type SessionResponse struct {
	Date       string      `json:"date"` // YYYY-MM-DD
	Day        string      `json:"day"`  // Mon, Jan 5
	TopicIndex int         `json:"topic_index"`
	TopicTitle string      `json:"topic_title"`
	Hours      float64     `json:"hours"`
	Phase      model.Phase `json:"phase"`
}

// WeekResponse 按周分组（第 N 周 = 第 N 组 daysPerWeek 个 Session）
type WeekResponse struct {
	Week     int               `json:"week"`
	Sessions []SessionResponse `json:"sessions"`
}

// MonthResponse 按月分组（每 4 周一组）
type MonthResponse struct {
	Label string         `json:"label"`
	Weeks []WeekResponse `json:"weeks"`
}

// CommitmentResponse 时间投入估算
type CommitmentResponse struct {
	TotalHours   float64 `json:"total_hours"`
	WeeklyHours  float64 `json:"weekly_hours"`
	WeeksNeeded  int     `json:"weeks_needed"`
	MonthsNeeded float64 `json:"months_needed"`
	EndDate      string  `json:"end_date"`
}

// SchedulePreviewResponse 排课预览响应
type SchedulePreviewResponse struct {
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	TotalWeeks  int                `json:"total_weeks"`
	HoursPerDay float64            `json:"hours_per_day"`
	DaysPerWeek int                `json:"days_per_week"`
	Sessions    []SessionResponse  `json:"sessions"`
	Months      []MonthResponse    `json:"months"`
	Commitment  CommitmentResponse `json:"commitment"`
	Cached      bool               `json:"cached"`
}
