package dto

import "github.com/muzmmils/Skill-Learning-Buddy/internal/model"

// ── 计划历史 DTO ──

// CreatePlanRequest 保存计划请求
type CreatePlanRequest struct {
	Goal       string     `json:"goal"       binding:"required,min=2,max=500"`
	Background string     `json:"background" binding:"omitempty,max=1000"`
	Plan       model.Plan `json:"plan"       binding:"required"`
}

// PlanListRequest 计划历史查询参数
type PlanListRequest struct {
	PaginationRequest
}

// PlanSummaryResponse 历史列表项
type PlanSummaryResponse struct {
	ID          string            `json:"id"`
	Goal        string            `json:"goal"`
	SkillName   string            `json:"skill_name"`
	Complexity  model.Complexity  `json:"complexity"`
	Feasibility model.Feasibility `json:"feasibility"`
	TotalHours  float64           `json:"total_hours"`
	TopicCount  int               `json:"topic_count"`
	CreatedAt   string            `json:"created_at"`
}

// PlanDetailResponse 历史详情（含计划正文）
type PlanDetailResponse struct {
	PlanSummaryResponse
	Background string      `json:"background,omitempty"`
	Plan       *model.Plan `json:"plan"`
}
