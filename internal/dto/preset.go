package dto

import "github.com/muzmmils/Skill-Learning-Buddy/internal/model"

// ── 预设模块 DTO ──

// CareerPresetResponse 转行预设
type CareerPresetResponse struct {
	ID             string   `json:"id"              yaml:"id"`
	Label          string   `json:"label"           yaml:"label"`
	FromCareer     string   `json:"from_career"     yaml:"fromCareer"`
	ToCareer       string   `json:"to_career"       yaml:"toCareer"`
	Emoji          string   `json:"emoji"           yaml:"emoji"`
	Background     string   `json:"background"      yaml:"background"`
	SuggestedGoals []string `json:"suggested_goals" yaml:"suggestedGoals"`
}

// CommunityPlanResponse 社区示例计划
type CommunityPlanResponse struct {
	ID    string     `json:"id"    yaml:"id"`
	Label string     `json:"label" yaml:"label"`
	Plan  model.Plan `json:"plan"  yaml:"plan"`
}
