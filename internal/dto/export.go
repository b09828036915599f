package dto

import "github.com/muzmmils/Skill-Learning-Buddy/internal/model"

// ── 导出模块 DTO ──

// ExportRequest 导出请求体（计划直接随请求提交）
type ExportRequest struct {
	Plan model.Plan `json:"plan" binding:"required"`
	CadenceRequest
}
