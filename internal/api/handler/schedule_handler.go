package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/service"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/response"
)

// ScheduleHandler 排课模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Preview 排课预览
// POST /api/v1/schedules/preview
func (h *ScheduleHandler) Preview(c *gin.Context) {
	var req dto.SchedulePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	resp, err := h.scheduleSvc.Preview(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, resp)
}
