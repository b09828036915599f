package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/service"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/response"
)

// PresetHandler 内置预设 HTTP 处理器
type PresetHandler struct {
	presetSvc service.PresetService
}

// NewPresetHandler 创建 PresetHandler
func NewPresetHandler(presetSvc service.PresetService) *PresetHandler {
	return &PresetHandler{presetSvc: presetSvc}
}

// ListCareers GET /api/v1/presets/careers
func (h *PresetHandler) ListCareers(c *gin.Context) {
	response.OK(c, gin.H{"list": h.presetSvc.Careers()})
}

// ListCommunityPlans GET /api/v1/presets/plans
func (h *PresetHandler) ListCommunityPlans(c *gin.Context) {
	response.OK(c, gin.H{"list": h.presetSvc.CommunityPlans()})
}
