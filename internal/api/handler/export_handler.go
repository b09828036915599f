package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/service"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Export 导出请求体中的计划
// POST /api/v1/export/:format
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	artifact, err := h.exportSvc.Export(c.Request.Context(), c.Param("format"), &req.Plan, req.CadenceRequest)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Attachment(c, artifact.Filename, artifact.ContentType, artifact.Body)
}
