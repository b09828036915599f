package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/service"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/response"
)

// PlanHandler 计划历史 HTTP 处理器
type PlanHandler struct {
	planSvc service.PlanService
}

// NewPlanHandler 创建 PlanHandler
func NewPlanHandler(planSvc service.PlanService) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

// CreatePlan 保存计划到历史
// POST /api/v1/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	learnerID, ok := MustGetLearnerID(c)
	if !ok {
		return
	}

	plan, err := h.planSvc.Create(c.Request.Context(), learnerID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, plan)
}

// ListPlans 历史列表（新的在前）
// GET /api/v1/plans
func (h *PlanHandler) ListPlans(c *gin.Context) {
	var req dto.PlanListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)
		return
	}

	learnerID, ok := MustGetLearnerID(c)
	if !ok {
		return
	}

	list, total, err := h.planSvc.List(c.Request.Context(), learnerID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetPlan 历史详情
// GET /api/v1/plans/:id
func (h *PlanHandler) GetPlan(c *gin.Context) {
	learnerID, ok := MustGetLearnerID(c)
	if !ok {
		return
	}

	plan, err := h.planSvc.GetByID(c.Request.Context(), learnerID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, plan)
}

// ExportPlan 导出历史中的计划，节奏参数走查询串
// GET /api/v1/plans/:id/export/:format?hours_per_day=&days_per_week=&start_date=
func (h *PlanHandler) ExportPlan(c *gin.Context) {
	var req dto.CadenceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)
		return
	}

	learnerID, ok := MustGetLearnerID(c)
	if !ok {
		return
	}

	artifact, err := h.planSvc.Export(c.Request.Context(), learnerID, c.Param("id"), c.Param("format"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Attachment(c, artifact.Filename, artifact.ContentType, artifact.Body)
}
