package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/planner"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/service"
	apperrors "github.com/muzmmils/Skill-Learning-Buddy/pkg/errors"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/response"
)

// handleBindError 请求解码 / 校验失败
func handleBindError(c *gin.Context, err error) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		response.Error(c, http.StatusRequestEntityTooLarge, apperrors.CodeBodyTooLarge, "请求体过大")
		return
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, apperrors.CodeBadParams, "参数校验失败", err.Error())
}

// handleError 业务错误 → 统一响应
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidCadence):
		response.ErrorWithDetails(c, http.StatusBadRequest, apperrors.CodeInvalidCadence, "学习节奏参数无效", err.Error())
	case errors.Is(err, planner.ErrScheduleTooLarge):
		response.ErrorWithDetails(c, http.StatusBadRequest, apperrors.CodeScheduleTooBig,
			fmt.Sprintf("排课结果超过 %d 个学习日，请增加每天学时或拆分计划", planner.MaxSessions), err.Error())
	case errors.Is(err, model.ErrMalformedTopic):
		response.ErrorWithDetails(c, http.StatusBadRequest, apperrors.CodeMalformedTopic, "模块学时必须为正数", err.Error())
	case errors.Is(err, model.ErrInvalidPlan):
		response.ErrorWithDetails(c, http.StatusBadRequest, apperrors.CodeInvalidPlan, "学习计划结构无效", err.Error())
	case errors.Is(err, service.ErrInvalidStartDate):
		response.ErrorWithDetails(c, http.StatusBadRequest, apperrors.CodeBadParams, "参数校验失败", err.Error())
	case errors.Is(err, planner.ErrUnknownFormat):
		response.BadRequest(c, apperrors.CodeUnknownFormat, "不支持的导出格式，可选 ics / csv / md / xlsx")
	case errors.Is(err, service.ErrPlanNotFound):
		response.NotFound(c, apperrors.CodePlanNotFound, "学习计划不存在")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
