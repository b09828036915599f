package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/api/middleware"
	apperrors "github.com/muzmmils/Skill-Learning-Buddy/pkg/errors"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/response"
)

// MustGetLearnerID 从 Gin 上下文中安全提取 learner_id。
// 如果认证中间件未注入，返回 false 并写入 401 响应，调用方应直接 return。
func MustGetLearnerID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.LearnerIDKey)
	if !exists {
		response.Unauthorized(c, apperrors.CodeUnauthorized, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, apperrors.CodeUnauthorized, "未认证")
		return "", false
	}
	return s, true
}
