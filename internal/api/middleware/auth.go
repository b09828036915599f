package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/muzmmils/Skill-Learning-Buddy/pkg/errors"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/jwt"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/response"
)

// LearnerIDKey 认证通过后注入 gin.Context 的学习者 ID
const LearnerIDKey = "learner_id"

// LearnerAuth 学习者令牌认证中间件
// 从 Authorization: Bearer <token> 中提取并验证令牌
func LearnerAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, apperrors.CodeUnauthorized, "缺少认证头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, apperrors.CodeUnauthorized, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Unauthorized(c, apperrors.CodeUnauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set(LearnerIDKey, claims.LearnerID)
		c.Next()
	}
}
