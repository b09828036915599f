package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/muzmmils/Skill-Learning-Buddy/pkg/errors"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/response"
)

// DefaultBodyLimit 计划 JSON 的请求体上限
const DefaultBodyLimit = 1 << 20

// BodyLimit 请求体大小限制中间件
// 声明长度超限直接拒绝；未声明长度的请求在读取时由 MaxBytesReader 截断，
// 解码失败由 Handler 映射为 10005
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, apperrors.CodeBodyTooLarge, "请求体过大")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
