package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/service"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/response"
)

// SessionHandler 学习者会话 HTTP 处理器
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler 创建 SessionHandler
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreateSession 签发匿名学习者令牌
// POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	token, err := h.sessionSvc.Issue(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, token)
}
