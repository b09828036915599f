package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/jwt"
)

// SessionService 匿名学习者会话
// 学习者无需注册：首次访问时签发带随机 LearnerID 的令牌，历史记录以此隔离
type SessionService interface {
	Issue(ctx context.Context) (*dto.SessionTokenResponse, error)
}

type sessionService struct {
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewSessionService 创建 SessionService 实例
func NewSessionService(jwtMgr *jwt.Manager, logger *zap.Logger) SessionService {
	return &sessionService{jwtMgr: jwtMgr, logger: logger}
}

func (s *sessionService) Issue(_ context.Context) (*dto.SessionTokenResponse, error) {
	learnerID := uuid.NewString()

	token, expiresAt, err := s.jwtMgr.GenerateAccessToken(learnerID)
	if err != nil {
		s.logger.Error("签发学习者令牌失败", zap.Error(err))
		return nil, err
	}

	return &dto.SessionTokenResponse{
		LearnerID:   learnerID,
		AccessToken: token,
		ExpiresIn:   int(s.jwtMgr.TTL().Seconds()),
		ExpiresAt:   expiresAt.Format(time.RFC3339),
	}, nil
}
