package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

const issuer = "skill-learning-buddy"

// Claims 学习者令牌声明
// 学习者是匿名的：令牌只携带随机生成的 LearnerID，用于隔离各自的计划历史
type Claims struct {
	LearnerID string `json:"learner_id"`
	jwtv5.RegisteredClaims
}

// Manager JWT 管理器
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewManager 创建 JWT 管理器
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.AccessTokenTTL,
	}
}

// TTL 令牌有效期
func (m *Manager) TTL() time.Duration {
	return m.tokenTTL
}

// GenerateAccessToken 为学习者签发令牌
func (m *Manager) GenerateAccessToken(learnerID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.tokenTTL)
	claims := Claims{
		LearnerID: learnerID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   learnerID,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(expiresAt),
			Issuer:    issuer,
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken 解析并验证令牌
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	}, jwtv5.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.LearnerID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
