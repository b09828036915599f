package jwt

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL: 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, expiresAt, err := m.GenerateAccessToken("learner-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}
	if ttl := time.Until(expiresAt); ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("期望有效期约 24h，实际=%v", ttl)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}
	if claims.LearnerID != "learner-1" {
		t.Errorf("期望 LearnerID=learner-1，实际=%s", claims.LearnerID)
	}
	if claims.Subject != "learner-1" {
		t.Errorf("期望 Subject=learner-1，实际=%s", claims.Subject)
	}
	if claims.Issuer != issuer {
		t.Errorf("期望 Issuer=%s，实际=%s", issuer, claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	if _, err := newTestManager().ParseToken("invalid.token.string"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "different-secret-key",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, _, _ := newTestManager().GenerateAccessToken("learner-1")
	if _, err := m2.ParseToken(token); err == nil {
		t.Error("不同密钥签名的 token 不应通过验证")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL: -time.Minute,
	})

	token, _, _ := m.GenerateAccessToken("learner-1")
	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}

func TestParseToken_ForeignIssuer(t *testing.T) {
	m := newTestManager()
	claims := Claims{
		LearnerID: "learner-1",
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, _ := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(m.secret)

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("其他签发方的 token 应判为无效，实际: %v", err)
	}
}
