package jwt

import (
	"strings"
	"testing"
	"time"

	"presentation-hub/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  24 * time.Hour,
	})
}

func TestIssueAndParse(t *testing.T) {
	m := newTestManager()

	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue 失败: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse 失败: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("期望 UserID=user-1，实际=%s", claims.UserID)
	}
	if claims.Subject != "user-1" {
		t.Errorf("期望 Subject=user-1，实际=%s", claims.Subject)
	}
	if claims.Issuer != "presentation-hub" {
		t.Errorf("期望 Issuer=presentation-hub，实际=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}

	// 过期时间约为 24h
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("Token TTL 期望约24h，实际=%v", ttl)
	}
}

func TestParse_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.Parse("invalid.token.string")
	if err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret: "different-secret-key-000000000000",
		TokenTTL:  24 * time.Hour,
	})

	token, _ := m1.Issue("user-1")
	_, err := m2.Parse(token)
	if err != ErrTokenInvalid {
		t.Errorf("不同密钥签名的 token 期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParse_TamperedPayload(t *testing.T) {
	m := newTestManager()

	token, _ := m.Issue("user-1")
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("JWT 应为三段，实际 %d 段", len(parts))
	}

	// 篡改 payload 中的任意一个字节，签名校验必须失败
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := m.Parse(tampered); err != ErrTokenInvalid {
		t.Errorf("被篡改的 token 期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	// 创建一个 TTL 极短的 manager 来测试过期
	m := NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-0000000000000000",
		TokenTTL:  1 * time.Millisecond,
	})

	token, _ := m.Issue("user-1")
	time.Sleep(10 * time.Millisecond)

	_, err := m.Parse(token)
	if err != ErrTokenExpired {
		t.Errorf("过期 token 期望 ErrTokenExpired，实际: %v", err)
	}
}
