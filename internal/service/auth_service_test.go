package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"presentation-hub/config"
	"presentation-hub/internal/dto"
	"presentation-hub/internal/model"
	"presentation-hub/internal/repository"
	"presentation-hub/pkg/jwt"
	"presentation-hub/pkg/password"
)

// ── 测试辅助 ──

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  24 * time.Hour,
	})
}

func setupTestAuthService() (AuthService, *mockUserRepo, *jwt.Manager) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{
		User:         userRepo,
		Presentation: newMockPresentationRepo(),
	}

	jwtMgr := newTestJWTManager()
	svc := NewAuthService(repo, jwtMgr, zap.NewNop())
	return svc, userRepo, jwtMgr
}

func createTestUser(userRepo *mockUserRepo, email, plaintext, role string) *model.User {
	hash, _ := password.Hash(plaintext)
	user := &model.User{
		UserID:       "user-" + email,
		Name:         "测试用户",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	userRepo.put(user)
	return user
}

// ── 登录测试 ──

func TestLogin_Success(t *testing.T) {
	svc, userRepo, jwtMgr := setupTestAuthService()
	user := createTestUser(userRepo, "a@b.com", "secret1", "teacher")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "a@b.com",
		Password: "secret1",
	})

	if err != nil {
		t.Fatalf("Login 应成功，但返回错误: %v", err)
	}
	if result.Token == "" {
		t.Error("Token 不应为空")
	}
	if result.User.ID != user.UserID {
		t.Errorf("期望 ID=%s，实际=%s", user.UserID, result.User.ID)
	}
	if result.User.Role != "teacher" {
		t.Errorf("期望 Role=teacher，实际=%s", result.User.Role)
	}

	// 返回的 Token 验证后应解析出同一身份 ID
	claims, err := jwtMgr.Parse(result.Token)
	if err != nil {
		t.Fatalf("返回的 Token 应可验证: %v", err)
	}
	if claims.UserID != user.UserID {
		t.Errorf("Token subject 期望 %s，实际=%s", user.UserID, claims.UserID)
	}
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	createTestUser(userRepo, "a@b.com", "secret1", "student")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "  A@B.COM  ",
		Password: "secret1",
	})

	if err != nil {
		t.Fatalf("邮箱大小写/空白不应影响登录: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	createTestUser(userRepo, "a@b.com", "secret1", "student")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "a@b.com",
		Password: "wrong_password",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nonexistent@b.com",
		Password: "secret1",
	})

	// 用户不存在与密码错误必须为同一外部可见结果
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── 注册测试 ──

func TestRegister_Success(t *testing.T) {
	svc, userRepo, jwtMgr := setupTestAuthService()

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@test.com",
		Password: "secret1",
		Name:     "新用户",
		Role:     "teacher",
	})

	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if result.User.Email != "new@test.com" {
		t.Errorf("期望 Email=new@test.com，实际=%s", result.User.Email)
	}
	if result.User.Role != "teacher" {
		t.Errorf("期望 Role=teacher，实际=%s", result.User.Role)
	}

	claims, err := jwtMgr.Parse(result.Token)
	if err != nil {
		t.Fatalf("注册返回的 Token 应可验证: %v", err)
	}
	if claims.UserID != result.User.ID {
		t.Errorf("Token subject 期望 %s，实际=%s", result.User.ID, claims.UserID)
	}

	// 明文不落库
	stored, _ := userRepo.GetByEmail(context.Background(), "new@test.com")
	if stored.PasswordHash == "secret1" {
		t.Error("密码必须以哈希形式存储")
	}
	if !password.Verify("secret1", stored.PasswordHash) {
		t.Error("存储的哈希应可验证原密码")
	}
}

func TestRegister_DefaultRole(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@test.com",
		Password: "secret1",
		Name:     "新用户",
	})

	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if result.User.Role != model.RoleStudent {
		t.Errorf("省略角色时期望默认 student，实际=%s", result.User.Role)
	}
}

func TestRegister_EmailNormalized(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "  NEW@Test.COM ",
		Password: "secret1",
		Name:     "新用户",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}

	if _, err := userRepo.GetByEmail(context.Background(), "new@test.com"); err != nil {
		t.Error("邮箱应归一化为小写后存储")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	createTestUser(userRepo, "dup@test.com", "secret1", "student")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "dup@test.com",
		Password: "secret1",
		Name:     "重复用户",
	})

	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际: %v", err)
	}
}

func TestRegister_DuplicateEmail_CaseVariant(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	createTestUser(userRepo, "dup@test.com", "secret1", "student")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "DUP@TEST.COM",
		Password: "secret1",
		Name:     "重复用户",
	})

	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("大小写变体重复邮箱期望 ErrEmailExists，实际: %v", err)
	}
}

func TestRegister_DuplicateKeyAtPersist(t *testing.T) {
	// 模拟并发注册：预检查通过但写入阶段触发唯一索引冲突，
	// 必须与预检查拒绝映射为同一结果
	svc, userRepo, _ := setupTestAuthService()

	// 第一次注册正常完成
	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "race@test.com",
		Password: "secret1",
		Name:     "用户甲",
	}); err != nil {
		t.Fatalf("第一次注册应成功: %v", err)
	}

	// 让预检查失明，写入阶段撞上唯一索引
	userRepo.precheckMiss = true
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "race@test.com",
		Password: "secret2",
		Name:     "用户乙",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际: %v", err)
	}
}
