package service

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"presentation-hub/internal/model"
	"presentation-hub/internal/repository"
)

// ── Mock Repositories ──

type mockUserRepo struct {
	users  map[string]*model.User // key: user_id 或 "email:"+email
	nextID int

	// precheckMiss 为 true 时 GetByEmail 恒返回未找到，
	// 用于模拟预检查与写入之间的并发注册竞态
	precheckMiss bool
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) put(user *model.User) {
	m.users[user.UserID] = user
	if user.Email != "" {
		m.users["email:"+strings.ToLower(user.Email)] = user
	}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	// 唯一索引兜底：同邮箱重复写入返回重复键错误
	if _, ok := m.users["email:"+strings.ToLower(user.Email)]; ok {
		return gorm.ErrDuplicatedKey
	}
	if user.UserID == "" {
		m.nextID++
		user.UserID = "test-user-" + strconv.Itoa(m.nextID)
	}
	m.put(user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if m.precheckMiss {
		return nil, gorm.ErrRecordNotFound
	}
	if u, ok := m.users["email:"+strings.ToLower(email)]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.put(user)
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	delete(m.users, "email:"+strings.ToLower(u.Email))
	return nil
}

func (m *mockUserRepo) List(_ context.Context, filters *repository.UserListFilters, offset, limit int) ([]model.User, int64, error) {
	seen := make(map[string]bool)
	var all []model.User
	for key, u := range m.users {
		if strings.HasPrefix(key, "email:") || seen[u.UserID] {
			continue
		}
		seen[u.UserID] = true
		if filters != nil && filters.Role != "" && u.Role != filters.Role {
			continue
		}
		all = append(all, *u)
	}
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) ListByIDs(_ context.Context, ids []string) ([]model.User, error) {
	var result []model.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

type mockPresentationRepo struct {
	presentations map[string]*model.Presentation
	nextID        int
}

func newMockPresentationRepo() *mockPresentationRepo {
	return &mockPresentationRepo{presentations: make(map[string]*model.Presentation)}
}

func (m *mockPresentationRepo) Create(_ context.Context, p *model.Presentation) error {
	if p.PresentationID == "" {
		m.nextID++
		p.PresentationID = "test-presentation-" + strconv.Itoa(m.nextID)
	}
	m.presentations[p.PresentationID] = p
	return nil
}

func (m *mockPresentationRepo) GetByID(_ context.Context, id string) (*model.Presentation, error) {
	if p, ok := m.presentations[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPresentationRepo) List(_ context.Context) ([]model.Presentation, error) {
	var result []model.Presentation
	for _, p := range m.presentations {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPresentationRepo) Update(_ context.Context, p *model.Presentation) error {
	m.presentations[p.PresentationID] = p
	return nil
}

func (m *mockPresentationRepo) ReplaceAssignees(_ context.Context, p *model.Presentation, assignees []model.User) error {
	p.AssignedTo = assignees
	m.presentations[p.PresentationID] = p
	return nil
}

func (m *mockPresentationRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.presentations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.presentations, id)
	return nil
}

