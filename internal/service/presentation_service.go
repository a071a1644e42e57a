package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"presentation-hub/internal/dto"
	"presentation-hub/internal/model"
	"presentation-hub/internal/repository"
)

// ── 展示模块业务错误 ──

var (
	ErrPresentationNotFound = errors.New("展示不存在")
	ErrAssigneeNotFound     = errors.New("被指派学生不存在")
)

// PresentationService 展示业务接口
type PresentationService interface {
	List(ctx context.Context) ([]dto.PresentationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PresentationResponse, error)
	Create(ctx context.Context, req *dto.CreatePresentationRequest, callerID string) (*dto.PresentationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePresentationRequest) (*dto.PresentationResponse, error)
	Delete(ctx context.Context, id string) error
}

type presentationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPresentationService 创建 PresentationService 实例
func NewPresentationService(repo *repository.Repository, logger *zap.Logger) PresentationService {
	return &presentationService{repo: repo, logger: logger}
}

func (s *presentationService) List(ctx context.Context) ([]dto.PresentationResponse, error) {
	list, err := s.repo.Presentation.List(ctx)
	if err != nil {
		s.logger.Error("列出展示失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PresentationResponse, 0, len(list))
	for i := range list {
		result = append(result, *toPresentationResponse(&list[i]))
	}

	return result, nil
}

func (s *presentationService) GetByID(ctx context.Context, id string) (*dto.PresentationResponse, error) {
	p, err := s.repo.Presentation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresentationNotFound
		}
		s.logger.Error("查询展示失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toPresentationResponse(p), nil
}

func (s *presentationService) Create(ctx context.Context, req *dto.CreatePresentationRequest, callerID string) (*dto.PresentationResponse, error) {
	// 校验被指派学生均存在
	assignees, err := s.resolveAssignees(ctx, req.AssignedTo)
	if err != nil {
		return nil, err
	}

	p := &model.Presentation{
		Date:        req.Date,
		Titre:       req.Titre,
		Description: req.Description,
		Status:      model.StatusPending,
		CreatedByID: &callerID,
		AssignedTo:  assignees,
	}

	if err := s.repo.Presentation.Create(ctx, p); err != nil {
		s.logger.Error("创建展示失败", zap.Error(err))
		return nil, err
	}

	// 重新加载以获取完整关联（创建者等）
	created, err := s.repo.Presentation.GetByID(ctx, p.PresentationID)
	if err != nil {
		return nil, err
	}

	return toPresentationResponse(created), nil
}

func (s *presentationService) Update(ctx context.Context, id string, req *dto.UpdatePresentationRequest) (*dto.PresentationResponse, error) {
	p, err := s.repo.Presentation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresentationNotFound
		}
		s.logger.Error("查询展示失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 应用更新字段（仅更新非 nil 字段）
	if req.Titre != nil {
		p.Titre = *req.Titre
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Note != nil {
		p.Note = req.Note
	}

	if err := s.repo.Presentation.Update(ctx, p); err != nil {
		s.logger.Error("更新展示失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 指派关系整体替换
	if req.AssignedTo != nil {
		assignees, err := s.resolveAssignees(ctx, *req.AssignedTo)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Presentation.ReplaceAssignees(ctx, p, assignees); err != nil {
			s.logger.Error("更新指派关系失败", zap.String("id", id), zap.Error(err))
			return nil, err
		}
	}

	// 重新加载关联
	updated, err := s.repo.Presentation.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toPresentationResponse(updated), nil
}

func (s *presentationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Presentation.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPresentationNotFound
		}
		s.logger.Error("查询展示失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Presentation.Delete(ctx, id); err != nil {
		s.logger.Error("删除展示失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

// resolveAssignees 按 ID 解析被指派学生，任一 ID 不存在则整体拒绝
func (s *presentationService) resolveAssignees(ctx context.Context, ids []string) ([]model.User, error) {
	users, err := s.repo.User.ListByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("查询被指派学生失败", zap.Error(err))
		return nil, err
	}
	if len(users) != len(uniqueIDs(ids)) {
		return nil, ErrAssigneeNotFound
	}
	return users, nil
}

// uniqueIDs 去重，避免重复 ID 导致数量比对误判
func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

// toPresentationResponse 将 model.Presentation 转换为响应
func toPresentationResponse(p *model.Presentation) *dto.PresentationResponse {
	assignees := make([]dto.AssigneeResponse, 0, len(p.AssignedTo))
	for i := range p.AssignedTo {
		u := &p.AssignedTo[i]
		assignees = append(assignees, dto.AssigneeResponse{
			ID:    u.UserID,
			Name:  u.Name,
			Email: u.Email,
		})
	}

	var createdBy *dto.UserResponse
	if p.CreatedBy != nil {
		createdBy = toUserResponse(p.CreatedBy)
	}

	return &dto.PresentationResponse{
		ID:          p.PresentationID,
		Titre:       p.Titre,
		Description: p.Description,
		Date:        p.Date,
		Status:      p.Status,
		Note:        p.Note,
		AssignedTo:  assignees,
		CreatedBy:   createdBy,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/presentation_service.go
