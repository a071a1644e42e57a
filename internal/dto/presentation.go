package dto

// ── 展示模块 DTO ──

// CreatePresentationRequest 创建展示请求
// Date 为 YYYY-MM-DD；AssignedTo 为被指派学生的用户 ID 列表
type CreatePresentationRequest struct {
	Titre       string   `json:"titre"       binding:"required,min=5,max=200"`
	Description string   `json:"description" binding:"required,min=20,max=1000"`
	Date        string   `json:"date"        binding:"required,datetime=2006-01-02"`
	AssignedTo  []string `json:"assignedTo"  binding:"required,min=1,dive,uuid"`
}

// UpdatePresentationRequest 更新展示请求（仅更新非 nil 字段）
type UpdatePresentationRequest struct {
	Titre       *string   `json:"titre"       binding:"omitempty,min=5,max=200"`
	Description *string   `json:"description" binding:"omitempty,min=20,max=1000"`
	Date        *string   `json:"date"        binding:"omitempty,datetime=2006-01-02"`
	Status      *string   `json:"status"      binding:"omitempty,oneof=pending approved presented"`
	Note        *float64  `json:"note"        binding:"omitempty,min=0,max=20"`
	AssignedTo  *[]string `json:"assignedTo"  binding:"omitempty,min=1,dive,uuid"`
}
