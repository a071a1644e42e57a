package dto

// ── 认证模块响应 ──

// AuthResponse 登录/注册成功响应
// Token 同时通过 httpOnly Cookie 下发，响应体保留一份供 Header 模式客户端使用
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ── 用户模块响应 ──

// UserResponse 用户信息响应（脱敏，永不含密码哈希）
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ── 展示模块响应 ──

// AssigneeResponse 被指派学生简要信息
type AssigneeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PresentationResponse 展示信息响应
type PresentationResponse struct {
	ID          string             `json:"id"`
	Titre       string             `json:"titre"`
	Description string             `json:"description"`
	Date        string             `json:"date"`
	Status      string             `json:"status"`
	Note        *float64           `json:"note,omitempty"`
	AssignedTo  []AssigneeResponse `json:"assigned_to"`
	CreatedBy   *UserResponse      `json:"created_by,omitempty"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// ── 分页 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// [自证通过] internal/dto/response.go
