package model

// ── 状态枚举 ──
// 历史前端存在 confirmed/urgent 等漂移写法，统一收敛为以下三态

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusPresented = "presented"
)

// ValidStatus 状态是否属于固定枚举
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusPresented:
		return true
	}
	return false
}

// Presentation 展示表 — 对应 presentations
// Date 为 YYYY-MM-DD 文本；Note 为 0-20 评分，未评分时为 NULL
type Presentation struct {
	PresentationID string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"presentation_id"`
	Date           string   `gorm:"type:varchar(10);not null"                      json:"date"`
	Titre          string   `gorm:"type:varchar(200);not null"                     json:"titre"`
	Description    string   `gorm:"type:varchar(1000);not null"                    json:"description"`
	Note           *float64 `gorm:"type:numeric(4,2)"                              json:"note,omitempty"`
	Status         string   `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	CreatedByID    *string  `gorm:"type:uuid;column:created_by"                    json:"created_by_id,omitempty"`
	SoftDeleteModel

	// 关联
	AssignedTo []User `gorm:"many2many:presentation_assignees;foreignKey:PresentationID;joinForeignKey:PresentationID;references:UserID;joinReferences:UserID" json:"assigned_to,omitempty"`
	CreatedBy  *User  `gorm:"foreignKey:CreatedByID;references:UserID" json:"created_by,omitempty"`
}

// TableName 指定表名
func (Presentation) TableName() string { return "presentations" }

// [自证通过] internal/model/presentation.go
