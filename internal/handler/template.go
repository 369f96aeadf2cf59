package handler

import (
	"github.com/carlosryandeveloper/AgroTrilha/internal/middleware"
	"github.com/carlosryandeveloper/AgroTrilha/internal/service"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templateService *service.TemplateService
}

func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// POST /templates
func (h *TemplateHandler) Create(c *gin.Context) {
	var req service.TemplateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	template, err := h.templateService.Create(req, middleware.ActorUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, template)
}

// GET /templates
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateService.List()
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, templates)
}

// GET /templates/:id
func (h *TemplateHandler) Get(c *gin.Context) {
	detail, err := h.templateService.Get(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, detail)
}

// POST /templates/link-requirement
func (h *TemplateHandler) LinkRequirement(c *gin.Context) {
	var req struct {
		ActivityID             uint   `json:"activity_id" binding:"required"`
		RequirementTitle       string `json:"requirement_title" binding:"required,max=256"`
		RequirementDescription string `json:"requirement_description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	id, err := h.templateService.LinkRequirement(req.ActivityID, req.RequirementTitle, req.RequirementDescription, middleware.ActorUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, gin.H{"ok": true, "requirement_id": id})
}

// POST /templates/link-decision
func (h *TemplateHandler) LinkDecision(c *gin.Context) {
	var req struct {
		ActivityID          uint   `json:"activity_id" binding:"required"`
		DecisionTitle       string `json:"decision_title" binding:"required,max=256"`
		DecisionDescription string `json:"decision_description"`
		Rationale           string `json:"rationale"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	id, err := h.templateService.LinkDecision(req.ActivityID, req.DecisionTitle, req.DecisionDescription, req.Rationale, middleware.ActorUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, gin.H{"ok": true, "decision_id": id})
}
