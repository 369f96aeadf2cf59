package handler

import (
	"github.com/carlosryandeveloper/AgroTrilha/internal/middleware"
	"github.com/carlosryandeveloper/AgroTrilha/internal/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		TemplateID uint   `json:"template_id" binding:"required"`
		ClientName string `json:"client_name" binding:"required,max=128"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	project, itemCount, err := h.projectService.CreateFromTemplate(req.TemplateID, req.ClientName, middleware.ActorUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, gin.H{"project_id": project.ID, "checklist_items": itemCount})
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, projects)
}

// GET /projects/:id/checklist
func (h *ProjectHandler) GetChecklist(c *gin.Context) {
	project, items, err := h.projectService.GetChecklist(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, gin.H{"project": project, "items": items})
}

// PATCH /projects/:id/checklist/:item_id
func (h *ProjectHandler) UpdateChecklistItem(c *gin.Context) {
	var req service.ChecklistItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, err := h.projectService.UpdateChecklistItem(parseID(c.Param("id")), parseID(c.Param("item_id")), req, middleware.ActorUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, item)
}

// POST /projects/:id/members
func (h *ProjectHandler) AddMember(c *gin.Context) {
	var req struct {
		UserID uint   `json:"user_id" binding:"required"`
		Role   string `json:"role" binding:"max=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.projectService.AddMember(parseID(c.Param("id")), req.UserID, req.Role, middleware.ActorUserID(c)); err != nil {
		Fail(c, err)
		return
	}
	OK(c, gin.H{"ok": true})
}

// GET /projects/:id/members
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	members, err := h.projectService.ListMembers(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, members)
}

// GET /projects/:id/audit
func (h *ProjectHandler) ListAudit(c *gin.Context) {
	logs, err := h.projectService.ListAudit(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, logs)
}
