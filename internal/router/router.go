package router

import (
	"net/http"

	"github.com/carlosryandeveloper/AgroTrilha/internal/handler"
	"github.com/carlosryandeveloper/AgroTrilha/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	UserHandler     *handler.UserHandler
	TemplateHandler *handler.TemplateHandler
	ProjectHandler  *handler.ProjectHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORS())
	r.Use(middleware.Actor())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	users := r.Group("/users")
	{
		users.POST("", deps.UserHandler.Create)
		users.GET("", deps.UserHandler.List)
	}

	templates := r.Group("/templates")
	{
		templates.POST("", deps.TemplateHandler.Create)
		templates.GET("", deps.TemplateHandler.List)
		templates.POST("/link-requirement", deps.TemplateHandler.LinkRequirement)
		templates.POST("/link-decision", deps.TemplateHandler.LinkDecision)
		templates.GET("/:id", deps.TemplateHandler.Get)
	}

	projects := r.Group("/projects")
	{
		projects.POST("", deps.ProjectHandler.Create)
		projects.GET("", deps.ProjectHandler.List)
		projects.GET("/:id/checklist", deps.ProjectHandler.GetChecklist)
		projects.PATCH("/:id/checklist/:item_id", deps.ProjectHandler.UpdateChecklistItem)
		projects.POST("/:id/members", deps.ProjectHandler.AddMember)
		projects.GET("/:id/members", deps.ProjectHandler.ListMembers)
		projects.GET("/:id/audit", deps.ProjectHandler.ListAudit)
	}
}
