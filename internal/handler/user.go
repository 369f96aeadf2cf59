package handler

import (
	"github.com/carlosryandeveloper/AgroTrilha/internal/middleware"
	"github.com/carlosryandeveloper/AgroTrilha/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required,max=128"`
		Email string `json:"email" binding:"required,max=128"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.Create(req.Name, req.Email, middleware.ActorUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, user)
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, users)
}
