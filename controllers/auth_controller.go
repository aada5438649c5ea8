package controllers

import (
	"net/http"

	"github.com/Silvia-kc/Project-Germany/pkg/resp"
	"github.com/Silvia-kc/Project-Germany/services"
	"github.com/Silvia-kc/Project-Germany/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=buyer seller"`
}
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{s}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.service.Register(req.Username, req.Password, req.Role)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "username": user.Username, "role": user.Role,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.service.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "username": user.Username, "role": user.Role,
		},
	})
}

// GET /auth/me (requires login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "username": user.Username, "role": user.Role,
	})
}
