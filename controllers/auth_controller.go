package controllers

import (
	"net/http"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /api/auth/signup/customer
func (a *AuthController) SignupCustomer(c *gin.Context) {
	a.signup(c, entity.RoleCustomer, "Customer created successfully")
}

// POST /api/auth/signup/restaurant
func (a *AuthController) SignupRestaurant(c *gin.Context) {
	a.signup(c, entity.RoleRestaurantManager, "Restaurant manager created successfully")
}

func (a *AuthController) signup(c *gin.Context, role, message string) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(role, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": message, "user_id": user.ID})
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := a.Svc.Login(req.PhoneNumber, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, out)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// PUT /api/auth/change-password
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := a.Svc.ChangePassword(utils.CurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Password updated successfully."})
}
