package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Svc *services.CustomerService
}

func NewCustomerController(s *services.CustomerService) *CustomerController {
	return &CustomerController{Svc: s}
}

// GET /api/customer/profile
func (h *CustomerController) Profile(c *gin.Context) {
	p, err := h.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

// PUT|PATCH /api/customer/profile
func (h *CustomerController) UpdateProfile(c *gin.Context) {
	var req services.UpdateProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.UpdateProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /api/customer/favorites
func (h *CustomerController) Favorites(c *gin.Context) {
	favs, err := h.Svc.ListFavorites(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, favs)
}

type AddFavoriteRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

// POST /api/customer/favorites
func (h *CustomerController) AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fav, err := h.Svc.AddFavorite(utils.CurrentUserID(c), req.RestaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, fav)
}

// DELETE /api/customer/favorites?restaurant_id=
func (h *CustomerController) RemoveFavorite(c *gin.Context) {
	raw := c.Query("restaurant_id")
	if raw == "" {
		resp.BadRequest(c, "Restaurant ID is required as a query parameter.")
		return
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant_id")
		return
	}

	if err := h.Svc.RemoveFavorite(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Favorite removed successfully."})
}
