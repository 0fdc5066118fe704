package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// AdminController hosts the restaurant approval workflow.
type AdminController struct {
	Svc *services.RestaurantService
}

func NewAdminController(s *services.RestaurantService) *AdminController {
	return &AdminController{Svc: s}
}

// GET /api/admin/restaurants?state=
func (h *AdminController) Restaurants(c *gin.Context) {
	rests, err := h.Svc.ListByState(c.Query("state"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rests)
}

// PATCH /api/admin/restaurants/:id/approve
func (h *AdminController) Approve(c *gin.Context) {
	h.decide(c, h.Svc.Approve, "Restaurant approved.")
}

// PATCH /api/admin/restaurants/:id/reject
func (h *AdminController) Reject(c *gin.Context) {
	h.decide(c, h.Svc.Reject, "Restaurant rejected.")
}

func (h *AdminController) decide(c *gin.Context, fn func(uint) error, message string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	if err := fn(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": message})
}
