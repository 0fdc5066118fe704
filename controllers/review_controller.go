package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /api/customer/reviews/create
func (h *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.Create(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /api/customer/items/:item_id/reviews/
func (h *ReviewController) ListForItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	reviews, err := h.Svc.ListForItem(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reviews)
}
