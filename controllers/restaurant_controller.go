package controllers

import (
	"strconv"
	"time"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc     *services.RestaurantService
	Orders  *services.OrderService
	Reports *services.ReportService
}

func NewRestaurantController(s *services.RestaurantService, os *services.OrderService, rs *services.ReportService) *RestaurantController {
	return &RestaurantController{Svc: s, Orders: os, Reports: rs}
}

// GET /api/restaurant/profiles?query=&business_type=&is_open=
func (h *RestaurantController) List(c *gin.Context) {
	in := services.SearchIn{
		Query:        c.Query("query"),
		BusinessType: c.Query("business_type"),
	}
	if raw := c.Query("is_open"); raw != "" {
		open := raw == "true"
		in.IsOpen = &open
	}

	out, err := h.Svc.Search(in, time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/restaurant/profiles/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := h.Svc.PublicDetail(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /api/restaurant/profiles/me
func (h *RestaurantController) Me(c *gin.Context) {
	rest, err := h.Svc.MyProfile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// PUT /api/restaurant/profiles/me
func (h *RestaurantController) UpdateMe(c *gin.Context) {
	var req services.UpdateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.Svc.UpdateMyProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// ---------------- Items ----------------

// GET /api/restaurant/items
func (h *RestaurantController) Items(c *gin.Context) {
	items, err := h.Svc.ManagerItems(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/restaurant/items
func (h *RestaurantController) CreateItem(c *gin.Context) {
	var req services.ItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.CreateItem(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /api/restaurant/items/:id
func (h *RestaurantController) Item(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	item, err := h.Svc.ManagerItem(utils.CurrentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /api/restaurant/items/:id
func (h *RestaurantController) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var req services.ItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.UpdateItem(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/restaurant/items/:id
func (h *RestaurantController) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := h.Svc.DeleteItem(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.Status(204)
}

// ---------------- Orders ----------------

// GET /api/restaurant/orders
func (h *RestaurantController) OrderList(c *gin.Context) {
	orders, err := h.Orders.ListForRestaurant(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

type UpdateOrderStateRequest struct {
	State string `json:"state" binding:"required"`
}

// PATCH /api/restaurant/orders/:id/status
func (h *RestaurantController) UpdateOrderState(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateOrderStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Orders.UpdateState(utils.CurrentUserID(c), uint(id), req.State); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order status updated successfully"})
}

// GET /api/restaurant/sales-reports?filter=
func (h *RestaurantController) SalesReport(c *gin.Context) {
	report, err := h.Reports.SalesReport(utils.CurrentUserID(c), c.Query("filter"), time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}
