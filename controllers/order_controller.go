package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

const defaultOrderHistoryLimit = 10

// POST /api/customer/orders
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orderID, err := h.Svc.CreateOrder(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{
		"order_id": orderID,
		"message":  "Order created successfully!",
	})
}

// GET /api/customer/orders?limit=
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	limit := defaultOrderHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			resp.BadRequest(c, "Invalid 'limit' parameter. It must be a positive integer.")
			return
		}
		limit = n
	}

	orders, err := h.Svc.ListForUser(uid, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/customer/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
