package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /api/customer/carts?restaurant_id=
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var restaurantID *uint
	if raw := c.Query("restaurant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid restaurant_id")
			return
		}
		v := uint(id)
		restaurantID = &v
	}

	carts, err := h.Svc.ListCarts(uid, restaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, carts)
}

// POST /api/customer/carts
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.AddItem(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cart)
}

// GET /api/customer/carts/:id
func (h *CartController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart id")
		return
	}

	cart, err := h.Svc.GetCart(uid, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

// PUT /api/customer/carts/:id
func (h *CartController) UpdateItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart id")
		return
	}

	var req services.UpdateItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.UpdateItem(uid, uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	if cart == nil {
		resp.OK(c, gin.H{"message": "Cart deleted."})
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/customer/carts/:id
func (h *CartController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart id")
		return
	}

	if err := h.Svc.DeleteCart(uid, uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart deleted."})
}

// DELETE /api/customer/carts/:id/items/:cart_item_id
func (h *CartController) DeleteItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cartID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart id")
		return
	}
	itemID, err := strconv.ParseUint(c.Param("cart_item_id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}

	if _, err := h.Svc.RemoveItem(uid, uint(cartID), uint(itemID)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart item deleted."})
}
