package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the public, read-only menu surface.
type CatalogController struct {
	Svc *services.RestaurantService
}

func NewCatalogController(s *services.RestaurantService) *CatalogController {
	return &CatalogController{Svc: s}
}

// GET /api/customer/restaurants/:restaurant_id/items
func (h *CatalogController) Items(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	items, err := h.Svc.ListItems(uint(restID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/customer/restaurants/:restaurant_id/items/:item_id
func (h *CatalogController) ItemDetail(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	item, err := h.Svc.ItemDetail(uint(restID), uint(itemID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}
