package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopforge/storefront/internal/wishlist/app"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

type wishlistItemResp struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Price        string `json:"price"`
	ImageURL     string `json:"image_url"`
	Stock        int32  `json:"stock"`
	CategoryName string `json:"category_name,omitempty"`
}

type addItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (h *Handler) GetWishlist(c *gin.Context) {
	items, err := h.svc.GetWishlist(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]wishlistItemResp, 0, len(items))
	for _, it := range items {
		out = append(out, wishlistItemResp{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Price:        it.Price.StringFixed(2),
			ImageURL:     it.ImageURL,
			Stock:        it.Stock,
			CategoryName: it.CategoryName,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "malformed request body"})
		return
	}

	if err := h.svc.AddItem(c.Request.Context(), c.GetString("user_id"), req.ProductID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "item added to wishlist"})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.svc.RemoveItem(c.Request.Context(), c.GetString("user_id"), c.Param("product_id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed from wishlist"})
}

func (h *Handler) MoveToCart(c *gin.Context) {
	if err := h.svc.MoveToCart(c.Request.Context(), c.GetString("user_id"), c.Param("product_id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item moved to cart"})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrAlreadyListed):
		c.JSON(http.StatusConflict, gin.H{"error": "already_listed", "message": err.Error()})
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": err.Error()})
	case errors.Is(err, app.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "internal error"})
	}
}
