package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopforge/storefront/internal/cart/app"
	"github.com/shopforge/storefront/internal/cart/domain"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

type cartItemResp struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int32  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	ImageURL    string `json:"image_url"`
	Stock       int32  `json:"stock"`
	Subtotal    string `json:"subtotal"`
}

type cartResp struct {
	ID    string         `json:"id"`
	Items []cartItemResp `json:"items"`
	Total string         `json:"total"`
}

type addItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int32  `json:"quantity"`
}

type setQuantityReq struct {
	Quantity int32 `json:"quantity"`
}

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.svc.GetCart(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResp(cart))
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "malformed request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	userID := c.GetString("user_id")
	if err := h.svc.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		writeError(c, err)
		return
	}

	cart, err := h.svc.GetCart(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResp(cart))
}

func (h *Handler) SetQuantity(c *gin.Context) {
	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "malformed request body"})
		return
	}

	userID := c.GetString("user_id")
	if err := h.svc.SetQuantity(c.Request.Context(), userID, c.Param("product_id"), req.Quantity); err != nil {
		writeError(c, err)
		return
	}

	cart, err := h.svc.GetCart(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResp(cart))
}

func (h *Handler) RemoveItem(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.svc.RemoveItem(c.Request.Context(), userID, c.Param("product_id")); err != nil {
		writeError(c, err)
		return
	}

	cart, err := h.svc.GetCart(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResp(cart))
}

func toResp(cart domain.Cart) cartResp {
	items := make([]cartItemResp, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, cartItemResp{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			ImageURL:    it.ImageURL,
			Stock:       it.Stock,
			Subtotal:    it.Subtotal.StringFixed(2),
		})
	}
	return cartResp{
		ID:    cart.ID,
		Items: items,
		Total: cart.Total.StringFixed(2),
	}
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, app.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "internal error"})
}
