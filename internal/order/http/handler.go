package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopforge/storefront/internal/order/app"
	"github.com/shopforge/storefront/internal/order/domain"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

type shippingAddress struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

type placeOrderReq struct {
	ShippingAddress shippingAddress `json:"shipping_address"`
}

type orderLineResp struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int32  `json:"quantity"`
	PriceAtPurchase string `json:"price_at_purchase"`
}

type orderResp struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	TotalAmount     string          `json:"total_amount"`
	ShippingAddress shippingAddress `json:"shipping_address"`
	Lines           []orderLineResp `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
}

type orderSummaryResp struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"`
	ItemCount   int64     `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlaceOrder converts the authenticated user's cart into an order.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "malformed request body"})
		return
	}

	userID := c.GetString("user_id")
	order, err := h.svc.PlaceOrder(c.Request.Context(), userID, domain.ShippingAddress{
		Name:       req.ShippingAddress.Name,
		Street:     req.ShippingAddress.Street,
		City:       req.ShippingAddress.City,
		Region:     req.ShippingAddress.Region,
		PostalCode: req.ShippingAddress.PostalCode,
		Phone:      req.ShippingAddress.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResp(order))
}

func (h *Handler) ListOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	orders, err := h.svc.ListOrders(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]orderSummaryResp, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderSummaryResp{
			ID:          o.ID,
			Status:      o.Status,
			TotalAmount: o.TotalAmount.StringFixed(2),
			ItemCount:   o.ItemCount,
			CreatedAt:   o.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if order.UserID != userID {
		// don't leak other users' order ids
		writeError(c, app.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, toResp(order))
}

func toResp(o domain.Order) orderResp {
	lines := make([]orderLineResp, 0, len(o.Lines))
	for _, ln := range o.Lines {
		lines = append(lines, orderLineResp{
			ProductID:       ln.ProductID,
			ProductName:     ln.ProductName,
			Quantity:        ln.Quantity,
			PriceAtPurchase: ln.PriceAtPurchase.StringFixed(2),
		})
	}
	return orderResp{
		ID:          o.ID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount.StringFixed(2),
		ShippingAddress: shippingAddress{
			Name:       o.Address.Name,
			Street:     o.Address.Street,
			City:       o.Address.City,
			Region:     o.Address.Region,
			PostalCode: o.Address.PostalCode,
			Phone:      o.Address.Phone,
		},
		Lines:     lines,
		CreatedAt: o.CreatedAt,
	}
}

func writeError(c *gin.Context, err error) {
	var addrErr *app.InvalidAddressError
	var stockErr *app.InsufficientStockError

	switch {
	case errors.Is(err, app.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty_cart", "message": err.Error()})
	case errors.As(err, &addrErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_address", "message": err.Error()})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":      "insufficient_stock",
			"message":    err.Error(),
			"product_id": stockErr.ProductID,
			"available":  stockErr.Available,
		})
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": err.Error()})
	case errors.Is(err, app.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage_unavailable", "message": "try again later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "internal error"})
	}
}
