package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopforge/storefront/internal/catalog/app"
	"github.com/shopforge/storefront/internal/catalog/domain"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

type productImageResp struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	DisplayOrder int32  `json:"display_order"`
}

type productResp struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Price        string             `json:"price"`
	Stock        int32              `json:"stock"`
	CategoryID   string             `json:"category_id,omitempty"`
	CategoryName string             `json:"category_name,omitempty"`
	ImageURL     string             `json:"image_url"`
	Images       []productImageResp `json:"images,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context(), c.Query("search"), c.Query("category_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]productResp, 0, len(products))
	for _, p := range products {
		out = append(out, toResp(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResp(p))
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	type categoryResp struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	out := make([]categoryResp, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResp{ID: cat.ID, Name: cat.Name})
	}
	c.JSON(http.StatusOK, out)
}

func toResp(p domain.Product) productResp {
	resp := productResp{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price.StringFixed(2),
		Stock:        p.Stock,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, productImageResp{
			ID:           img.ID,
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		})
	}
	return resp
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "product not found"})
	case errors.Is(err, app.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "internal error"})
	}
}
