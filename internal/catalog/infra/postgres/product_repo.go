package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopforge/storefront/internal/catalog/app"
	"github.com/shopforge/storefront/internal/catalog/domain"
	"github.com/shopforge/storefront/internal/catalog/infra/postgres/catalogdb"
)

type ProductRepo struct {
	q *catalogdb.Queries
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{q: catalogdb.New(db)}
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, app.ErrNotFound
	}

	row, err := r.q.GetProduct(ctx, prodID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}

	images, err := r.q.ListProductImages(ctx, prodID)
	if err != nil {
		return domain.Product{}, err
	}

	p := toDomain(row)
	p.Images = make([]domain.ProductImage, 0, len(images))
	for _, img := range images {
		p.Images = append(p.Images, domain.ProductImage{
			ID:           img.ID.String(),
			URL:          img.ImageURL,
			DisplayOrder: img.DisplayOrder,
		})
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, search, categoryID string) ([]domain.Product, error) {
	var catID uuid.NullUUID
	if categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, app.ErrInvalidInput
		}
		catID = uuid.NullUUID{UUID: id, Valid: true}
	}

	rows, err := r.q.ListProducts(ctx, catalogdb.ListProductsParams{
		Search:     search,
		CategoryID: catID,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (r *ProductRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Category{ID: row.ID.String(), Name: row.Name})
	}
	return out, nil
}

func toDomain(row catalogdb.Product) domain.Product {
	p := domain.Product{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Stock:       row.Stock,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.CategoryID.Valid {
		p.CategoryID = row.CategoryID.UUID.String()
	}
	if row.CategoryName.Valid {
		p.CategoryName = row.CategoryName.String
	}
	return p
}

var _ app.ProductRepo = (*ProductRepo)(nil)
