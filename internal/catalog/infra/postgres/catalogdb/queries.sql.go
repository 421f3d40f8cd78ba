package catalogdb

import (
	"context"

	"github.com/google/uuid"
)

const getProduct = `
SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, c.name AS category_name, p.image_url, p.created_at, p.updated_at
FROM products p
LEFT JOIN categories c ON p.category_id = c.id
WHERE p.id = $1
`

func (q *Queries) GetProduct(ctx context.Context, id uuid.UUID) (Product, error) {
	row := q.db.QueryRowContext(ctx, getProduct, id)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.CategoryID, &p.CategoryName, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const listProducts = `
SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, c.name AS category_name, p.image_url, p.created_at, p.updated_at
FROM products p
LEFT JOIN categories c ON p.category_id = c.id
WHERE ($1 = '' OR p.name ILIKE '%' || $1 || '%')
  AND ($2::uuid IS NULL OR p.category_id = $2)
ORDER BY p.created_at DESC
`

type ListProductsParams struct {
	Search     string
	CategoryID uuid.NullUUID
}

func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx, listProducts, arg.Search, arg.CategoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.CategoryID, &p.CategoryName, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

const listCategories = `
SELECT id, name FROM categories ORDER BY name
`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.QueryContext(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const listProductImages = `
SELECT id, product_id, image_url, display_order
FROM product_images
WHERE product_id = $1
ORDER BY display_order
`

func (q *Queries) ListProductImages(ctx context.Context, productID uuid.UUID) ([]ProductImage, error) {
	rows, err := q.db.QueryContext(ctx, listProductImages, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProductImage
	for rows.Next() {
		var img ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.DisplayOrder); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}
