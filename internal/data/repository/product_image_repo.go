package repository

import (
	"context"
	"fmt"

	"hunarhub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductImageRepository interface {
	// FindURLsByProduct returns image URLs in insertion order.
	FindURLsByProduct(ctx context.Context, productID uuid.UUID) ([]string, error)
}

type productImageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductImageRepository(db database.PgxIface, log *zap.Logger) ProductImageRepository {
	return &productImageRepository{
		db:  db,
		log: log.With(zap.String("repository", "product_image")),
	}
}

func (r *productImageRepository) FindURLsByProduct(ctx context.Context, productID uuid.UUID) ([]string, error) {
	query := `
		SELECT image_url
		FROM product_images
		WHERE product_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to query product images",
			zap.Error(err),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("find images for product %s: %w", productID.String(), err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scan product image row: %w", err)
		}
		urls = append(urls, url)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product image rows: %w", err)
	}

	return urls, nil
}
