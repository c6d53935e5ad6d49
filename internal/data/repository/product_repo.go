package repository

import (
	"context"
	"fmt"

	"hunarhub/internal/data/entity"
	"hunarhub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	// CreateWithImages inserts the product row and one product_images row
	// per image in a single transaction.
	CreateWithImages(ctx context.Context, product *entity.Product, images []*entity.ProductImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Product, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Product, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) CreateWithImages(ctx context.Context, product *entity.Product, images []*entity.ProductImage) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin product transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertProduct := `
		INSERT INTO products (id, entrepreneur_id, name, description, price, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := tx.Exec(ctx, insertProduct,
		product.ID,
		product.EntrepreneurID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.CreatedAt,
	); err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("entrepreneur_id", product.EntrepreneurID.String()),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	insertImage := `
		INSERT INTO product_images (id, product_id, image_url, position)
		VALUES ($1, $2, $3, $4)
	`

	for _, img := range images {
		if _, err := tx.Exec(ctx, insertImage,
			img.ID,
			img.ProductID,
			img.ImageURL,
			img.Position,
		); err != nil {
			r.log.Error("Failed to create product image",
				zap.Error(err),
				zap.String("product_id", img.ProductID.String()),
			)
			return fmt.Errorf("create image for product %s: %w", product.ID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit product transaction", zap.Error(err))
		return fmt.Errorf("commit product transaction: %w", err)
	}

	return nil
}

const selectProductColumns = `
	SELECT id, entrepreneur_id, name, description, price, image_url, created_at
	FROM products
`

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := selectProductColumns + ` WHERE id = $1`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.EntrepreneurID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.ImageURL,
		&product.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return &product, nil
}

func (r *productRepository) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Product, error) {
	query := selectProductColumns + ` WHERE entrepreneur_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, entrepreneurID)
	if err != nil {
		r.log.Error("Failed to query entrepreneur products",
			zap.Error(err),
			zap.String("entrepreneur_id", entrepreneurID.String()),
		)
		return nil, fmt.Errorf("find products for entrepreneur %s: %w", entrepreneurID.String(), err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *productRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	query := selectProductColumns + ` ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to query recent products", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("find recent products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.EntrepreneurID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.ImageURL,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
