package repository

import (
	"context"
	"fmt"

	"hunarhub/internal/data/entity"
	"hunarhub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.EntrepreneurReview, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, customer_id, entrepreneur_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.CustomerID,
		review.EntrepreneurID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("customer_id", review.CustomerID.String()),
			zap.String("entrepreneur_id", review.EntrepreneurID.String()),
		)
		return fmt.Errorf("create review for entrepreneur %s: %w",
			review.EntrepreneurID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.EntrepreneurReview, error) {
	query := `
		SELECT r.id, r.customer_id, r.entrepreneur_id, r.rating, r.comment,
		       r.created_at, u.name
		FROM reviews r
		JOIN users u ON r.customer_id = u.id
		WHERE r.entrepreneur_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, entrepreneurID)
	if err != nil {
		r.log.Error("Failed to query entrepreneur reviews",
			zap.Error(err),
			zap.String("entrepreneur_id", entrepreneurID.String()),
		)
		return nil, fmt.Errorf("find reviews for entrepreneur %s: %w", entrepreneurID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.EntrepreneurReview
	for rows.Next() {
		var review entity.EntrepreneurReview
		err := rows.Scan(
			&review.ID,
			&review.CustomerID,
			&review.EntrepreneurID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
