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

type EntrepreneurRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Entrepreneur, error)
	FindAllProfiles(ctx context.Context) ([]*entity.EntrepreneurProfile, error)
	FindPendingProfiles(ctx context.Context) ([]*entity.EntrepreneurProfile, error)
	Verify(ctx context.Context, userID uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

type entrepreneurRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEntrepreneurRepository(db database.PgxIface, log *zap.Logger) EntrepreneurRepository {
	return &entrepreneurRepository{
		db:  db,
		log: log.With(zap.String("repository", "entrepreneur")),
	}
}

func (r *entrepreneurRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Entrepreneur, error) {
	query := `
		SELECT user_id, business_name, bio, category, location, verified
		FROM entrepreneurs
		WHERE user_id = $1
	`

	var profile entity.Entrepreneur
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.BusinessName,
		&profile.Bio,
		&profile.Category,
		&profile.Location,
		&profile.Verified,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find entrepreneur profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find entrepreneur %s: %w", userID.String(), err)
	}

	return &profile, nil
}

func (r *entrepreneurRepository) FindAllProfiles(ctx context.Context) ([]*entity.EntrepreneurProfile, error) {
	query := `
		SELECT u.id, u.name, u.email, e.business_name, e.bio, e.category, e.location, e.verified
		FROM users u
		JOIN entrepreneurs e ON u.id = e.user_id
		WHERE u.role = 'entrepreneur'
		ORDER BY e.business_name
	`

	return r.queryProfiles(ctx, query)
}

func (r *entrepreneurRepository) FindPendingProfiles(ctx context.Context) ([]*entity.EntrepreneurProfile, error) {
	query := `
		SELECT u.id, u.name, u.email, e.business_name, e.bio, e.category, e.location, e.verified
		FROM users u
		JOIN entrepreneurs e ON u.id = e.user_id
		WHERE e.verified = FALSE
		ORDER BY u.created_at
	`

	return r.queryProfiles(ctx, query)
}

func (r *entrepreneurRepository) queryProfiles(ctx context.Context, query string) ([]*entity.EntrepreneurProfile, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query entrepreneur profiles", zap.Error(err))
		return nil, fmt.Errorf("query entrepreneur profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.EntrepreneurProfile
	for rows.Next() {
		var p entity.EntrepreneurProfile
		err := rows.Scan(
			&p.UserID,
			&p.Name,
			&p.Email,
			&p.BusinessName,
			&p.Bio,
			&p.Category,
			&p.Location,
			&p.Verified,
		)
		if err != nil {
			r.log.Error("Failed to scan entrepreneur profile", zap.Error(err))
			return nil, fmt.Errorf("scan entrepreneur profile: %w", err)
		}
		profiles = append(profiles, &p)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate entrepreneur profiles: %w", err)
	}

	return profiles, nil
}

// Verify sets the verified flag. One-way: there is no unverify.
func (r *entrepreneurRepository) Verify(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE entrepreneurs SET verified = TRUE WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to verify entrepreneur",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("verify entrepreneur %s: %w", userID.String(), err)
	}

	return nil
}

func (r *entrepreneurRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM entrepreneurs`).Scan(&count); err != nil {
		r.log.Error("Failed to count entrepreneurs", zap.Error(err))
		return 0, fmt.Errorf("count entrepreneurs: %w", err)
	}
	return count, nil
}

func (r *entrepreneurRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM entrepreneurs WHERE verified = FALSE`).Scan(&count); err != nil {
		r.log.Error("Failed to count pending entrepreneurs", zap.Error(err))
		return 0, fmt.Errorf("count pending entrepreneurs: %w", err)
	}
	return count, nil
}
