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

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Service, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, entrepreneur_id, name, description, price_range)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.EntrepreneurID,
		service.Name,
		service.Description,
		service.PriceRange,
	)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("entrepreneur_id", service.EntrepreneurID.String()),
		)
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `
		SELECT id, entrepreneur_id, name, description, price_range
		FROM services
		WHERE id = $1
	`

	var service entity.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&service.ID,
		&service.EntrepreneurID,
		&service.Name,
		&service.Description,
		&service.PriceRange,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.String(), err)
	}

	return &service, nil
}

func (r *serviceRepository) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Service, error) {
	query := `
		SELECT id, entrepreneur_id, name, description, price_range
		FROM services
		WHERE entrepreneur_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, entrepreneurID)
	if err != nil {
		r.log.Error("Failed to query entrepreneur services",
			zap.Error(err),
			zap.String("entrepreneur_id", entrepreneurID.String()),
		)
		return nil, fmt.Errorf("find services for entrepreneur %s: %w", entrepreneurID.String(), err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		err := rows.Scan(
			&service.ID,
			&service.EntrepreneurID,
			&service.Name,
			&service.Description,
			&service.PriceRange,
		)
		if err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}
