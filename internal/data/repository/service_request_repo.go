package repository

import (
	"context"
	"fmt"

	"hunarhub/internal/data/entity"
	"hunarhub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	// UpdateStatusByOwner mirrors the order repo: ownership is enforced in
	// the UPDATE itself and reported through the affected-row count.
	UpdateStatusByOwner(ctx context.Context, requestID, entrepreneurID uuid.UUID, status string) (bool, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerServiceRequest, error)
	FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.EntrepreneurServiceRequest, error)
	CountAll(ctx context.Context) (int64, error)
}

type serviceRequestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRequestRepository(db database.PgxIface, log *zap.Logger) ServiceRequestRepository {
	return &serviceRequestRepository{
		db:  db,
		log: log.With(zap.String("repository", "service_request")),
	}
}

func (r *serviceRequestRepository) Create(ctx context.Context, request *entity.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (id, customer_id, entrepreneur_id, service_id,
		                             status, details, request_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		request.ID,
		request.CustomerID,
		request.EntrepreneurID,
		request.ServiceID,
		request.Status,
		request.Details,
		request.RequestDate,
	)

	if err != nil {
		r.log.Error("Failed to create service request",
			zap.Error(err),
			zap.String("customer_id", request.CustomerID.String()),
			zap.String("service_id", request.ServiceID.String()),
		)
		return fmt.Errorf("create service request: %w", err)
	}

	return nil
}

func (r *serviceRequestRepository) UpdateStatusByOwner(ctx context.Context, requestID, entrepreneurID uuid.UUID, status string) (bool, error) {
	query := `
		UPDATE service_requests
		SET status = $1
		WHERE id = $2 AND entrepreneur_id = $3
	`

	result, err := r.db.Exec(ctx, query, status, requestID, entrepreneurID)
	if err != nil {
		r.log.Error("Failed to update service request status",
			zap.Error(err),
			zap.String("request_id", requestID.String()),
		)
		return false, fmt.Errorf("update service request %s status: %w", requestID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *serviceRequestRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerServiceRequest, error) {
	query := `
		SELECT sr.id, sr.customer_id, sr.entrepreneur_id, sr.service_id,
		       sr.status, sr.details, sr.request_date,
		       s.name, e.business_name
		FROM service_requests sr
		JOIN services s ON sr.service_id = s.id
		JOIN entrepreneurs e ON sr.entrepreneur_id = e.user_id
		WHERE sr.customer_id = $1
		ORDER BY sr.request_date DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to query customer service requests",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find service requests for customer %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var requests []*entity.CustomerServiceRequest
	for rows.Next() {
		var req entity.CustomerServiceRequest
		err := rows.Scan(
			&req.ID,
			&req.CustomerID,
			&req.EntrepreneurID,
			&req.ServiceID,
			&req.Status,
			&req.Details,
			&req.RequestDate,
			&req.ServiceName,
			&req.BusinessName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan customer service request row: %w", err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer service request rows: %w", err)
	}

	return requests, nil
}

func (r *serviceRequestRepository) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.EntrepreneurServiceRequest, error) {
	query := `
		SELECT sr.id, sr.customer_id, sr.entrepreneur_id, sr.service_id,
		       sr.status, sr.details, sr.request_date,
		       s.name, u.name
		FROM service_requests sr
		JOIN services s ON sr.service_id = s.id
		JOIN users u ON sr.customer_id = u.id
		WHERE sr.entrepreneur_id = $1
		ORDER BY sr.request_date DESC
	`

	rows, err := r.db.Query(ctx, query, entrepreneurID)
	if err != nil {
		r.log.Error("Failed to query entrepreneur service requests",
			zap.Error(err),
			zap.String("entrepreneur_id", entrepreneurID.String()),
		)
		return nil, fmt.Errorf("find service requests for entrepreneur %s: %w", entrepreneurID.String(), err)
	}
	defer rows.Close()

	var requests []*entity.EntrepreneurServiceRequest
	for rows.Next() {
		var req entity.EntrepreneurServiceRequest
		err := rows.Scan(
			&req.ID,
			&req.CustomerID,
			&req.EntrepreneurID,
			&req.ServiceID,
			&req.Status,
			&req.Details,
			&req.RequestDate,
			&req.ServiceName,
			&req.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan entrepreneur service request row: %w", err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entrepreneur service request rows: %w", err)
	}

	return requests, nil
}

func (r *serviceRequestRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM service_requests`).Scan(&count); err != nil {
		r.log.Error("Failed to count service requests", zap.Error(err))
		return 0, fmt.Errorf("count service requests: %w", err)
	}
	return count, nil
}
