package usecase

import (
	"context"
	"fmt"
	"time"

	"hunarhub/internal/data/entity"
	"hunarhub/internal/data/repository"
	"hunarhub/internal/dto/request"
	"hunarhub/internal/dto/response"
	"hunarhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OfferingService covers services offered by entrepreneurs and the
// requests customers file against them.
type OfferingService interface {
	CreateService(ctx context.Context, entrepreneurID string, req *request.CreateServiceRequest) (*response.CreateServiceResponse, error)
	GetEntrepreneurServices(ctx context.Context, entrepreneurID string) ([]response.ServiceResponse, error)
	CreateServiceRequest(ctx context.Context, customerID string, req *request.CreateServiceRequestRequest) (*response.CreateServiceRequestResponse, error)
	GetMyServiceRequests(ctx context.Context, userID, role string) ([]response.ServiceRequestResponse, error)
	UpdateServiceRequestStatus(ctx context.Context, entrepreneurID, requestID string, req *request.UpdateStatusRequest) error
}

type offeringService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOfferingService(repo *repository.Repository, log *zap.Logger) OfferingService {
	return &offeringService{
		repo: repo,
		log:  log.With(zap.String("service", "offering")),
	}
}

func (s *offeringService) CreateService(ctx context.Context, entrepreneurID string, req *request.CreateServiceRequest) (*response.CreateServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := uuid.Parse(entrepreneurID)
	if err != nil {
		return nil, fmt.Errorf("invalid entrepreneur ID format %s: %w", entrepreneurID, err)
	}

	service := &entity.Service{
		ID:             uuid.New(),
		EntrepreneurID: ownerID,
		Name:           req.Name,
		Description:    req.Description,
		PriceRange:     req.PriceRange,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("entrepreneur_id", entrepreneurID),
	)

	return &response.CreateServiceResponse{ServiceID: service.ID.String()}, nil
}

func (s *offeringService) GetEntrepreneurServices(ctx context.Context, entrepreneurID string) ([]response.ServiceResponse, error) {
	ownerID, err := uuid.Parse(entrepreneurID)
	if err != nil {
		return nil, fmt.Errorf("invalid entrepreneur ID format %s: %w", entrepreneurID, err)
	}

	services, err := s.repo.Service.FindByEntrepreneur(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to get entrepreneur services",
			zap.Error(err),
			zap.String("entrepreneur_id", entrepreneurID),
		)
		return nil, fmt.Errorf("get entrepreneur services: %w", err)
	}

	responses := make([]response.ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = response.ServiceToResponse(service)
	}

	return responses, nil
}

func (s *offeringService) CreateServiceRequest(ctx context.Context, customerID string, req *request.CreateServiceRequestRequest) (*response.CreateServiceRequestResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	buyerID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}
	serviceID, _ := uuid.Parse(req.ServiceID)
	entrepreneurID, _ := uuid.Parse(req.EntrepreneurID)

	// 2. Service must exist and belong to the named entrepreneur
	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		s.log.Error("Failed to look up service for request", zap.Error(err), zap.String("service_id", req.ServiceID))
		return nil, fmt.Errorf("look up service: %w", err)
	}
	if service == nil || service.EntrepreneurID != entrepreneurID {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	// 3. Persist request
	sr := &entity.ServiceRequest{
		ID:             uuid.New(),
		CustomerID:     buyerID,
		EntrepreneurID: entrepreneurID,
		ServiceID:      serviceID,
		Status:         entity.ServiceRequestStatusPending,
		Details:        req.Details,
		RequestDate:    time.Now(),
	}

	if err := s.repo.ServiceRequest.Create(ctx, sr); err != nil {
		return nil, fmt.Errorf("create service request: %w", err)
	}

	s.log.Info("Service request created",
		zap.String("request_id", sr.ID.String()),
		zap.String("customer_id", customerID),
		zap.String("service_id", req.ServiceID),
	)

	return &response.CreateServiceRequestResponse{RequestID: sr.ID.String()}, nil
}

func (s *offeringService) GetMyServiceRequests(ctx context.Context, userID, role string) ([]response.ServiceRequestResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	switch role {
	case string(entity.RoleEntrepreneur):
		requests, err := s.repo.ServiceRequest.FindByEntrepreneur(ctx, id)
		if err != nil {
			s.log.Error("Failed to get entrepreneur service requests", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("get entrepreneur service requests: %w", err)
		}
		responses := make([]response.ServiceRequestResponse, len(requests))
		for i, r := range requests {
			responses[i] = response.EntrepreneurServiceRequestToResponse(r)
		}
		return responses, nil
	default:
		requests, err := s.repo.ServiceRequest.FindByCustomer(ctx, id)
		if err != nil {
			s.log.Error("Failed to get customer service requests", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("get customer service requests: %w", err)
		}
		responses := make([]response.ServiceRequestResponse, len(requests))
		for i, r := range requests {
			responses[i] = response.CustomerServiceRequestToResponse(r)
		}
		return responses, nil
	}
}

func (s *offeringService) UpdateServiceRequestStatus(ctx context.Context, entrepreneurID, requestID string, req *request.UpdateStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service request status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := uuid.Parse(entrepreneurID)
	if err != nil {
		return fmt.Errorf("invalid entrepreneur ID format %s: %w", entrepreneurID, err)
	}
	id, err := uuid.Parse(requestID)
	if err != nil {
		return fmt.Errorf("service request %s not found", requestID)
	}

	updated, err := s.repo.ServiceRequest.UpdateStatusByOwner(ctx, id, ownerID, req.Status)
	if err != nil {
		return fmt.Errorf("update service request status: %w", err)
	}
	if !updated {
		return fmt.Errorf("service request %s not found", requestID)
	}

	s.log.Info("Service request status updated",
		zap.String("request_id", requestID),
		zap.String("entrepreneur_id", entrepreneurID),
		zap.String("status", req.Status),
	)

	return nil
}
