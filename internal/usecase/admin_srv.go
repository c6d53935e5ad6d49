package usecase

import (
	"context"
	"fmt"

	"hunarhub/internal/data/entity"
	"hunarhub/internal/data/repository"
	"hunarhub/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	GetStats(ctx context.Context) (*response.StatsResponse, error)
	GetPendingEntrepreneurs(ctx context.Context) ([]response.PendingEntrepreneurResponse, error)
	VerifyEntrepreneur(ctx context.Context, entrepreneurID string) error
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	stats := &entity.PlatformStats{}

	var err error
	if stats.Users, err = s.repo.User.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("get platform stats: %w", err)
	}
	if stats.Entrepreneurs, err = s.repo.Entrepreneur.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("get platform stats: %w", err)
	}
	if stats.Orders, err = s.repo.Order.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("get platform stats: %w", err)
	}
	if stats.ServiceRequests, err = s.repo.ServiceRequest.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("get platform stats: %w", err)
	}
	if stats.PendingVerifications, err = s.repo.Entrepreneur.CountPending(ctx); err != nil {
		return nil, fmt.Errorf("get platform stats: %w", err)
	}

	resp := response.StatsToResponse(stats)
	return &resp, nil
}

func (s *adminService) GetPendingEntrepreneurs(ctx context.Context) ([]response.PendingEntrepreneurResponse, error) {
	profiles, err := s.repo.Entrepreneur.FindPendingProfiles(ctx)
	if err != nil {
		s.log.Error("Failed to get pending entrepreneurs", zap.Error(err))
		return nil, fmt.Errorf("get pending entrepreneurs: %w", err)
	}

	responses := make([]response.PendingEntrepreneurResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = response.PendingEntrepreneurToResponse(p)
	}

	return responses, nil
}

// VerifyEntrepreneur does not report whether the id matched a profile.
// Verifying an unknown id is a no-op that still succeeds.
func (s *adminService) VerifyEntrepreneur(ctx context.Context, entrepreneurID string) error {
	id, err := uuid.Parse(entrepreneurID)
	if err != nil {
		return fmt.Errorf("invalid entrepreneur ID format %s: %w", entrepreneurID, err)
	}

	if err := s.repo.Entrepreneur.Verify(ctx, id); err != nil {
		return fmt.Errorf("verify entrepreneur: %w", err)
	}

	s.log.Info("Entrepreneur verified", zap.String("entrepreneur_id", entrepreneurID))
	return nil
}
