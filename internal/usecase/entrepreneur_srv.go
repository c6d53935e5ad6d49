package usecase

import (
	"context"
	"fmt"

	"hunarhub/internal/data/repository"
	"hunarhub/internal/dto/response"

	"go.uber.org/zap"
)

type EntrepreneurService interface {
	ListEntrepreneurs(ctx context.Context) ([]response.EntrepreneurResponse, error)
}

type entrepreneurService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEntrepreneurService(repo *repository.Repository, log *zap.Logger) EntrepreneurService {
	return &entrepreneurService{
		repo: repo,
		log:  log.With(zap.String("service", "entrepreneur")),
	}
}

func (s *entrepreneurService) ListEntrepreneurs(ctx context.Context) ([]response.EntrepreneurResponse, error) {
	profiles, err := s.repo.Entrepreneur.FindAllProfiles(ctx)
	if err != nil {
		s.log.Error("Failed to list entrepreneurs", zap.Error(err))
		return nil, fmt.Errorf("list entrepreneurs: %w", err)
	}

	responses := make([]response.EntrepreneurResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = response.EntrepreneurToResponse(p)
	}

	return responses, nil
}
