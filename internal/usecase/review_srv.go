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

type ReviewService interface {
	CreateReview(ctx context.Context, customerID string, req *request.CreateReviewRequest) (*response.CreateReviewResponse, error)
	GetEntrepreneurReviews(ctx context.Context, entrepreneurID string) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, customerID string, req *request.CreateReviewRequest) (*response.CreateReviewResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reviewerID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}
	entrepreneurID, _ := uuid.Parse(req.EntrepreneurID)

	// 2. Target entrepreneur must exist
	profile, err := s.repo.Entrepreneur.FindByUserID(ctx, entrepreneurID)
	if err != nil {
		s.log.Error("Failed to look up entrepreneur for review", zap.Error(err), zap.String("entrepreneur_id", req.EntrepreneurID))
		return nil, fmt.Errorf("look up entrepreneur: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("entrepreneur %s not found", req.EntrepreneurID)
	}

	// 3. Persist review
	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CustomerID:     reviewerID,
		EntrepreneurID: entrepreneurID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("customer_id", customerID),
		zap.String("entrepreneur_id", req.EntrepreneurID),
		zap.Int("rating", req.Rating),
	)

	return &response.CreateReviewResponse{ReviewID: review.ID.String()}, nil
}

func (s *reviewService) GetEntrepreneurReviews(ctx context.Context, entrepreneurID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(entrepreneurID)
	if err != nil {
		return nil, fmt.Errorf("invalid entrepreneur ID format %s: %w", entrepreneurID, err)
	}

	reviews, err := s.repo.Review.FindByEntrepreneur(ctx, id)
	if err != nil {
		s.log.Error("Failed to get entrepreneur reviews",
			zap.Error(err),
			zap.String("entrepreneur_id", entrepreneurID),
		)
		return nil, fmt.Errorf("get entrepreneur reviews: %w", err)
	}

	responses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = response.ReviewToResponse(review)
	}

	return responses, nil
}
