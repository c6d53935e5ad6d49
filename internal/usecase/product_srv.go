package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"hunarhub/internal/data/entity"
	"hunarhub/internal/data/repository"
	"hunarhub/internal/dto/request"
	"hunarhub/internal/dto/response"
	"hunarhub/pkg/storage"
	"hunarhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recentProductsLimit caps the public recent feed.
const recentProductsLimit = 50

type ProductService interface {
	CreateProduct(ctx context.Context, entrepreneurID string, req *request.CreateProductRequest, files []*multipart.FileHeader) (*response.CreateProductResponse, error)
	GetRecentProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetEntrepreneurProducts(ctx context.Context, entrepreneurID string) ([]response.ProductResponse, error)
	GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error)
}

type productService struct {
	repo   *repository.Repository
	config *utils.Config
	store  *storage.LocalStorage
	log    *zap.Logger
}

func NewProductService(repo *repository.Repository, config *utils.Config, store *storage.LocalStorage, log *zap.Logger) ProductService {
	return &productService{
		repo:   repo,
		config: config,
		store:  store,
		log:    log.With(zap.String("service", "product")),
	}
}

func (s *productService) CreateProduct(ctx context.Context, entrepreneurID string, req *request.CreateProductRequest, files []*multipart.FileHeader) (*response.CreateProductResponse, error) {
	// Validate text fields
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := uuid.Parse(entrepreneurID)
	if err != nil {
		return nil, fmt.Errorf("invalid entrepreneur ID format %s: %w", entrepreneurID, err)
	}

	if len(files) > s.config.Upload.MaxImages {
		return nil, fmt.Errorf("validation failed: at most %d images allowed", s.config.Upload.MaxImages)
	}

	// Store files first; the product insert references their URLs
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.store.Save(fh)
		if err != nil {
			s.log.Error("Failed to store product image", zap.Error(err), zap.String("file", fh.Filename))
			s.removeFiles(urls)
			return nil, fmt.Errorf("store product image: %w", err)
		}
		urls = append(urls, url)
	}

	product := &entity.Product{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		EntrepreneurID: ownerID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
	}

	// First file doubles as the legacy thumbnail
	if len(urls) > 0 {
		product.ImageURL = &urls[0]
	}

	images := make([]*entity.ProductImage, len(urls))
	for i, url := range urls {
		images[i] = &entity.ProductImage{
			ID:        uuid.New(),
			ProductID: product.ID,
			ImageURL:  url,
			Position:  i,
		}
	}

	if err := s.repo.Product.CreateWithImages(ctx, product, images); err != nil {
		s.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("entrepreneur_id", entrepreneurID),
		)
		s.removeFiles(urls)
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("entrepreneur_id", entrepreneurID),
		zap.Int("images", len(urls)),
	)

	return &response.CreateProductResponse{ProductID: product.ID.String()}, nil
}

func (s *productService) GetRecentProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindRecent(ctx, recentProductsLimit)
	if err != nil {
		s.log.Error("Failed to get recent products", zap.Error(err))
		return nil, fmt.Errorf("get recent products: %w", err)
	}

	return s.toResponses(ctx, products)
}

func (s *productService) GetEntrepreneurProducts(ctx context.Context, entrepreneurID string) ([]response.ProductResponse, error) {
	ownerID, err := uuid.Parse(entrepreneurID)
	if err != nil {
		return nil, fmt.Errorf("invalid entrepreneur ID format %s: %w", entrepreneurID, err)
	}

	products, err := s.repo.Product.FindByEntrepreneur(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to get entrepreneur products",
			zap.Error(err),
			zap.String("entrepreneur_id", entrepreneurID),
		)
		return nil, fmt.Errorf("get entrepreneur products: %w", err)
	}

	return s.toResponses(ctx, products)
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID format %s: %w", productID, err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s not found", productID)
	}

	images, err := s.repo.ProductImage.FindURLsByProduct(ctx, product.ID)
	if err != nil {
		s.log.Error("Failed to get product images", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("get product images: %w", err)
	}

	resp := response.ProductToResponse(product, images)
	return &resp, nil
}

func (s *productService) toResponses(ctx context.Context, products []*entity.Product) ([]response.ProductResponse, error) {
	responses := make([]response.ProductResponse, len(products))
	for i, product := range products {
		images, err := s.repo.ProductImage.FindURLsByProduct(ctx, product.ID)
		if err != nil {
			s.log.Error("Failed to resolve product images",
				zap.Error(err),
				zap.String("product_id", product.ID.String()),
			)
			return nil, fmt.Errorf("resolve product images: %w", err)
		}
		responses[i] = response.ProductToResponse(product, images)
	}

	return responses, nil
}

// removeFiles cleans stored uploads after a failed create. Best effort.
func (s *productService) removeFiles(urls []string) {
	for _, url := range urls {
		if err := s.store.Remove(url); err != nil {
			s.log.Warn("Failed to remove orphaned upload", zap.Error(err), zap.String("url", url))
		}
	}
}
