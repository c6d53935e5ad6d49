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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	// Login verifies credentials and opens a session. The session is
	// returned so the handler can set the cookie from its token and expiry.
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*response.SessionUser, *entity.Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input before touching storage
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !utils.IsStrongPassword(req.Password) {
		return nil, fmt.Errorf("password too weak (8+ chars, 1 upper, 1 num, 1 special)")
	}

	// 2. Entrepreneur registrations must carry a business name
	if req.Role == string(entity.RoleEntrepreneur) {
		if req.BusinessName == nil || *req.BusinessName == "" {
			return nil, fmt.Errorf("business name required for entrepreneurs")
		}
	}

	// 3. Check email is free
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 5. Build user entity; role is fixed here and never changes
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(req.Role),
	}

	var profile *entity.Entrepreneur
	if user.Role == entity.RoleEntrepreneur {
		profile = &entity.Entrepreneur{
			UserID:       user.ID,
			BusinessName: *req.BusinessName,
			Bio:          req.Bio,
			Category:     req.Category,
			Location:     req.Location,
			Verified:     false,
		}
	}

	// 6. User row and profile row persist together or not at all. The
	// unique index still guards the race between the email check and here.
	if err := s.repo.User.CreateWithEntrepreneur(ctx, user, profile); err != nil {
		s.log.Error("Failed to create account", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", req.Role))

	return &response.RegisterResponse{UserID: user.ID.String()}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*response.SessionUser, *entity.Session, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, nil, fmt.Errorf("failed to find user")
	}

	// 3. Unknown email and wrong password produce the same error, so a
	// caller cannot enumerate registered addresses.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, nil, fmt.Errorf("invalid credentials")
	}

	// 4. Create session
	session, err := s.createSession(ctx, user.ID, userAgent, ip)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	sessionUser := response.UserToSessionUser(user)
	return &sessionUser, session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid session token format", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, userAgent, ip string) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(expiry),
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ip != "" {
		session.IPAddress = &ip
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
