package repository

import (
	"context"
	"errors"
	"fmt"

	"hunarhub/internal/data/entity"
	"hunarhub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// pgUniqueViolation is the Postgres error code for unique constraint hits.
const pgUniqueViolation = "23505"

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// CreateWithEntrepreneur inserts the user row and, when profile is not
	// nil, the entrepreneur row in one transaction. Neither persists if
	// either insert fails.
	CreateWithEntrepreneur(ctx context.Context, user *entity.User, profile *entity.Entrepreneur) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const insertUserQuery = `
	INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

const insertEntrepreneurQuery = `
	INSERT INTO entrepreneurs (user_id, business_name, bio, category, location, verified)
	VALUES ($1, $2, $3, $4, $5, $6)
`

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := ur.db.Exec(ctx, insertUserQuery,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already exists", user.Email)
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) CreateWithEntrepreneur(ctx context.Context, user *entity.User, profile *entity.Entrepreneur) error {
	tx, err := ur.db.Begin(ctx)
	if err != nil {
		ur.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin register transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insertUserQuery,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already exists", user.Email)
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	if profile != nil {
		if _, err := tx.Exec(ctx, insertEntrepreneurQuery,
			profile.UserID,
			profile.BusinessName,
			profile.Bio,
			profile.Category,
			profile.Location,
			profile.Verified,
		); err != nil {
			ur.log.Error("Failed to create entrepreneur profile",
				zap.Error(err),
				zap.String("user_id", profile.UserID.String()),
			)
			return fmt.Errorf("create entrepreneur profile for %s: %w", user.Email, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		ur.log.Error("Failed to commit register transaction", zap.Error(err))
		return fmt.Errorf("commit register transaction: %w", err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	if err := ur.db.QueryRow(ctx, query).Scan(&count); err != nil {
		ur.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
