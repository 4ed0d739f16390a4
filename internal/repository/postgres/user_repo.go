package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// CreateWithProfile inserts the user and its profile in one transaction so a
// profile validation failure never leaves a dangling user row.
func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrUsernameTaken
		}
		return err
	}

	profile.UserID = user.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO profiles (user_id, is_employer, company_name)
		 VALUES ($1, $2, $3) RETURNING id`,
		profile.UserID, profile.IsEmployer, profile.CompanyName,
	).Scan(&profile.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE id = $1`
	var u domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE username = $1`
	var u domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetProfile returns the user's profile. A missing row yields a zero-value
// profile (is_employer=false) instead of an error.
func (r *userRepo) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	query := `SELECT id, user_id, is_employer, company_name FROM profiles WHERE user_id = $1`
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.IsEmployer, &p.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Profile{UserID: userID}, nil
		}
		return nil, err
	}
	return &p, nil
}
