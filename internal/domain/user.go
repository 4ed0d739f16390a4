package domain

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile carries the employer flag and company name for a user.
// Every user gets a profile row at registration; reads fall back to a
// zero-value profile so authorization checks never special-case a
// missing row.
type Profile struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	IsEmployer  bool   `json:"is_employer"`
	CompanyName string `json:"company_name"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username    string `validate:"required,min=3,max=150"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	IsEmployer  bool
	CompanyName string `validate:"max=255"`
}

type UserRepository interface {
	// CreateWithProfile inserts the user and its profile in one transaction.
	CreateWithProfile(ctx context.Context, user *User, profile *Profile) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetProfile returns the user's profile, or a zero-value default
	// (is_employer=false) when no row exists.
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, username, password string) (string, *User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, *Profile, error)
}
