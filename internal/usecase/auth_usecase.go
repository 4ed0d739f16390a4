package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo   domain.UserRepository
	dispatcher domain.NotificationDispatcher
	validate   *validator.Validate
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	dispatcher domain.NotificationDispatcher,
	validate *validator.Validate,
	jwtSecret string,
	tokenTTL time.Duration,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:   userRepo,
		dispatcher: dispatcher,
		validate:   validate,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}

// Register creates a user together with its profile. The employer flag and
// trimmed company name land on the profile. A welcome email is dispatched
// best-effort: delivery failure never fails registration.
func (uc *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
	}
	profile := &domain.Profile{
		IsEmployer:  input.IsEmployer,
		CompanyName: strings.TrimSpace(input.CompanyName),
	}

	if err := uc.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, apperror.Conflict("Username is already taken")
		}
		return nil, apperror.Internal(err)
	}

	if err := uc.dispatcher.Welcome(ctx, user); err != nil {
		logger.Log.Warn("welcome email failed", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// Login verifies credentials and issues an HS256 JWT.
func (uc *authUsecase) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"email":    user.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(uc.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	return signed, user, nil
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, *domain.Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, apperror.NotFound("User not found")
	}
	profile, err := uc.userRepo.GetProfile(ctx, id)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return user, profile, nil
}
