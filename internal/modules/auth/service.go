package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymcoach/internal/domain"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users          UserRepositoryInterface
	jwt            jwtService
	verifyTokenTTL time.Duration
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepositoryInterface, jwt jwtService, verifyTokenTTL time.Duration) *Service {
	return &Service{
		users:          users,
		jwt:            jwt,
		verifyTokenTTL: verifyTokenTTL,
	}
}

// Register creates a client account in the inactive state. The account
// activates through the verification token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	expires := time.Now().Add(s.verifyTokenTTL)

	user := &domain.User{
		Name:          req.Name,
		Email:         email,
		Phone:         req.Phone,
		PasswordHash:  string(hash),
		Role:          domain.RoleClient,
		Status:        domain.UserInactive,
		VerifyToken:   &token,
		VerifyExpires: &expires,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// no mail transport wired up, the token lands in the server log
	log.Printf("verification token for %s: %s", user.Email, token)

	user.PasswordHash = ""
	return user, nil
}

// Verify activates the account behind the token.
func (s *Service) Verify(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.users.GetByVerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if user.VerifyExpires == nil || user.VerifyExpires.Before(time.Now()) {
		return nil, ErrInvalidToken
	}

	if err := s.users.Activate(ctx, user.ID); err != nil {
		return nil, err
	}

	user.Status = domain.UserActive
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	switch user.Status {
	case domain.UserInactive:
		return nil, ErrAccountInactive
	case domain.UserSuspended:
		return nil, ErrAccountSuspended
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: token}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
