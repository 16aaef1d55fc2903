package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymcoach/internal/domain"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type UserRepositoryInterface interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error
}

// CoachAccountCreator creates the user row and coach profile atomically.
type CoachAccountCreator interface {
	CreateWithUser(ctx context.Context, u *domain.User, c *domain.Coach) error
}

type CreateCoachRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Password       string `json:"password" binding:"required,min=6"`
	Specialty      string `json:"specialty" binding:"required"`
	Certifications string `json:"certifications"`
	Bio            string `json:"bio"`
	Schedule       string `json:"schedule"`
}

type CreateCoachResult struct {
	User  *domain.User  `json:"user"`
	Coach *domain.Coach `json:"coach"`
}

type Service struct {
	users   UserRepositoryInterface
	coaches CoachAccountCreator
}

func NewService(users UserRepositoryInterface, coaches CoachAccountCreator) *Service {
	return &Service{users: users, coaches: coaches}
}

// CreateCoach provisions a coach account. Admin-created coaches skip email
// verification and start active.
func (s *Service) CreateCoach(ctx context.Context, req CreateCoachRequest) (*CreateCoachResult, error) {
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

	now := time.Now()
	user := &domain.User{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         domain.RoleCoach,
		Status:       domain.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	coach := &domain.Coach{
		Specialty:      req.Specialty,
		Certifications: req.Certifications,
		Bio:            req.Bio,
		Schedule:       req.Schedule,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.coaches.CreateWithUser(ctx, user, coach); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &CreateCoachResult{User: user, Coach: coach}, nil
}

func (s *Service) SuspendUser(ctx context.Context, userID int64) error {
	return s.setStatus(ctx, userID, domain.UserSuspended)
}

func (s *Service) RestoreUser(ctx context.Context, userID int64) error {
	return s.setStatus(ctx, userID, domain.UserActive)
}

func (s *Service) setStatus(ctx context.Context, userID int64, status domain.UserStatus) error {
	err := s.users.UpdateStatus(ctx, userID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
