package exercise

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"gymcoach/internal/domain"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("exercise not found")
)

type Repository interface {
	Create(ctx context.Context, e *domain.Exercise) error
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	List(ctx context.Context, muscleGroup string) ([]domain.Exercise, error)
}

type CreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MuscleGroup string `json:"muscle_group"`
	Equipment   string `json:"equipment"`
	VideoURL    string `json:"video_url"`
}

type Service struct {
	exercises Repository
}

func NewService(exercises Repository) *Service {
	return &Service{exercises: exercises}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Exercise, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrValidation
	}

	e := &domain.Exercise{
		Name:        req.Name,
		Description: req.Description,
		MuscleGroup: strings.ToLower(strings.TrimSpace(req.MuscleGroup)),
		Equipment:   req.Equipment,
		VideoURL:    req.VideoURL,
	}
	if err := s.exercises.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Exercise, error) {
	e, err := s.exercises.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	return s.exercises.List(ctx, strings.ToLower(strings.TrimSpace(muscleGroup)))
}
