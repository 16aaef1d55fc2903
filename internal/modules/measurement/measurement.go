package measurement

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gymcoach/internal/domain"
	"gymcoach/internal/identity"
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("operation not allowed for this role")
	ErrNotFound   = errors.New("no measurements recorded")
)

type Repository interface {
	Create(ctx context.Context, m *domain.Measurement) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Measurement, error)
	Latest(ctx context.Context, userID int64) (*domain.Measurement, error)
}

// CoachFinder resolves the client's active coach for the notification.
type CoachFinder interface {
	ActiveCoachUserID(ctx context.Context, clientUserID int64) (int64, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Resolver interface {
	Resolve(ctx context.Context, userID int64) (*identity.Identity, error)
}

type NotificationSender interface {
	NotifyNewMeasurement(ctx context.Context, coachUserID, clientUserID int64, clientName string) error
}

type CreateRequest struct {
	WeightKg     *float64 `json:"weight_kg"`
	HeightCm     *float64 `json:"height_cm"`
	BodyFatPct   *float64 `json:"body_fat_pct"`
	MuscleMassKg *float64 `json:"muscle_mass_kg"`
	ChestCm      *float64 `json:"chest_cm"`
	WaistCm      *float64 `json:"waist_cm"`
	HipCm        *float64 `json:"hip_cm"`
	ArmCm        *float64 `json:"arm_cm"`
	LegCm        *float64 `json:"leg_cm"`
	Notes        string   `json:"notes"`
}

type Service struct {
	measurements Repository
	coachFinder  CoachFinder
	users        UserGetter
	resolver     Resolver
	notifs       NotificationSender
}

func NewService(
	measurements Repository,
	coachFinder CoachFinder,
	users UserGetter,
	resolver Resolver,
	notifs NotificationSender,
) *Service {
	return &Service{
		measurements: measurements,
		coachFinder:  coachFinder,
		users:        users,
		resolver:     resolver,
		notifs:       notifs,
	}
}

// Record stores a body-measurement snapshot for the calling client and pings
// their active coach, if they have one.
func (s *Service) Record(ctx context.Context, clientUserID int64, req CreateRequest) (*domain.Measurement, error) {
	ident, err := s.resolver.Resolve(ctx, clientUserID)
	if err != nil {
		return nil, err
	}
	if ident.Role != domain.RoleClient {
		return nil, ErrForbidden
	}
	if !hasAnyValue(req) {
		return nil, ErrValidation
	}

	m := &domain.Measurement{
		UserID:       clientUserID,
		WeightKg:     req.WeightKg,
		HeightCm:     req.HeightCm,
		BodyFatPct:   req.BodyFatPct,
		MuscleMassKg: req.MuscleMassKg,
		ChestCm:      req.ChestCm,
		WaistCm:      req.WaistCm,
		HipCm:        req.HipCm,
		ArmCm:        req.ArmCm,
		LegCm:        req.LegCm,
		Notes:        req.Notes,
		RecordedAt:   time.Now(),
	}
	if err := s.measurements.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		coachUserID, err := s.coachFinder.ActiveCoachUserID(ctx, clientUserID)
		if err == nil && coachUserID > 0 {
			client, cerr := s.users.GetByID(ctx, clientUserID)
			if cerr == nil {
				_ = s.notifs.NotifyNewMeasurement(ctx, coachUserID, clientUserID, client.Name)
			}
		}
	}

	return m, nil
}

func hasAnyValue(req CreateRequest) bool {
	for _, v := range []*float64{
		req.WeightKg, req.HeightCm, req.BodyFatPct, req.MuscleMassKg,
		req.ChestCm, req.WaistCm, req.HipCm, req.ArmCm, req.LegCm,
	} {
		if v != nil {
			return true
		}
	}
	return false
}

func (s *Service) History(ctx context.Context, userID int64, limit int) ([]domain.Measurement, error) {
	return s.measurements.ListByUser(ctx, userID, limit)
}

func (s *Service) Latest(ctx context.Context, userID int64) (*domain.Measurement, error) {
	m, err := s.measurements.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
