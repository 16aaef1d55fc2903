package repository

import (
	"context"
	"time"

	"gymcoach/internal/domain"

	"gorm.io/gorm"
)

type CoachRepository struct {
	db *gorm.DB
}

func NewCoachRepository(db *gorm.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

type coachModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	UserID         int64     `gorm:"column:user_id"`
	Specialty      string    `gorm:"column:specialty"`
	Certifications string    `gorm:"column:certifications"`
	Bio            string    `gorm:"column:bio"`
	Schedule       string    `gorm:"column:schedule"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (coachModel) TableName() string { return "coaches" }

func toDomainCoach(m coachModel) *domain.Coach {
	return &domain.Coach{
		ID:             m.ID,
		UserID:         m.UserID,
		Specialty:      m.Specialty,
		Certifications: m.Certifications,
		Bio:            m.Bio,
		Schedule:       m.Schedule,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toCoachModel(c *domain.Coach) coachModel {
	return coachModel{
		ID:             c.ID,
		UserID:         c.UserID,
		Specialty:      c.Specialty,
		Certifications: c.Certifications,
		Bio:            c.Bio,
		Schedule:       c.Schedule,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (r *CoachRepository) Create(ctx context.Context, c *domain.Coach) error {
	m := toCoachModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCoach(m)
	return nil
}

func (r *CoachRepository) GetByID(ctx context.Context, id int64) (*domain.Coach, error) {
	var m coachModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCoach(m), nil
}

func (r *CoachRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Coach, error) {
	var m coachModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCoach(m), nil
}

// GetActiveByID returns the coach only when the backing user account is
// active. Suspended or unverified coaches are not requestable.
func (r *CoachRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Coach, error) {
	var m coachModel
	tx := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = coaches.user_id").
		Where("coaches.id = ? AND users.status = ?", id, string(domain.UserActive)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCoach(m), nil
}

// CoachListItem is a directory row: profile plus the public user fields.
type CoachListItem struct {
	CoachID   int64  `json:"coach_id" gorm:"column:coach_id"`
	Name      string `json:"name" gorm:"column:name"`
	Specialty string `json:"specialty" gorm:"column:specialty"`
	Bio       string `json:"bio,omitempty" gorm:"column:bio"`
	Schedule  string `json:"schedule,omitempty" gorm:"column:schedule"`
}

func (r *CoachRepository) ListActive(ctx context.Context) ([]CoachListItem, error) {
	var items []CoachListItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id AS coach_id, u.name, c.specialty, c.bio, c.schedule
		FROM coaches c
		JOIN users u ON u.id = c.user_id
		WHERE u.status = ?
		ORDER BY u.name`, string(domain.UserActive)).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert creates the profile on first save and updates it afterwards.
func (r *CoachRepository) Upsert(ctx context.Context, c *domain.Coach) error {
	var existing coachModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", c.UserID).First(&existing)
	if tx.Error != nil {
		if tx.Error != gorm.ErrRecordNotFound {
			return tx.Error
		}
		return r.Create(ctx, c)
	}

	err := r.db.WithContext(ctx).
		Model(&coachModel{}).
		Where("id = ?", existing.ID).
		Updates(map[string]any{
			"specialty":      c.Specialty,
			"certifications": c.Certifications,
			"bio":            c.Bio,
			"schedule":       c.Schedule,
			"updated_at":     time.Now(),
		}).Error
	if err != nil {
		return err
	}
	c.ID = existing.ID
	return nil
}

// CreateWithUser creates the user account and its coach profile in one
// transaction, for admin-provisioned coaches.
func (r *CoachRepository) CreateWithUser(ctx context.Context, u *domain.User, c *domain.Coach) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		um := toUserModel(u)
		if err := tx.Create(&um).Error; err != nil {
			return err
		}
		*u = *toDomainUser(um)

		c.UserID = u.ID
		cm := toCoachModel(c)
		if err := tx.Create(&cm).Error; err != nil {
			return err
		}
		*c = *toDomainCoach(cm)
		return nil
	})
}
