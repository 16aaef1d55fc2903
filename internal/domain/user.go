package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleCoach  UserRole = "coach"
	RoleAdmin  UserRole = "admin"
)

type UserStatus string

const (
	UserInactive  UserStatus = "inactive"
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

// User is a gym account. Coaches additionally own a Coach profile row.
type User struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name"`
	Email         string     `json:"email" gorm:"uniqueIndex"`
	Phone         string     `json:"phone,omitempty"`
	PasswordHash  string     `json:"-"`
	Role          UserRole   `json:"role"`
	Status        UserStatus `json:"status"`
	VerifyToken   *string    `json:"-" gorm:"index"`
	VerifyExpires *time.Time `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Coach is the professional profile attached to a user with RoleCoach.
type Coach struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	UserID         int64     `json:"user_id" gorm:"uniqueIndex"`
	Specialty      string    `json:"specialty"`
	Certifications string    `json:"certifications,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Schedule       string    `json:"schedule,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
