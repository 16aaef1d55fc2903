package domain

import "time"

type NotificationType string

const (
	NotifCoachRequest    NotificationType = "coach_request"
	NotifCoachAccepted   NotificationType = "coach_accepted"
	NotifCoachRejected   NotificationType = "coach_rejected"
	NotifRoutineAssigned NotificationType = "routine_assigned"
	NotifNewMeasurement  NotificationType = "new_measurement"
)

type Notification struct {
	ID           int64            `json:"id" gorm:"primaryKey"`
	UserID       int64            `json:"user_id" gorm:"index"`
	OriginUserID int64            `json:"origin_user_id"`
	Type         NotificationType `json:"type"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	IsRead       bool             `json:"is_read"`
	CreatedAt    time.Time        `json:"created_at"`
}
