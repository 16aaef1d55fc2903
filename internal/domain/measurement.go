package domain

import "time"

// Measurement is a body-measurement snapshot recorded by a client.
// Optional fields stay nil when the client skipped them.
type Measurement struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	UserID       int64     `json:"user_id" gorm:"index"`
	WeightKg     *float64  `json:"weight_kg,omitempty"`
	HeightCm     *float64  `json:"height_cm,omitempty"`
	BodyFatPct   *float64  `json:"body_fat_pct,omitempty"`
	MuscleMassKg *float64  `json:"muscle_mass_kg,omitempty"`
	ChestCm      *float64  `json:"chest_cm,omitempty"`
	WaistCm      *float64  `json:"waist_cm,omitempty"`
	HipCm        *float64  `json:"hip_cm,omitempty"`
	ArmCm        *float64  `json:"arm_cm,omitempty"`
	LegCm        *float64  `json:"leg_cm,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}
