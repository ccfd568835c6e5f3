package models

import (
	"time"
)

// WeeklyGoal holds a user's configured targets, one row per user. Every
// target is independently optional: a nil column means "no goal set", which
// is distinct from a goal of zero.
type WeeklyGoal struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	UserID             uint      `gorm:"uniqueIndex" json:"user_id"`
	User               User      `gorm:"foreignKey:UserID" json:"-"`
	TargetKm           *float64  `json:"target_km,omitempty" example:"40"`
	TargetRuns         *int      `json:"target_runs,omitempty" example:"4"`
	TargetPaceSecPerKm *int      `json:"target_pace_sec_per_km,omitempty" example:"330"`
	TargetMonthlyKm    *float64  `json:"target_monthly_km,omitempty" example:"160"`
}
