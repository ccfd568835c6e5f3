package models

import (
	"time"

	"gorm.io/gorm"
)

// Run types form a closed set; anything else is rejected at the boundary.
const (
	RunTypeEasy     = "easy"
	RunTypeTempo    = "tempo"
	RunTypeInterval = "interval"
	RunTypeLong     = "long"
	RunTypeRace     = "race"
	RunTypeStrength = "strength"
)

var RunTypes = []string{RunTypeEasy, RunTypeTempo, RunTypeInterval, RunTypeLong, RunTypeRace, RunTypeStrength}

func IsValidRunType(t string) bool {
	for _, v := range RunTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Run is one completed training session. Pace is always derived from
// duration/distance and never stored. Soft-deleted runs stay in the table but
// are excluded from every listing and statistic.
type Run struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint           `gorm:"index" json:"user_id" example:"1"`
	User        User           `gorm:"foreignKey:UserID" json:"-"`
	Date        time.Time      `gorm:"index" json:"date" example:"2024-01-01T00:00:00Z"`
	DistanceKm  float64        `json:"distance_km" example:"10.5"`
	DurationSec int            `json:"duration_sec" example:"3200"`
	Type        string         `gorm:"default:easy" json:"type" example:"easy"`
	RPE         *int           `json:"rpe,omitempty" example:"6"`
	Notes       *string        `json:"notes,omitempty"`
	TrackPoints [][]float64    `gorm:"serializer:json" json:"track_points,omitempty"`
}

// PaceSecPerKm derives seconds-per-kilometer; 0 when the distance is 0.
func (r *Run) PaceSecPerKm() float64 {
	if r.DistanceKm <= 0 {
		return 0
	}
	return float64(r.DurationSec) / r.DistanceKm
}
