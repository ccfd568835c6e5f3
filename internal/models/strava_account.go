package models

import (
	"time"
)

// StravaAccount links a user to their Strava athlete and caches the OAuth
// token pair. ExpiresAt is the access token expiry as epoch seconds, as
// returned by the Strava token endpoint.
type StravaAccount struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       uint      `gorm:"uniqueIndex" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID" json:"-"`
	AthleteID    int64     `gorm:"uniqueIndex" json:"athlete_id"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    int64     `json:"expires_at"`
}

// TokenExpiringWithin reports whether the access token expires within the
// given leeway from now.
func (a *StravaAccount) TokenExpiringWithin(leeway time.Duration) bool {
	return time.Now().Add(leeway).Unix() >= a.ExpiresAt
}
