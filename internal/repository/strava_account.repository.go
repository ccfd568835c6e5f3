package repository

import (
	"runlog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StravaAccountRepository interface {
	FindByUserID(userID uint) (*models.StravaAccount, error)
	Upsert(account *models.StravaAccount) error
	UpdateTokens(userID uint, accessToken, refreshToken string, expiresAt int64) error
	Delete(userID uint) error
}

type stravaAccountRepository struct {
	db *gorm.DB
}

func NewStravaAccountRepository(db *gorm.DB) StravaAccountRepository {
	return &stravaAccountRepository{db}
}

func (r *stravaAccountRepository) FindByUserID(userID uint) (*models.StravaAccount, error) {
	var account models.StravaAccount
	err := r.db.Where("user_id = ?", userID).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Upsert keys on the athlete id so re-connecting the same athlete refreshes
// the stored token pair instead of duplicating the row.
func (r *stravaAccountRepository) Upsert(account *models.StravaAccount) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "athlete_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "refresh_token", "expires_at", "updated_at"}),
	}).Create(account).Error
}

func (r *stravaAccountRepository) UpdateTokens(userID uint, accessToken, refreshToken string, expiresAt int64) error {
	return r.db.Model(&models.StravaAccount{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"expires_at":    expiresAt,
		}).Error
}

func (r *stravaAccountRepository) Delete(userID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.StravaAccount{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
