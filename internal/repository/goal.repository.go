package repository

import (
	"errors"

	"runlog/internal/models"

	"gorm.io/gorm"
)

type GoalRepository interface {
	FindByUserID(userID uint) (*models.WeeklyGoal, error)
	Save(goal *models.WeeklyGoal) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db}
}

// FindByUserID returns (nil, nil) when the user has no goal row yet; absence
// of a goal is a normal state, not an error.
func (r *goalRepository) FindByUserID(userID uint) (*models.WeeklyGoal, error) {
	var goal models.WeeklyGoal
	err := r.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) Save(goal *models.WeeklyGoal) error {
	return r.db.Save(goal).Error
}
