package repository

import (
	"time"

	"runlog/internal/models"

	"gorm.io/gorm"
)

// RunFilter narrows a paged listing. Nil bounds leave that side of the date
// range open.
type RunFilter struct {
	From     *time.Time
	To       *time.Time
	Type     string
	Page     int
	PageSize int
}

type RunRepository interface {
	Create(run *models.Run) error
	CreateBatch(runs []models.Run) error
	FindByIDAndUserID(id, userID uint) (*models.Run, error)
	FindPageByUserID(userID uint, filter RunFilter) ([]models.Run, int64, error)
	Update(run *models.Run) error
	Delete(id, userID uint) error
	FindByUserIDAndDateRange(userID uint, from, to *time.Time) ([]models.Run, error)
	FindByUserIDAndDateSpan(userID uint, from, to time.Time) ([]models.Run, error)
	FindAllByUserID(userID uint) ([]models.Run, error)
	FindRecentByUserID(userID uint, limit int) ([]models.Run, error)
	FindDateDistanceByUserID(userID uint) ([]models.Run, error)
	CountByUserID(userID uint) (int64, error)
}

type runRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) RunRepository {
	return &runRepository{db}
}

func (r *runRepository) Create(run *models.Run) error {
	return r.db.Create(run).Error
}

func (r *runRepository) CreateBatch(runs []models.Run) error {
	if len(runs) == 0 {
		return nil
	}
	return r.db.Create(&runs).Error
}

func (r *runRepository) FindByIDAndUserID(id, userID uint) (*models.Run, error) {
	var run models.Run
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *runRepository) FindPageByUserID(userID uint, filter RunFilter) ([]models.Run, int64, error) {
	query := r.db.Model(&models.Run{}).Where("user_id = ?", userID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var runs []models.Run
	err := query.Order("date DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&runs).Error
	return runs, total, err
}

func (r *runRepository) Update(run *models.Run) error {
	return r.db.Save(run).Error
}

// Delete soft-deletes; GORM sets deleted_at so the row drops out of every
// other query automatically.
func (r *runRepository) Delete(id, userID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Run{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *runRepository) FindByUserIDAndDateRange(userID uint, from, to *time.Time) ([]models.Run, error) {
	query := r.db.Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var runs []models.Run
	err := query.Order("date ASC").Find(&runs).Error
	return runs, err
}

// FindByUserIDAndDateSpan returns runs in the half-open range [from, to),
// so a window boundary never swallows a run timestamped exactly on it.
func (r *runRepository) FindByUserIDAndDateSpan(userID uint, from, to time.Time) ([]models.Run, error) {
	var runs []models.Run
	err := r.db.Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").Find(&runs).Error
	return runs, err
}

func (r *runRepository) FindAllByUserID(userID uint) ([]models.Run, error) {
	var runs []models.Run
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&runs).Error
	return runs, err
}

func (r *runRepository) FindRecentByUserID(userID uint, limit int) ([]models.Run, error) {
	var runs []models.Run
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

// FindDateDistanceByUserID projects only the columns the import dedup key
// needs, so loading a large history stays cheap.
func (r *runRepository) FindDateDistanceByUserID(userID uint) ([]models.Run, error) {
	var runs []models.Run
	err := r.db.Select("date", "distance_km").Where("user_id = ?", userID).Find(&runs).Error
	return runs, err
}

func (r *runRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Run{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
