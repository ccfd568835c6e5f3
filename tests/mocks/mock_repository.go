package mocks

import (
	"time"

	"runlog/internal/models"
	"runlog/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Shared MockRunRepository
type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) Create(run *models.Run) error {
	args := m.Called(run)
	return args.Error(0)
}

func (m *MockRunRepository) CreateBatch(runs []models.Run) error {
	args := m.Called(runs)
	return args.Error(0)
}

func (m *MockRunRepository) FindByIDAndUserID(id, userID uint) (*models.Run, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Run), args.Error(1)
}

func (m *MockRunRepository) FindPageByUserID(userID uint, filter repository.RunFilter) ([]models.Run, int64, error) {
	args := m.Called(userID, filter)
	return args.Get(0).([]models.Run), args.Get(1).(int64), args.Error(2)
}

func (m *MockRunRepository) Update(run *models.Run) error {
	args := m.Called(run)
	return args.Error(0)
}

func (m *MockRunRepository) Delete(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockRunRepository) FindByUserIDAndDateRange(userID uint, from, to *time.Time) ([]models.Run, error) {
	args := m.Called(userID, from, to)
	return args.Get(0).([]models.Run), args.Error(1)
}

func (m *MockRunRepository) FindByUserIDAndDateSpan(userID uint, from, to time.Time) ([]models.Run, error) {
	args := m.Called(userID, from, to)
	return args.Get(0).([]models.Run), args.Error(1)
}

func (m *MockRunRepository) FindAllByUserID(userID uint) ([]models.Run, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Run), args.Error(1)
}

func (m *MockRunRepository) FindRecentByUserID(userID uint, limit int) ([]models.Run, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.Run), args.Error(1)
}

func (m *MockRunRepository) FindDateDistanceByUserID(userID uint) ([]models.Run, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Run), args.Error(1)
}

func (m *MockRunRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindPage(search string, page, pageSize int) ([]models.User, int64, error) {
	args := m.Called(search, page, pageSize)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

// Shared MockGoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindByUserID(userID uint) (*models.WeeklyGoal, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeeklyGoal), args.Error(1)
}

func (m *MockGoalRepository) Save(goal *models.WeeklyGoal) error {
	args := m.Called(goal)
	return args.Error(0)
}

// Shared MockStravaAccountRepository
type MockStravaAccountRepository struct {
	mock.Mock
}

func (m *MockStravaAccountRepository) FindByUserID(userID uint) (*models.StravaAccount, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StravaAccount), args.Error(1)
}

func (m *MockStravaAccountRepository) Upsert(account *models.StravaAccount) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockStravaAccountRepository) UpdateTokens(userID uint, accessToken, refreshToken string, expiresAt int64) error {
	args := m.Called(userID, accessToken, refreshToken, expiresAt)
	return args.Error(0)
}

func (m *MockStravaAccountRepository) Delete(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}
