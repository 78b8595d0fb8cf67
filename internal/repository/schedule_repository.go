package repository

import (
	"github.com/toeflcenter/backend/internal/model"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(schedule *model.Schedule) error
	FindByID(id uint) (*model.Schedule, error)
	FindByIDWithUsers(id uint) (*model.Schedule, error)
	FindAll() ([]model.Schedule, error)
	Update(schedule *model.Schedule) error
	Delete(id uint) error
	CountRegistrations(scheduleID uint) (int64, error)
	IsRegistered(scheduleID, userID uint) (bool, error)
	RegisterUser(schedule *model.Schedule, user *model.User) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(schedule *model.Schedule) error {
	return r.db.Create(schedule).Error
}

func (r *scheduleRepository) FindByID(id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByIDWithUsers(id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.Preload("RegisteredUsers").First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindAll() ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.Preload("RegisteredUsers").Order("test_date asc").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(schedule *model.Schedule) error {
	return r.db.Omit("RegisteredUsers").Save(schedule).Error
}

func (r *scheduleRepository) Delete(id uint) error {
	return r.db.Delete(&model.Schedule{}, id).Error
}

func (r *scheduleRepository) CountRegistrations(scheduleID uint) (int64, error) {
	var count int64
	err := r.db.Table("schedule_registrations").Where("schedule_id = ?", scheduleID).Count(&count).Error
	return count, err
}

func (r *scheduleRepository) IsRegistered(scheduleID, userID uint) (bool, error) {
	var count int64
	err := r.db.Table("schedule_registrations").
		Where("schedule_id = ? AND user_id = ?", scheduleID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *scheduleRepository) RegisterUser(schedule *model.Schedule, user *model.User) error {
	return r.db.Model(schedule).Association("RegisteredUsers").Append(user)
}
