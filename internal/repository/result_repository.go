package repository

import (
	"github.com/toeflcenter/backend/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.Result) error
	FindByID(id uint) (*model.Result, error)
	FindByIDWithRefs(id uint) (*model.Result, error)
	FindAll() ([]model.Result, error)
	FindAllByUser(userID uint) ([]model.Result, error)
	Update(result *model.Result) error
	Delete(id uint) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindByIDWithRefs(id uint) (*model.Result, error) {
	var result model.Result
	err := r.db.Preload("User").Preload("Test").First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAll() ([]model.Result, error) {
	var results []model.Result
	err := r.db.Preload("User").Preload("Test").Order("created_at desc").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) FindAllByUser(userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Preload("Test").Where("user_id = ?", userID).Order("created_at desc").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) Update(result *model.Result) error {
	return r.db.Save(result).Error
}

func (r *resultRepository) Delete(id uint) error {
	return r.db.Delete(&model.Result{}, id).Error
}
