package repository

import (
	"github.com/toeflcenter/backend/internal/model"
	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(content *model.Content) error
	FindByID(id uint) (*model.Content, error)
	FindAll() ([]model.Content, error)
	Update(content *model.Content) error
	Delete(id uint) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *model.Content) error {
	return r.db.Create(content).Error
}

func (r *contentRepository) FindByID(id uint) (*model.Content, error) {
	var content model.Content
	if err := r.db.First(&content, id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) FindAll() ([]model.Content, error) {
	var contents []model.Content
	if err := r.db.Order("created_at desc").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) Update(content *model.Content) error {
	return r.db.Save(content).Error
}

func (r *contentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Content{}, id).Error
}
