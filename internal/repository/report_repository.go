package repository

import (
	"github.com/toeflcenter/backend/internal/model"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *model.Report) error
	FindByID(id uint) (*model.Report, error)
	FindAll() ([]model.Report, error)
	Update(report *model.Report) error
	Delete(id uint) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *model.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) FindByID(id uint) (*model.Report, error) {
	var report model.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindAll() ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Update(report *model.Report) error {
	return r.db.Save(report).Error
}

func (r *reportRepository) Delete(id uint) error {
	return r.db.Delete(&model.Report{}, id).Error
}
