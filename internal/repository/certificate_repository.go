package repository

import (
	"github.com/toeflcenter/backend/internal/model"
	"gorm.io/gorm"
)

type CertificateRepository interface {
	Create(certificate *model.Certificate) error
	FindByID(id uint) (*model.Certificate, error)
	FindByResultID(resultID uint) (*model.Certificate, error)
	FindAll() ([]model.Certificate, error)
	Update(certificate *model.Certificate) error
	Delete(id uint) error
}

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(certificate *model.Certificate) error {
	return r.db.Create(certificate).Error
}

func (r *certificateRepository) FindByID(id uint) (*model.Certificate, error) {
	var certificate model.Certificate
	if err := r.db.First(&certificate, id).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) FindByResultID(resultID uint) (*model.Certificate, error) {
	var certificate model.Certificate
	if err := r.db.Where("result_id = ?", resultID).First(&certificate).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) FindAll() ([]model.Certificate, error) {
	var certificates []model.Certificate
	err := r.db.Order("issued_date desc").Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}

func (r *certificateRepository) Update(certificate *model.Certificate) error {
	return r.db.Save(certificate).Error
}

func (r *certificateRepository) Delete(id uint) error {
	return r.db.Delete(&model.Certificate{}, id).Error
}
