package repository

import (
	"github.com/toeflcenter/backend/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindByIDWithQuestions(id uint) (*model.Test, error)
	FindAll() ([]model.Test, error)
	Update(test *model.Test) error
	ReplaceQuestions(testID uint, questions []model.Question) error
	Delete(id uint) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// Creates associated questions and choices in one go.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_test ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.id ASC")
		}).
		First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAll() ([]model.Test, error) {
	var tests []model.Test
	if err := r.db.Order("created_at desc").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) Update(test *model.Test) error {
	return r.db.Omit("Questions").Save(test).Error
}

// ReplaceQuestions swaps the test's whole question set atomically. Questions
// and their choices are owned by the test, so the old set is removed outright.
func (r *testRepository) ReplaceQuestions(testID uint, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []model.Question
		if err := tx.Where("test_id = ?", testID).Find(&existing).Error; err != nil {
			return err
		}
		for _, q := range existing {
			if err := tx.Where("question_id = ?", q.ID).Delete(&model.Choice{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("test_id = ?", testID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].TestID = testID
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

func (r *testRepository) Delete(id uint) error {
	// Deleting a test deletes its questions and choices with it.
	return r.db.Transaction(func(tx *gorm.DB) error {
		var questions []model.Question
		if err := tx.Where("test_id = ?", id).Find(&questions).Error; err != nil {
			return err
		}
		for _, q := range questions {
			if err := tx.Where("question_id = ?", q.ID).Delete(&model.Choice{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Test{}, id).Error
	})
}
