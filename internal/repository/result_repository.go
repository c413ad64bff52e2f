package repository

import (
	"errors"

	"github.com/lshigami/exam-portal/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.ExamResult) error
	ExistsForExamAndStudent(examID, studentID uint) (bool, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.ExamResult) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) ExistsForExamAndStudent(examID, studentID uint) (bool, error) {
	var result model.ExamResult
	err := r.db.Select("id").
		Where("exam_id = ? AND student_id = ?", examID, studentID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
