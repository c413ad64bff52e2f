package repository

import (
	"github.com/lshigami/exam-portal/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByExamID(examID uint) ([]model.ExamQuestion, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByExamID(examID uint) ([]model.ExamQuestion, error) {
	var questions []model.ExamQuestion
	if err := r.db.Where("exam_id = ?", examID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
