package repository

import (
	"github.com/lshigami/exam-portal/internal/model"
	"gorm.io/gorm"
)

type TeacherRepository interface {
	Create(teacher *model.Teacher) error
	FindByID(id uint) (*model.Teacher, error)
	FindByEmail(email string) (*model.Teacher, error)
	FindByEmailOrUsername(email, username string) (*model.Teacher, error)
}

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(teacher *model.Teacher) error {
	return r.db.Create(teacher).Error
}

func (r *teacherRepository) FindByID(id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.First(&teacher, id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) FindByEmail(email string) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.Where("email = ?", email).First(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) FindByEmailOrUsername(email, username string) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.Where("email = ? OR username = ?", email, username).First(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}
