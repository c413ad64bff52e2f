package repository

import (
	"github.com/lshigami/exam-portal/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindByID(id uint) (*model.Student, error)
	FindByPRN(prn string) (*model.Student, error)
	FindPreAuthorizedByPRN(prn string) (*model.Student, error)
	FindRegisteredByEmailOrUsername(email, username string) (*model.Student, error)
	FindByEmail(email string) (*model.Student, error)
	CompleteRegistration(prn, username, email, passwordHash string) error
	FindAll() ([]model.Student, error)
	Delete(id uint) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByPRN(prn string) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("prn_number = ?", prn).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// FindPreAuthorizedByPRN matches the roster row a teacher created but no
// student has claimed yet.
func (r *studentRepository) FindPreAuthorizedByPRN(prn string) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("prn_number = ? AND password IS NULL", prn).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindRegisteredByEmailOrUsername(email, username string) (*model.Student, error) {
	var student model.Student
	err := r.db.Where("(email = ? OR username = ?) AND password IS NOT NULL", email, username).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByEmail(email string) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("email = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// CompleteRegistration fills the single pre-authorized roster row in place,
// targeted by PRN alone.
func (r *studentRepository) CompleteRegistration(prn, username, email, passwordHash string) error {
	return r.db.Model(&model.Student{}).
		Where("prn_number = ?", prn).
		Updates(map[string]interface{}{
			"username": username,
			"email":    email,
			"password": passwordHash,
		}).Error
}

func (r *studentRepository) FindAll() ([]model.Student, error) {
	var students []model.Student
	if err := r.db.Order("created_at DESC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.Student{}, id)
	return result.RowsAffected, result.Error
}
