package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lshigami/exam-portal/internal/dto"
	"github.com/lshigami/exam-portal/internal/model"
	"github.com/lshigami/exam-portal/internal/repository"
)

type RosterService interface {
	AddStudentByPRN(prn string) (*dto.StudentRef, error)
	ListStudents() ([]dto.StudentResponse, error)
	DeleteStudent(id uint) error
}

type rosterService struct {
	students repository.StudentRepository
}

func NewRosterService(students repository.StudentRepository) RosterService {
	return &rosterService{students: students}
}

// AddStudentByPRN pre-authorizes a roster identifier. The row carries only
// the PRN; the student fills in the rest at self-registration.
func (s *rosterService) AddStudentByPRN(prn string) (*dto.StudentRef, error) {
	_, err := s.students.FindByPRN(prn)
	if err == nil {
		return nil, fmt.Errorf("%w: student with this PRN number already exists", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking PRN %s: %w", prn, err)
	}

	student := model.Student{PRNNumber: prn}
	if err := s.students.Create(&student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: student with this PRN number already exists", ErrConflict)
		}
		return nil, fmt.Errorf("creating roster row: %w", err)
	}

	log.Info().Uint("studentID", student.ID).Str("prn", prn).Msg("Student PRN pre-authorized")
	return &dto.StudentRef{ID: student.ID, PRNNumber: student.PRNNumber}, nil
}

func (s *rosterService) ListStudents() ([]dto.StudentResponse, error) {
	students, err := s.students.FindAll()
	if err != nil {
		return nil, fmt.Errorf("fetching students: %w", err)
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		out = append(out, dto.StudentResponse{
			ID:        student.ID,
			Username:  student.Username,
			Email:     student.Email,
			PRNNumber: student.PRNNumber,
			CreatedAt: student.CreatedAt,
		})
	}
	return out, nil
}

func (s *rosterService) DeleteStudent(id uint) error {
	affected, err := s.students.Delete(id)
	if err != nil {
		return fmt.Errorf("deleting student %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: student not found", ErrNotFound)
	}
	log.Info().Uint("studentID", id).Msg("Student deleted")
	return nil
}
