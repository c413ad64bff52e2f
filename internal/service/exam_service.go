package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lshigami/exam-portal/internal/dto"
	"github.com/lshigami/exam-portal/internal/model"
	"github.com/lshigami/exam-portal/internal/repository"
)

type ExamService interface {
	CreateExam(teacherID uint, req dto.CreateExamRequest) (uint, error)
	ListExams(teacherID uint) ([]dto.ExamResponse, error)
	GetExamDetails(teacherID, examID uint) (*dto.ExamDetail, error)
	DeleteExam(teacherID, examID uint) error
	ListResults(teacherID uint) ([]dto.ResultResponse, error)
}

type examService struct {
	exams repository.ExamRepository
}

func NewExamService(exams repository.ExamRepository) ExamService {
	return &examService{exams: exams}
}

// CreateExam inserts the exam row and every question atomically; a failed
// question insert rolls back the whole unit.
func (s *examService) CreateExam(teacherID uint, req dto.CreateExamRequest) (uint, error) {
	questions := make([]model.ExamQuestion, 0, len(req.Questions))
	for i, q := range req.Questions {
		if err := validateQuestion(i, q); err != nil {
			return 0, err
		}
		questions = append(questions, model.ExamQuestion{
			Question:      q.Question,
			Options:       model.OptionList(q.Options),
			CorrectAnswer: *q.CorrectAnswer,
			Marks:         q.Marks,
		})
	}

	exam := model.Exam{
		Title:        req.Title,
		Subject:      req.Subject,
		Duration:     req.Duration,
		TotalMarks:   req.TotalMarks,
		PassingMarks: req.PassingMarks,
		Instructions: req.Instructions,
		TeacherID:    teacherID,
		Questions:    questions,
	}
	if err := s.exams.Create(&exam); err != nil {
		log.Error().Err(err).Uint("teacherID", teacherID).Msg("Failed to create exam")
		return 0, fmt.Errorf("creating exam: %w", err)
	}

	log.Info().Uint("examID", exam.ID).Uint("teacherID", teacherID).Int("questions", len(questions)).Msg("Exam created")
	return exam.ID, nil
}

func validateQuestion(index int, q dto.QuestionCreateRequest) error {
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: question %d needs at least two options", ErrValidation, index+1)
	}
	correct := *q.CorrectAnswer
	if correct < 0 || correct >= len(q.Options) {
		return fmt.Errorf("%w: question %d correct answer index %d is outside its %d options",
			ErrValidation, index+1, correct, len(q.Options))
	}
	return nil
}

func (s *examService) ListExams(teacherID uint) ([]dto.ExamResponse, error) {
	exams, err := s.exams.FindAllByTeacher(teacherID)
	if err != nil {
		return nil, fmt.Errorf("fetching exams: %w", err)
	}

	out := make([]dto.ExamResponse, 0, len(exams))
	for _, exam := range exams {
		var resp dto.ExamResponse
		if err := copier.Copy(&resp, &exam); err != nil {
			return nil, fmt.Errorf("preparing exam response: %w", err)
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *examService) GetExamDetails(teacherID, examID uint) (*dto.ExamDetail, error) {
	exam, err := s.exams.FindByIDForTeacher(examID, teacherID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: exam not found or unauthorized", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching exam %d: %w", examID, err)
	}

	var detail dto.ExamDetail
	if err := copier.Copy(&detail.ExamResponse, exam); err != nil {
		return nil, fmt.Errorf("preparing exam detail: %w", err)
	}
	detail.Questions = make([]dto.QuestionResponse, 0, len(exam.Questions))
	for _, q := range exam.Questions {
		detail.Questions = append(detail.Questions, dto.QuestionResponse{
			ID:            q.ID,
			ExamID:        q.ExamID,
			Question:      q.Question,
			Options:       []string(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			Marks:         q.Marks,
		})
	}
	return &detail, nil
}

func (s *examService) DeleteExam(teacherID, examID uint) error {
	affected, err := s.exams.DeleteForTeacher(examID, teacherID)
	if err != nil {
		return fmt.Errorf("deleting exam %d: %w", examID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: exam not found or unauthorized", ErrNotFound)
	}
	log.Info().Uint("examID", examID).Uint("teacherID", teacherID).Msg("Exam deleted")
	return nil
}

func (s *examService) ListResults(teacherID uint) ([]dto.ResultResponse, error) {
	rows, err := s.exams.ResultsForTeacher(teacherID)
	if err != nil {
		return nil, fmt.Errorf("fetching results: %w", err)
	}

	out := make([]dto.ResultResponse, 0, len(rows))
	if err := copier.Copy(&out, &rows); err != nil {
		return nil, fmt.Errorf("preparing results response: %w", err)
	}
	return out, nil
}
