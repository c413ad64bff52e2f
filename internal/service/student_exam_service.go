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

type StudentExamService interface {
	ListAvailableExams(studentID uint) ([]dto.AvailableExamResponse, error)
	GetExamForTaking(studentID, examID uint) (*dto.TakeExam, error)
	SubmitExam(studentID, examID uint, req dto.SubmitExamRequest) (int, error)
}

type studentExamService struct {
	exams     repository.ExamRepository
	questions repository.QuestionRepository
	results   repository.ResultRepository
}

func NewStudentExamService(
	exams repository.ExamRepository,
	questions repository.QuestionRepository,
	results repository.ResultRepository,
) StudentExamService {
	return &studentExamService{exams: exams, questions: questions, results: results}
}

func (s *studentExamService) ListAvailableExams(studentID uint) ([]dto.AvailableExamResponse, error) {
	exams, err := s.exams.FindAvailableForStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("fetching available exams: %w", err)
	}

	out := make([]dto.AvailableExamResponse, 0, len(exams))
	for _, exam := range exams {
		out = append(out, dto.AvailableExamResponse{
			ID:         exam.ID,
			Title:      exam.Title,
			Subject:    exam.Subject,
			Duration:   exam.Duration,
			TotalMarks: exam.TotalMarks,
		})
	}
	return out, nil
}

// GetExamForTaking returns the exam stripped of the answer key.
func (s *studentExamService) GetExamForTaking(studentID, examID uint) (*dto.TakeExam, error) {
	taken, err := s.results.ExistsForExamAndStudent(examID, studentID)
	if err != nil {
		return nil, fmt.Errorf("checking previous attempt: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: you have already taken this exam", ErrAlreadyTaken)
	}

	exam, err := s.exams.FindByIDWithQuestions(examID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: exam not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching exam %d: %w", examID, err)
	}

	take := dto.TakeExam{
		ID:           exam.ID,
		Title:        exam.Title,
		Subject:      exam.Subject,
		Duration:     exam.Duration,
		TotalMarks:   exam.TotalMarks,
		PassingMarks: exam.PassingMarks,
		Instructions: exam.Instructions,
		Questions:    make([]dto.TakeQuestionResponse, 0, len(exam.Questions)),
	}
	for _, q := range exam.Questions {
		take.Questions = append(take.Questions, dto.TakeQuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Options:  []string(q.Options),
			Marks:    q.Marks,
		})
	}
	return &take, nil
}

// SubmitExam scores the submitted answers and records the single allowed
// attempt. The pre-check catches the common case; the unique index on
// (exam_id, student_id) catches a concurrent duplicate at insert time.
func (s *studentExamService) SubmitExam(studentID, examID uint, req dto.SubmitExamRequest) (int, error) {
	taken, err := s.results.ExistsForExamAndStudent(examID, studentID)
	if err != nil {
		return 0, fmt.Errorf("checking previous attempt: %w", err)
	}
	if taken {
		return 0, fmt.Errorf("%w: you have already taken this exam", ErrAlreadyTaken)
	}

	questions, err := s.questions.FindByExamID(examID)
	if err != nil {
		return 0, fmt.Errorf("loading questions for exam %d: %w", examID, err)
	}

	score := computeScore(questions, req.Answers)

	result := model.ExamResult{
		ExamID:         examID,
		StudentID:      studentID,
		Score:          score,
		CompletionTime: req.CompletionTime,
	}
	if err := s.results.Create(&result); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: you have already taken this exam", ErrAlreadyTaken)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, fmt.Errorf("%w: exam not found", ErrNotFound)
		}
		return 0, fmt.Errorf("saving result: %w", err)
	}

	log.Info().Uint("examID", examID).Uint("studentID", studentID).Int("score", score).Msg("Exam submitted")
	return score, nil
}

// computeScore sums the marks of questions whose submitted answer index
// matches the stored correct index. Unanswered or unknown question ids
// contribute zero; there is no partial credit or negative marking.
func computeScore(questions []model.ExamQuestion, answers map[uint]int) int {
	score := 0
	for _, q := range questions {
		if answer, ok := answers[q.ID]; ok && answer == q.CorrectAnswer {
			score += q.Marks
		}
	}
	return score
}
