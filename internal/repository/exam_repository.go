package repository

import (
	"time"

	"github.com/lshigami/exam-portal/internal/model"
	"gorm.io/gorm"
)

// ResultWithContext is the teacher-facing results row: one submission joined
// with the student's display identity and the exam's marks.
type ResultWithContext struct {
	ID             uint      `json:"id"`
	StudentName    *string   `json:"student_name"`
	PRNNumber      string    `json:"prn_number" gorm:"column:prn_number"`
	ExamTitle      string    `json:"exam_title"`
	Score          int       `json:"score"`
	TotalMarks     int       `json:"total_marks"`
	PassingMarks   int       `json:"passing_marks"`
	CompletionTime *int      `json:"completion_time"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindAllByTeacher(teacherID uint) ([]model.Exam, error)
	FindByIDForTeacher(examID, teacherID uint) (*model.Exam, error)
	FindByIDWithQuestions(examID uint) (*model.Exam, error)
	DeleteForTeacher(examID, teacherID uint) (int64, error)
	FindAvailableForStudent(studentID uint) ([]model.Exam, error)
	ResultsForTeacher(teacherID uint) ([]ResultWithContext, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

// Create inserts the exam and all its questions in one transaction; GORM's
// association create makes the unit all-or-nothing.
func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindAllByTeacher(teacherID uint) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&exams).Error
	return exams, err
}

func (r *examRepository) FindByIDForTeacher(examID, teacherID uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.Preload("Questions").
		Where("id = ? AND teacher_id = ?", examID, teacherID).
		First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(examID uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.Preload("Questions").First(&exam, examID).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

// DeleteForTeacher removes an exam only when the caller owns it; zero rows
// affected covers both "doesn't exist" and "not yours".
func (r *examRepository) DeleteForTeacher(examID, teacherID uint) (int64, error) {
	result := r.db.Where("id = ? AND teacher_id = ?", examID, teacherID).Delete(&model.Exam{})
	return result.RowsAffected, result.Error
}

// FindAvailableForStudent lists exams with no result row for the student.
// An exam disappears from this list the instant a result exists.
func (r *examRepository) FindAvailableForStudent(studentID uint) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.
		Where("NOT EXISTS (SELECT 1 FROM exam_results er WHERE er.exam_id = exams.id AND er.student_id = ?)", studentID).
		Order("created_at DESC").
		Find(&exams).Error
	return exams, err
}

func (r *examRepository) ResultsForTeacher(teacherID uint) ([]ResultWithContext, error) {
	var rows []ResultWithContext
	err := r.db.Model(&model.ExamResult{}).
		Select(`exam_results.id,
			students.username AS student_name,
			students.prn_number,
			exams.title AS exam_title,
			exam_results.score,
			exams.total_marks,
			exams.passing_marks,
			exam_results.completion_time,
			exam_results.submitted_at`).
		Joins("JOIN exams ON exams.id = exam_results.exam_id").
		Joins("JOIN students ON students.id = exam_results.student_id").
		Where("exams.teacher_id = ?", teacherID).
		Order("exam_results.submitted_at DESC").
		Scan(&rows).Error
	return rows, err
}
