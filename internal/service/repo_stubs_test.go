package service

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/lshigami/exam-portal/internal/model"
	"github.com/lshigami/exam-portal/internal/repository"
)

// In-memory repository stubs backing the service tests.

type fakeStudentRepo struct {
	students map[uint]*model.Student
	nextID   uint
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[uint]*model.Student{}, nextID: 1}
}

func (r *fakeStudentRepo) Create(student *model.Student) error {
	for _, existing := range r.students {
		if existing.PRNNumber == student.PRNNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	student.ID = r.nextID
	r.nextID++
	copied := *student
	r.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) FindByID(id uint) (*model.Student, error) {
	if student, ok := r.students[id]; ok {
		return student, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) FindByPRN(prn string) (*model.Student, error) {
	for _, student := range r.students {
		if student.PRNNumber == prn {
			return student, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) FindPreAuthorizedByPRN(prn string) (*model.Student, error) {
	for _, student := range r.students {
		if student.PRNNumber == prn && student.Password == nil {
			return student, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) FindRegisteredByEmailOrUsername(email, username string) (*model.Student, error) {
	for _, student := range r.students {
		if student.Password == nil {
			continue
		}
		if (student.Email != nil && *student.Email == email) ||
			(student.Username != nil && *student.Username == username) {
			return student, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) FindByEmail(email string) (*model.Student, error) {
	for _, student := range r.students {
		if student.Email != nil && *student.Email == email {
			return student, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) CompleteRegistration(prn, username, email, passwordHash string) error {
	for _, student := range r.students {
		if student.PRNNumber == prn {
			student.Username = &username
			student.Email = &email
			student.Password = &passwordHash
			return nil
		}
	}
	return fmt.Errorf("no roster row for prn %s", prn)
}

func (r *fakeStudentRepo) FindAll() ([]model.Student, error) {
	out := make([]model.Student, 0, len(r.students))
	for _, student := range r.students {
		out = append(out, *student)
	}
	return out, nil
}

func (r *fakeStudentRepo) Delete(id uint) (int64, error) {
	if _, ok := r.students[id]; !ok {
		return 0, nil
	}
	delete(r.students, id)
	return 1, nil
}

type fakeTeacherRepo struct {
	teachers map[uint]*model.Teacher
	nextID   uint
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{teachers: map[uint]*model.Teacher{}, nextID: 1}
}

func (r *fakeTeacherRepo) Create(teacher *model.Teacher) error {
	for _, existing := range r.teachers {
		if existing.Email == teacher.Email || existing.Username == teacher.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	teacher.ID = r.nextID
	r.nextID++
	copied := *teacher
	r.teachers[teacher.ID] = &copied
	return nil
}

func (r *fakeTeacherRepo) FindByID(id uint) (*model.Teacher, error) {
	if teacher, ok := r.teachers[id]; ok {
		return teacher, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTeacherRepo) FindByEmail(email string) (*model.Teacher, error) {
	for _, teacher := range r.teachers {
		if teacher.Email == email {
			return teacher, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTeacherRepo) FindByEmailOrUsername(email, username string) (*model.Teacher, error) {
	for _, teacher := range r.teachers {
		if teacher.Email == email || teacher.Username == username {
			return teacher, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeResultRepo struct {
	results map[string]*model.ExamResult
	nextID  uint
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: map[string]*model.ExamResult{}, nextID: 1}
}

func resultKey(examID, studentID uint) string {
	return fmt.Sprintf("%d/%d", examID, studentID)
}

func (r *fakeResultRepo) Create(result *model.ExamResult) error {
	key := resultKey(result.ExamID, result.StudentID)
	if _, ok := r.results[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	result.ID = r.nextID
	r.nextID++
	copied := *result
	r.results[key] = &copied
	return nil
}

func (r *fakeResultRepo) ExistsForExamAndStudent(examID, studentID uint) (bool, error) {
	_, ok := r.results[resultKey(examID, studentID)]
	return ok, nil
}

type fakeQuestionRepo struct {
	questions map[uint][]model.ExamQuestion
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[uint][]model.ExamQuestion{}}
}

func (r *fakeQuestionRepo) FindByExamID(examID uint) ([]model.ExamQuestion, error) {
	return r.questions[examID], nil
}

// fakeExamRepo keeps exams in memory. The optional results and students
// repos back the availability subquery and the results join.
type fakeExamRepo struct {
	exams    map[uint]*model.Exam
	nextID   uint
	results  *fakeResultRepo
	students *fakeStudentRepo
}

func newFakeExamRepo() *fakeExamRepo {
	return &fakeExamRepo{exams: map[uint]*model.Exam{}, nextID: 1}
}

func (r *fakeExamRepo) Create(exam *model.Exam) error {
	exam.ID = r.nextID
	r.nextID++
	for i := range exam.Questions {
		exam.Questions[i].ID = exam.ID*100 + uint(i) + 1
		exam.Questions[i].ExamID = exam.ID
	}
	copied := *exam
	copied.Questions = append([]model.ExamQuestion(nil), exam.Questions...)
	r.exams[exam.ID] = &copied
	return nil
}

func (r *fakeExamRepo) FindAllByTeacher(teacherID uint) ([]model.Exam, error) {
	out := make([]model.Exam, 0)
	for _, exam := range r.exams {
		if exam.TeacherID == teacherID {
			out = append(out, *exam)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeExamRepo) FindByIDForTeacher(examID, teacherID uint) (*model.Exam, error) {
	exam, ok := r.exams[examID]
	if !ok || exam.TeacherID != teacherID {
		return nil, gorm.ErrRecordNotFound
	}
	return exam, nil
}

func (r *fakeExamRepo) FindByIDWithQuestions(examID uint) (*model.Exam, error) {
	if exam, ok := r.exams[examID]; ok {
		return exam, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeExamRepo) DeleteForTeacher(examID, teacherID uint) (int64, error) {
	exam, ok := r.exams[examID]
	if !ok || exam.TeacherID != teacherID {
		return 0, nil
	}
	delete(r.exams, examID)
	return 1, nil
}

func (r *fakeExamRepo) FindAvailableForStudent(studentID uint) ([]model.Exam, error) {
	out := make([]model.Exam, 0)
	for _, exam := range r.exams {
		if r.results != nil {
			if taken, _ := r.results.ExistsForExamAndStudent(exam.ID, studentID); taken {
				continue
			}
		}
		out = append(out, *exam)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeExamRepo) ResultsForTeacher(teacherID uint) ([]repository.ResultWithContext, error) {
	rows := make([]repository.ResultWithContext, 0)
	if r.results == nil {
		return rows, nil
	}
	for _, result := range r.results.results {
		exam, ok := r.exams[result.ExamID]
		if !ok || exam.TeacherID != teacherID {
			continue
		}
		row := repository.ResultWithContext{
			ID:             result.ID,
			ExamTitle:      exam.Title,
			Score:          result.Score,
			TotalMarks:     exam.TotalMarks,
			PassingMarks:   exam.PassingMarks,
			CompletionTime: result.CompletionTime,
			SubmittedAt:    result.SubmittedAt,
		}
		if r.students != nil {
			if student, err := r.students.FindByID(result.StudentID); err == nil {
				row.StudentName = student.Username
				row.PRNNumber = student.PRNNumber
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return rows, nil
}

var (
	_ repository.StudentRepository  = (*fakeStudentRepo)(nil)
	_ repository.TeacherRepository  = (*fakeTeacherRepo)(nil)
	_ repository.ResultRepository   = (*fakeResultRepo)(nil)
	_ repository.QuestionRepository = (*fakeQuestionRepo)(nil)
	_ repository.ExamRepository     = (*fakeExamRepo)(nil)
)
