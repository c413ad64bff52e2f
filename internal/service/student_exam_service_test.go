package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/exam-portal/internal/model"
)

func TestComputeScore(t *testing.T) {
	questions := []model.ExamQuestion{
		{ID: 1, CorrectAnswer: 1, Marks: 5},
		{ID: 2, CorrectAnswer: 0, Marks: 10},
	}

	cases := []struct {
		name    string
		answers map[uint]int
		want    int
	}{
		{"one correct one wrong", map[uint]int{1: 1, 2: 2}, 5},
		{"all correct", map[uint]int{1: 1, 2: 0}, 15},
		{"all wrong", map[uint]int{1: 0, 2: 1}, 0},
		{"unanswered contributes zero", map[uint]int{1: 1}, 5},
		{"unknown question id ignored", map[uint]int{1: 1, 99: 0}, 5},
		{"empty submission", map[uint]int{}, 0},
		{"nil submission", nil, 0},
	}

	for _, tc := range cases {
		if got := computeScore(questions, tc.answers); got != tc.want {
			t.Fatalf("%s: expected score %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestComputeScoreNoQuestions(t *testing.T) {
	if got := computeScore(nil, map[uint]int{1: 0}); got != 0 {
		t.Fatalf("expected zero score for exam without questions, got %d", got)
	}
}

func seedExamForTaking(t *testing.T) (*fakeExamRepo, *fakeResultRepo, uint) {
	t.Helper()
	exams := newFakeExamRepo()
	results := newFakeResultRepo()
	exams.results = results

	exam := model.Exam{
		Title:      "Midterm",
		Subject:    "Geography",
		Duration:   60,
		TotalMarks: 15,
		TeacherID:  1,
		Questions: []model.ExamQuestion{
			{Question: "Capital of France?", Options: model.OptionList{"Paris", "London"}, CorrectAnswer: 0, Marks: 5},
			{Question: "Capital of Japan?", Options: model.OptionList{"Osaka", "Tokyo"}, CorrectAnswer: 1, Marks: 10},
		},
	}
	if err := exams.Create(&exam); err != nil {
		t.Fatalf("seeding exam: %v", err)
	}
	return exams, results, exam.ID
}

func TestGetExamForTakingOmitsAnswerKey(t *testing.T) {
	exams, results, examID := seedExamForTaking(t)
	svc := NewStudentExamService(exams, newFakeQuestionRepo(), results)

	take, err := svc.GetExamForTaking(7, examID)
	if err != nil {
		t.Fatalf("GetExamForTaking failed: %v", err)
	}
	if take.Title != "Midterm" || len(take.Questions) != 2 {
		t.Fatalf("unexpected exam payload: %+v", take)
	}
	if got := take.Questions[0].Options; len(got) != 2 || got[0] != "Paris" {
		t.Fatalf("unexpected options: %v", got)
	}

	// The serialized payload is what reaches the student; it must not
	// carry the answer key under any field name.
	payload, err := json.Marshal(take)
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}
	if strings.Contains(strings.ToLower(string(payload)), "correct") {
		t.Fatalf("answer key leaked to student payload: %s", payload)
	}
}

func TestGetExamForTakingSecondFetchRejected(t *testing.T) {
	exams, results, examID := seedExamForTaking(t)
	svc := NewStudentExamService(exams, newFakeQuestionRepo(), results)

	if err := results.Create(&model.ExamResult{ExamID: examID, StudentID: 7, Score: 5}); err != nil {
		t.Fatalf("seeding result: %v", err)
	}
	if _, err := svc.GetExamForTaking(7, examID); !errors.Is(err, ErrAlreadyTaken) {
		t.Fatalf("expected ErrAlreadyTaken on second fetch, got %v", err)
	}

	// A different student is unaffected.
	if _, err := svc.GetExamForTaking(8, examID); err != nil {
		t.Fatalf("expected fresh student to fetch the exam, got %v", err)
	}
}

func TestGetExamForTakingUnknownExam(t *testing.T) {
	exams, results, _ := seedExamForTaking(t)
	svc := NewStudentExamService(exams, newFakeQuestionRepo(), results)

	if _, err := svc.GetExamForTaking(7, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown exam, got %v", err)
	}
}

func TestListAvailableExamsExcludesTaken(t *testing.T) {
	exams, results, firstID := seedExamForTaking(t)
	svc := NewStudentExamService(exams, newFakeQuestionRepo(), results)

	second := model.Exam{Title: "Final", Subject: "Geography", Duration: 90, TotalMarks: 20, TeacherID: 1}
	if err := exams.Create(&second); err != nil {
		t.Fatalf("seeding exam: %v", err)
	}

	available, err := svc.ListAvailableExams(7)
	if err != nil {
		t.Fatalf("ListAvailableExams failed: %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("expected 2 available exams, got %d", len(available))
	}

	if err := results.Create(&model.ExamResult{ExamID: firstID, StudentID: 7, Score: 5}); err != nil {
		t.Fatalf("seeding result: %v", err)
	}

	available, err = svc.ListAvailableExams(7)
	if err != nil {
		t.Fatalf("ListAvailableExams failed: %v", err)
	}
	if len(available) != 1 || available[0].Title != "Final" {
		t.Fatalf("expected only the untaken exam, got %+v", available)
	}
}
