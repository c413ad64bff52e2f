package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OptionsInput accepts either a JSON array of option strings or a single
// comma-separated string. Input is normalized here, at the authoring
// boundary, and stored canonically as an array from then on.
type OptionsInput []string

func (o *OptionsInput) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*o = trimmed(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("options must be an array of strings or a comma-separated string")
	}
	// A string value may itself hold a serialized array; try that before
	// splitting on commas.
	if err := json.Unmarshal([]byte(joined), &list); err == nil {
		*o = trimmed(list)
		return nil
	}
	*o = trimmed(strings.Split(joined, ","))
	return nil
}

func trimmed(list []string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if opt := strings.TrimSpace(item); opt != "" {
			out = append(out, opt)
		}
	}
	return out
}

type QuestionCreateRequest struct {
	Question      string       `json:"question" binding:"required"`
	Options       OptionsInput `json:"options" binding:"required"`
	CorrectAnswer *int         `json:"correctAnswer" binding:"required"`
	Marks         int          `json:"marks" binding:"required,gt=0"`
}

type CreateExamRequest struct {
	Title        string                  `json:"title" binding:"required"`
	Subject      string                  `json:"subject" binding:"required"`
	Duration     int                     `json:"duration" binding:"required,gt=0"`
	TotalMarks   int                     `json:"totalMarks" binding:"required,gt=0"`
	PassingMarks int                     `json:"passingMarks" binding:"required,gt=0"`
	Instructions string                  `json:"instructions"`
	Questions    []QuestionCreateRequest `json:"questions" binding:"required,min=1,dive"`
}

type CreateExamResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ExamID  uint   `json:"examId"`
}

type ExamResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	Duration     int       `json:"duration"`
	TotalMarks   int       `json:"total_marks"`
	PassingMarks int       `json:"passing_marks"`
	Instructions string    `json:"instructions"`
	TeacherID    uint      `json:"teacher_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuestionResponse includes the answer key; it is only ever sent to the
// owning teacher.
type QuestionResponse struct {
	ID            uint     `json:"id"`
	ExamID        uint     `json:"exam_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Marks         int      `json:"marks"`
}

type ExamDetailResponse struct {
	Success bool       `json:"success"`
	Exam    ExamDetail `json:"exam"`
}

type ExamDetail struct {
	ExamResponse
	Questions []QuestionResponse `json:"questions"`
}

type ExamListResponse struct {
	Success bool           `json:"success"`
	Exams   []ExamResponse `json:"exams"`
}

type ResultResponse struct {
	ID             uint      `json:"id"`
	StudentName    *string   `json:"student_name"`
	PRNNumber      string    `json:"prn_number"`
	ExamTitle      string    `json:"exam_title"`
	Score          int       `json:"score"`
	TotalMarks     int       `json:"total_marks"`
	PassingMarks   int       `json:"passing_marks"`
	CompletionTime *int      `json:"completion_time"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type ResultListResponse struct {
	Success bool             `json:"success"`
	Results []ResultResponse `json:"results"`
}
