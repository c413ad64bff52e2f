package dto

// AvailableExamResponse lists an exam a student has not attempted yet.
type AvailableExamResponse struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	Duration   int    `json:"duration"`
	TotalMarks int    `json:"totalMarks"`
}

type AvailableExamListResponse struct {
	Success bool                    `json:"success"`
	Exams   []AvailableExamResponse `json:"exams"`
}

// TakeQuestionResponse deliberately omits the correct-answer index.
type TakeQuestionResponse struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Marks    int      `json:"marks"`
}

type TakeExam struct {
	ID           uint                   `json:"id"`
	Title        string                 `json:"title"`
	Subject      string                 `json:"subject"`
	Duration     int                    `json:"duration"`
	TotalMarks   int                    `json:"total_marks"`
	PassingMarks int                    `json:"passing_marks"`
	Instructions string                 `json:"instructions"`
	Questions    []TakeQuestionResponse `json:"questions"`
}

type TakeExamResponse struct {
	Success bool     `json:"success"`
	Exam    TakeExam `json:"exam"`
}

type SubmitExamRequest struct {
	// Answers maps question id to the chosen zero-based option index.
	// An absent entry means the question was left unanswered.
	Answers        map[uint]int `json:"answers"`
	CompletionTime *int         `json:"completionTime"`
}

type SubmitExamResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Score   int    `json:"score"`
}
