package model

// ExamQuestion holds one multiple-choice question. CorrectAnswer is the
// zero-based index into Options; the authoring service validates the bound
// before the row is written.
type ExamQuestion struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	ExamID        uint       `json:"exam_id" gorm:"not null;index"`
	Question      string     `json:"question" gorm:"type:text;not null"`
	Options       OptionList `json:"options" gorm:"not null"`
	CorrectAnswer int        `json:"correct_answer" gorm:"not null"`
	Marks         int        `json:"marks" gorm:"not null"`
}
