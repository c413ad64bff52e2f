package model

import (
	"time"
)

// Exam belongs to exactly one teacher; only that teacher may read, modify or
// delete it. Deleting an exam cascades to its questions and results.
type Exam struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `json:"title" gorm:"not null"`
	Subject      string         `json:"subject" gorm:"not null"`
	Duration     int            `json:"duration" gorm:"not null"` // minutes
	TotalMarks   int            `json:"total_marks" gorm:"not null"`
	PassingMarks int            `json:"passing_marks" gorm:"not null"`
	Instructions string         `json:"instructions" gorm:"type:text"`
	TeacherID    uint           `json:"teacher_id" gorm:"not null;index"`
	Questions    []ExamQuestion `json:"questions,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Results      []ExamResult   `json:"results,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
}
