package model

import (
	"time"
)

// ExamResult records one attempt. The composite unique index on
// (exam_id, student_id) is what guarantees a student takes an exam at most
// once: a concurrent duplicate submission fails on insert instead of
// slipping past an application-level pre-check.
type ExamResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	ExamID         uint      `json:"exam_id" gorm:"not null;uniqueIndex:idx_exam_student"`
	StudentID      uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_exam_student"`
	Score          int       `json:"score" gorm:"not null"`
	CompletionTime *int      `json:"completion_time,omitempty"` // seconds
	SubmittedAt    time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}
