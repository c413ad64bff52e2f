package model

import (
	"time"
)

// Student rows are created by a teacher with only a PRN number. Username,
// Email and Password stay NULL until the student completes self-registration.
type Student struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	PRNNumber string       `json:"prn_number" gorm:"column:prn_number;uniqueIndex;not null"`
	Username  *string      `json:"username" gorm:"uniqueIndex"`
	Email     *string      `json:"email" gorm:"uniqueIndex"`
	Password  *string      `json:"-"`
	Results   []ExamResult `json:"results,omitempty" gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time    `json:"created_at"`
}

// Registered reports whether self-registration has completed for this row.
func (s *Student) Registered() bool {
	return s.Password != nil
}
