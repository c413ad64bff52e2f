package dto

import "time"

type AddStudentRequest struct {
	PRNNumber string `json:"prn_number" binding:"required"`
}

type StudentRef struct {
	ID        uint   `json:"id"`
	PRNNumber string `json:"prn_number"`
}

type AddStudentResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Student StudentRef `json:"student"`
}

type StudentResponse struct {
	ID        uint      `json:"id"`
	Username  *string   `json:"username"`
	Email     *string   `json:"email"`
	PRNNumber string    `json:"prn_number"`
	CreatedAt time.Time `json:"created_at"`
}

type StudentListResponse struct {
	Success  bool              `json:"success"`
	Students []StudentResponse `json:"students"`
}
