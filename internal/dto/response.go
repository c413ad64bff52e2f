package dto

// Every response carries the {success, message, ...} envelope.

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

func OK(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
