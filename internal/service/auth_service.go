package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lshigami/exam-portal/config"
	"github.com/lshigami/exam-portal/internal/auth"
	"github.com/lshigami/exam-portal/internal/dto"
	"github.com/lshigami/exam-portal/internal/model"
	"github.com/lshigami/exam-portal/internal/repository"
)

type AuthService interface {
	RegisterStudent(req dto.StudentRegisterRequest) (string, error)
	LoginStudent(req dto.LoginRequest) (string, *dto.UserResponse, error)
	RegisterTeacher(req dto.TeacherRegisterRequest) (string, error)
	LoginTeacher(req dto.LoginRequest) (string, *dto.UserResponse, error)
}

type authService struct {
	students repository.StudentRepository
	teachers repository.TeacherRepository
	secret   string
}

func NewAuthService(students repository.StudentRepository, teachers repository.TeacherRepository, cfg *config.Config) AuthService {
	return &authService{students: students, teachers: teachers, secret: cfg.JWT.Secret}
}

// RegisterStudent completes a roster row a teacher pre-authorized. The row is
// matched by PRN with a NULL password; registration fills username, email and
// password hash in place.
func (s *authService) RegisterStudent(req dto.StudentRegisterRequest) (string, error) {
	preAuthorized, err := s.students.FindPreAuthorizedByPRN(req.PRNNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: this PRN number has not been authorized by a teacher", ErrNotAuthorized)
	}
	if err != nil {
		return "", fmt.Errorf("looking up PRN %s: %w", req.PRNNumber, err)
	}

	_, err = s.students.FindRegisteredByEmailOrUsername(req.Email, req.Username)
	if err == nil {
		return "", fmt.Errorf("%w: user with this email or username already exists", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("checking email/username collision: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	if err := s.students.CompleteRegistration(req.PRNNumber, req.Username, req.Email, hash); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", fmt.Errorf("%w: user with this email or username already exists", ErrConflict)
		}
		return "", fmt.Errorf("completing registration: %w", err)
	}

	log.Info().Uint("studentID", preAuthorized.ID).Str("prn", req.PRNNumber).Msg("Student registration completed")
	return auth.NewToken(s.secret, auth.Claims{
		UserID:   preAuthorized.ID,
		Username: req.Username,
		Email:    req.Email,
		Role:     auth.RoleStudent,
	})
}

func (s *authService) LoginStudent(req dto.LoginRequest) (string, *dto.UserResponse, error) {
	student, err := s.students.FindByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("looking up student by email: %w", err)
	}
	if !student.Registered() || auth.CheckPassword(*student.Password, req.Password) != nil {
		return "", nil, ErrInvalidCredentials
	}

	user := &dto.UserResponse{ID: student.ID, Role: auth.RoleStudent}
	if student.Username != nil {
		user.Username = *student.Username
	}
	if student.Email != nil {
		user.Email = *student.Email
	}

	token, err := auth.NewToken(s.secret, auth.Claims{
		UserID:   student.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     auth.RoleStudent,
	})
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}
	return token, user, nil
}

// RegisterTeacher has no pre-authorization gate: any caller may self-register.
func (s *authService) RegisterTeacher(req dto.TeacherRegisterRequest) (string, error) {
	_, err := s.teachers.FindByEmailOrUsername(req.Email, req.Username)
	if err == nil {
		return "", fmt.Errorf("%w: teacher with this email or username already exists", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("checking teacher collision: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	teacher := model.Teacher{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.teachers.Create(&teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", fmt.Errorf("%w: teacher with this email or username already exists", ErrConflict)
		}
		return "", fmt.Errorf("creating teacher: %w", err)
	}

	log.Info().Uint("teacherID", teacher.ID).Msg("Teacher registered")
	return auth.NewToken(s.secret, auth.Claims{
		UserID:   teacher.ID,
		Username: teacher.Username,
		Email:    teacher.Email,
		Role:     auth.RoleTeacher,
	})
}

func (s *authService) LoginTeacher(req dto.LoginRequest) (string, *dto.UserResponse, error) {
	teacher, err := s.teachers.FindByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("looking up teacher by email: %w", err)
	}
	if auth.CheckPassword(teacher.Password, req.Password) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.NewToken(s.secret, auth.Claims{
		UserID:   teacher.ID,
		Username: teacher.Username,
		Email:    teacher.Email,
		Role:     auth.RoleTeacher,
	})
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}
	return token, &dto.UserResponse{
		ID:       teacher.ID,
		Username: teacher.Username,
		Email:    teacher.Email,
		Role:     auth.RoleTeacher,
	}, nil
}
