package authctrl

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/exam-portal/internal/controller"
	"github.com/lshigami/exam-portal/internal/dto"
	"github.com/lshigami/exam-portal/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterStudent godoc
// @Summary Student self-registration against a pre-authorized PRN
// @Description Completes the roster row a teacher created for this PRN number.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.StudentRegisterRequest true "Registration data"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "PRN not authorized, or email/username taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RegisterStudent: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	token, err := c.authService.RegisterStudent(req)
	if err != nil {
		log.Warn().Err(err).Str("prn", req.PRNNumber).Msg("RegisterStudent: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.TokenResponse{
		Success: true,
		Message: "Registration successful",
		Token:   token,
	})
}

// LoginStudent godoc
// @Summary Student login
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	token, user, err := c.authService.LoginStudent(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    *user,
	})
}

// RegisterTeacher godoc
// @Summary Teacher self-registration
// @Description Open registration, no pre-authorization gate.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.TeacherRegisterRequest true "Registration data"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Email or username already taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/teacher/register [post]
func (c *AuthController) RegisterTeacher(ctx *gin.Context) {
	var req dto.TeacherRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RegisterTeacher: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	token, err := c.authService.RegisterTeacher(req)
	if err != nil {
		log.Warn().Err(err).Msg("RegisterTeacher: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.TokenResponse{
		Success: true,
		Message: "Teacher registration successful",
		Token:   token,
	})
}

// LoginTeacher godoc
// @Summary Teacher login
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/teacher/login [post]
func (c *AuthController) LoginTeacher(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	token, user, err := c.authService.LoginTeacher(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    *user,
	})
}
