package student

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/exam-portal/internal/auth"
	"github.com/lshigami/exam-portal/internal/controller"
	"github.com/lshigami/exam-portal/internal/dto"
	"github.com/lshigami/exam-portal/internal/service"
)

// ExamController serves the student-scoped endpoints. Every handler assumes
// the student auth middleware already ran.
type ExamController struct {
	studentExamService service.StudentExamService
}

func NewExamController(studentExamService service.StudentExamService) *ExamController {
	return &ExamController{studentExamService: studentExamService}
}

// ListAvailableExams godoc
// @Summary List exams the calling student has not attempted yet
// @Tags Student - Exams
// @Produce json
// @Success 200 {object} dto.AvailableExamListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /student/exams [get]
func (c *ExamController) ListAvailableExams(ctx *gin.Context) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("Token is not valid"))
		return
	}

	exams, err := c.studentExamService.ListAvailableExams(principal.ID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", principal.ID).Msg("ListAvailableExams: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AvailableExamListResponse{Success: true, Exams: exams})
}

// GetExamForTaking godoc
// @Summary Fetch an exam for taking, without the answer key
// @Tags Student - Exams
// @Produce json
// @Param examId path int true "Exam ID"
// @Success 200 {object} dto.TakeExamResponse
// @Failure 400 {object} dto.ErrorResponse "Already taken"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /student/exams/{examId}/take [get]
func (c *ExamController) GetExamForTaking(ctx *gin.Context) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("Token is not valid"))
		return
	}

	examID, err := parseID(ctx.Param("examId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid exam ID"))
		return
	}

	exam, err := c.studentExamService.GetExamForTaking(principal.ID, examID)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Uint("studentID", principal.ID).Msg("GetExamForTaking: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TakeExamResponse{Success: true, Exam: *exam})
}

// SubmitExam godoc
// @Summary Submit answers for an exam and receive the score
// @Description Scores answers against the stored key; a second submission for the same exam fails.
// @Tags Student - Exams
// @Accept json
// @Produce json
// @Param examId path int true "Exam ID"
// @Param submission body dto.SubmitExamRequest true "Answers keyed by question id, plus completion time"
// @Success 200 {object} dto.SubmitExamResponse
// @Failure 400 {object} dto.ErrorResponse "Already taken"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /student/exams/{examId}/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("Token is not valid"))
		return
	}

	examID, err := parseID(ctx.Param("examId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid exam ID"))
		return
	}

	var req dto.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitExam: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	score, err := c.studentExamService.SubmitExam(principal.ID, examID, req)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Uint("studentID", principal.ID).Msg("SubmitExam: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SubmitExamResponse{
		Success: true,
		Message: "Exam submitted successfully",
		Score:   score,
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
