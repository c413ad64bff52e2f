package teacher

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

// ExamController serves the teacher-scoped authoring endpoints. Every
// handler assumes the teacher auth middleware already ran.
type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// CreateExam godoc
// @Summary Create an exam with its questions
// @Description Inserts the exam and all questions atomically; any failure leaves no partial exam.
// @Tags Teacher - Exams
// @Accept json
// @Produce json
// @Param exam body dto.CreateExamRequest true "Exam data including questions"
// @Success 201 {object} dto.CreateExamResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid exam or question data"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/create [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("Token is not valid"))
		return
	}

	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateExam: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	examID, err := c.examService.CreateExam(principal.ID, req)
	if err != nil {
		log.Error().Err(err).Uint("teacherID", principal.ID).Msg("CreateExam: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateExamResponse{
		Success: true,
		Message: "Exam created successfully",
		ExamID:  examID,
	})
}

// ListExams godoc
// @Summary List the calling teacher's exams, newest first
// @Tags Teacher - Exams
// @Produce json
// @Success 200 {object} dto.ExamListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/teacher [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("Token is not valid"))
		return
	}

	exams, err := c.examService.ListExams(principal.ID)
	if err != nil {
		log.Error().Err(err).Uint("teacherID", principal.ID).Msg("ListExams: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ExamListResponse{Success: true, Exams: exams})
}

// ListResults godoc
// @Summary List every result across the calling teacher's exams
// @Description Results joined with student identity and exam marks, newest submission first.
// @Tags Teacher - Exams
// @Produce json
// @Success 200 {object} dto.ResultListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/results [get]
func (c *ExamController) ListResults(ctx *gin.Context) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("Token is not valid"))
		return
	}

	results, err := c.examService.ListResults(principal.ID)
	if err != nil {
		log.Error().Err(err).Uint("teacherID", principal.ID).Msg("ListResults: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultListResponse{Success: true, Results: results})
}

// GetExamDetails godoc
// @Summary Get one owned exam with its questions and answer key
// @Tags Teacher - Exams
// @Produce json
// @Param examId path int true "Exam ID"
// @Success 200 {object} dto.ExamDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Missing or not owned"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/{examId} [get]
func (c *ExamController) GetExamDetails(ctx *gin.Context) {
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

	detail, err := c.examService.GetExamDetails(principal.ID, examID)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Uint("teacherID", principal.ID).Msg("GetExamDetails: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ExamDetailResponse{Success: true, Exam: *detail})
}

// DeleteExam godoc
// @Summary Delete one owned exam
// @Description Cascades to the exam's questions and results.
// @Tags Teacher - Exams
// @Produce json
// @Param examId path int true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Missing or not owned"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exams/{examId} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
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

	if err := c.examService.DeleteExam(principal.ID, examID); err != nil {
		log.Warn().Err(err).Uint("examID", examID).Uint("teacherID", principal.ID).Msg("DeleteExam: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Exam deleted successfully"))
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
