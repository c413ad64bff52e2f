package teacher

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/exam-portal/internal/controller"
	"github.com/lshigami/exam-portal/internal/dto"
	"github.com/lshigami/exam-portal/internal/service"
)

// RosterController manages the student roster: PRN pre-authorization,
// listing and removal.
type RosterController struct {
	rosterService service.RosterService
}

func NewRosterController(rosterService service.RosterService) *RosterController {
	return &RosterController{rosterService: rosterService}
}

// AddStudentByPRN godoc
// @Summary Pre-authorize a student PRN number
// @Description Creates a roster-only row; the student later registers against it.
// @Tags Teacher - Roster
// @Accept json
// @Produce json
// @Param student body dto.AddStudentRequest true "PRN number"
// @Success 201 {object} dto.AddStudentResponse
// @Failure 400 {object} dto.ErrorResponse "PRN already exists"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /student/add-by-prn [post]
func (c *RosterController) AddStudentByPRN(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	student, err := c.rosterService.AddStudentByPRN(req.PRNNumber)
	if err != nil {
		log.Warn().Err(err).Str("prn", req.PRNNumber).Msg("AddStudentByPRN: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.AddStudentResponse{
		Success: true,
		Message: "Student PRN added successfully. Student can now register with this PRN.",
		Student: *student,
	})
}

// ListStudents godoc
// @Summary List all students, newest first
// @Tags Teacher - Roster
// @Produce json
// @Success 200 {object} dto.StudentListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /student [get]
func (c *RosterController) ListStudents(ctx *gin.Context) {
	students, err := c.rosterService.ListStudents()
	if err != nil {
		log.Error().Err(err).Msg("ListStudents: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentListResponse{Success: true, Students: students})
}

// DeleteStudent godoc
// @Summary Remove a student
// @Description Cascades to the student's exam results.
// @Tags Teacher - Roster
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /student/{id} [delete]
func (c *RosterController) DeleteStudent(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid student ID"))
		return
	}

	if err := c.rosterService.DeleteStudent(id); err != nil {
		log.Warn().Err(err).Uint("studentID", id).Msg("DeleteStudent: service error")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Student deleted successfully"))
}
