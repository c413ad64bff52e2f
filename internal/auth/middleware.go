package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/exam-portal/internal/dto"
	"github.com/lshigami/exam-portal/internal/repository"
)

const principalKey = "auth.principal"

// Principal is the minimal identity record attached to the request context
// after the bearer token is verified and the row still exists.
type Principal struct {
	ID       uint
	Username string
	Email    string
	Role     string
}

// PrincipalFrom returns the authenticated principal set by the middleware.
func PrincipalFrom(ctx *gin.Context) (Principal, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

// RequireTeacher verifies a teacher bearer token and loads the teacher row.
func RequireTeacher(secret string, teachers repository.TeacherRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := verifyBearer(ctx, secret, RoleTeacher)
		if !ok {
			return
		}
		teacher, err := teachers.FindByID(claims.UserID)
		if err != nil {
			log.Warn().Err(err).Uint("teacherID", claims.UserID).Msg("Auth: teacher from token no longer exists")
			reject(ctx, "Token is not valid")
			return
		}
		ctx.Set(principalKey, Principal{
			ID:       teacher.ID,
			Username: teacher.Username,
			Email:    teacher.Email,
			Role:     RoleTeacher,
		})
		ctx.Next()
	}
}

// RequireStudent verifies a student bearer token and loads the student row.
func RequireStudent(secret string, students repository.StudentRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := verifyBearer(ctx, secret, RoleStudent)
		if !ok {
			return
		}
		student, err := students.FindByID(claims.UserID)
		if err != nil {
			log.Warn().Err(err).Uint("studentID", claims.UserID).Msg("Auth: student from token no longer exists")
			reject(ctx, "User not found or unauthorized")
			return
		}
		principal := Principal{ID: student.ID, Role: RoleStudent}
		if student.Username != nil {
			principal.Username = *student.Username
		}
		if student.Email != nil {
			principal.Email = *student.Email
		}
		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

func verifyBearer(ctx *gin.Context, secret, role string) (*Claims, bool) {
	header := ctx.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		reject(ctx, "No token, authorization denied")
		return nil, false
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		log.Warn().Err(err).Msg("Auth: token verification failed")
		reject(ctx, "Token is invalid or expired")
		return nil, false
	}
	if claims.Role != role {
		reject(ctx, "Token is not valid")
		return nil, false
	}
	return claims, true
}

func reject(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(message))
}
