package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lshigami/exam-portal/internal/model"
)

type stubTeacherRepo struct {
	teacher *model.Teacher
}

func (r *stubTeacherRepo) Create(*model.Teacher) error { return errors.New("not implemented") }
func (r *stubTeacherRepo) FindByID(id uint) (*model.Teacher, error) {
	if r.teacher != nil && r.teacher.ID == id {
		return r.teacher, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *stubTeacherRepo) FindByEmail(string) (*model.Teacher, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubTeacherRepo) FindByEmailOrUsername(string, string) (*model.Teacher, error) {
	return nil, gorm.ErrRecordNotFound
}

func teacherRouter(t *testing.T, secret string, repo *stubTeacherRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireTeacher(secret, repo), func(ctx *gin.Context) {
		principal, ok := PrincipalFrom(ctx)
		if !ok {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"id": principal.ID, "role": principal.Role})
	})
	return router
}

func TestRequireTeacherAcceptsValidToken(t *testing.T) {
	repo := &stubTeacherRepo{teacher: &model.Teacher{ID: 3, Username: "mina", Email: "mina@example.com"}}
	router := teacherRouter(t, "secret", repo)

	token, err := NewToken("secret", Claims{UserID: 3, Username: "mina", Email: "mina@example.com", Role: RoleTeacher})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestRequireTeacherRejections(t *testing.T) {
	repo := &stubTeacherRepo{teacher: &model.Teacher{ID: 3}}
	router := teacherRouter(t, "secret", repo)

	studentToken, err := NewToken("secret", Claims{UserID: 3, Role: RoleStudent})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	foreignToken, err := NewToken("other-secret", Claims{UserID: 3, Role: RoleTeacher})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	ghostToken, err := NewToken("secret", Claims{UserID: 99, Role: RoleTeacher})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"malformed token", "Bearer garbage"},
		{"wrong role", "Bearer " + studentToken},
		{"wrong secret", "Bearer " + foreignToken},
		{"principal no longer exists", "Bearer " + ghostToken},
	}
	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		router.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, recorder.Code)
		}
	}
}
