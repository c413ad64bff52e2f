package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lshigami/exam-portal/internal/service"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err        error
		wantStatus int
	}{
		{service.ErrValidation, http.StatusBadRequest},
		{service.ErrConflict, http.StatusBadRequest},
		{service.ErrNotAuthorized, http.StatusBadRequest},
		{service.ErrAlreadyTaken, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("database exploded"), http.StatusInternalServerError},
		{fmt.Errorf("%w: exam not found or unauthorized", service.ErrNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(recorder)
		WriteError(ctx, tc.err)
		if recorder.Code != tc.wantStatus {
			t.Fatalf("error %v: expected status %d, got %d", tc.err, tc.wantStatus, recorder.Code)
		}
		if !strings.Contains(recorder.Body.String(), `"success":false`) {
			t.Fatalf("error %v: expected failure envelope, got %s", tc.err, recorder.Body.String())
		}
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	WriteError(ctx, fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused"))
	if strings.Contains(recorder.Body.String(), "10.0.0.5") {
		t.Fatalf("internal error detail leaked: %s", recorder.Body.String())
	}
}
