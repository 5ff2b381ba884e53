package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

func writeErrorResponse(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	WriteError(c, err)
	return rec
}

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantKey    string
		wantValue  string
	}{
		{"not found", apperr.NotFound("Board not found"), http.StatusNotFound, "error", "Board not found"},
		{"forbidden", apperr.Forbidden("no access"), http.StatusForbidden, "error", "no access"},
		{"validation", apperr.Validation("Invalid credentials"), http.StatusBadRequest, "error", "Invalid credentials"},
		{"field validation", apperr.FieldValidation("members", "Member not found"), http.StatusBadRequest, "members", "Member not found"},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "error", "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := writeErrorResponse(tc.err)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("body %q is not JSON: %v", rec.Body.String(), err)
			}
			if body[tc.wantKey] != tc.wantValue {
				t.Errorf("body[%q] = %q, want %q", tc.wantKey, body[tc.wantKey], tc.wantValue)
			}
		})
	}
}

func TestWriteErrorDoesNotLeakInternalCause(t *testing.T) {
	rec := writeErrorResponse(errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))
	if got := rec.Body.String(); got != `{"error":"internal server error"}` {
		t.Errorf("body = %s, leaked the internal cause", got)
	}
}
