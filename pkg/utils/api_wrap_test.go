package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "test-trace")

	HandleServiceError(c, err)

	var envelope APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return w, envelope
}

func TestHandleServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, CodeUnauthenticated},
		{"self verification", ErrSelfVerification, http.StatusForbidden, CodeForbidden},
		{"item not found", ErrItemNotFound, http.StatusNotFound, CodeNotFound},
		{"report not found", ErrReportNotFound, http.StatusNotFound, CodeNotFound},
		{"already resolved", ErrReportAlreadyResolved, http.StatusConflict, CodeConflict},
		{"duplicate report", ErrDuplicateReport, http.StatusConflict, CodeConflict},
		{"email exists", ErrEmailAlreadyExists, http.StatusConflict, CodeConflict},
		{"invalid page", ErrInvalidPage, http.StatusBadRequest, CodeBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, envelope := handle(t, tc.err)

			if w.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, w.Code)
			}
			if envelope.Error == nil {
				t.Fatal("expected error in envelope")
			}
			if envelope.Error.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, envelope.Error.Code)
			}
			if envelope.TraceID != "test-trace" {
				t.Errorf("expected trace id to propagate, got %q", envelope.TraceID)
			}
		})
	}
}

func TestUnknownErrorIsOpaque(t *testing.T) {
	_, envelope := handle(t, errors.New("pq: connection refused"))

	if envelope.Error.Message != "Internal server error" {
		t.Errorf("internal details must not leak, got %q", envelope.Error.Message)
	}
}
