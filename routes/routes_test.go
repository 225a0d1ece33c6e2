package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistRoutesRequireToken(t *testing.T) {
	a, _, _ := testApp()
	a.TokenSecret = "test-secret"
	handler := Wire(a)

	for _, tc := range []struct {
		method, path string
	}{
		{"GET", "/api/checklist/items?branch=Bahria&employee_type=Rider&gender=Male"},
		{"POST", "/api/checklist/submissions"},
		{"GET", "/api/checklist/submissions/some-id"},
	} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestLoginRequiresBasicAuth(t *testing.T) {
	a, _, _ := testApp()
	handler := Wire(a)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/api/login", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
