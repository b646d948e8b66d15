package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		wantStatus int
	}{
		{"passes_through_200", http.StatusOK},
		{"passes_through_400", http.StatusBadRequest},
		{"passes_through_500", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.wantStatus)
			})

			req := httptest.NewRequest(http.MethodGet, "/messages", nil)
			rec := httptest.NewRecorder()

			RequestLogger(inner).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status: want = %d, got = %d", tt.wantStatus, rec.Code)
			}
		})
	}
}
