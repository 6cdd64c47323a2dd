package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"grenzgaenger_service/internal/adapter/http/handlers/mocks"
	"grenzgaenger_service/internal/domain/entities"
	"grenzgaenger_service/internal/usecase"
	"grenzgaenger_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validLeadBody = `{"lead":{"first_name":"Anna","last_name":"Muster","email":"anna@example.com","phone":"0664 1234567","birth_date":"1996-10-20","residence_at":"Vorarlberg","work_ch":"Zürich","consent_email":true,"consent_whatsapp":false,"status":"Neu-Grenzgänger","family":"Allein","children_count":0,"health":"Keine Vorerkrankungen"}}`

func newLeadRouter(uc *mocks.MockILeadUseCase) *gin.Engine {
	h := NewLeadHandler(uc)
	r := gin.New()
	r.POST("/api/lead", h.CreateLead)
	r.GET("/api/leads", h.ListLeads)
	return r
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newLeadRouter(mocks.NewMockILeadUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/api/lead", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "INVALID_LEAD_INPUT" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("missing lead object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newLeadRouter(mocks.NewMockILeadUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/api/lead", bytes.NewBufferString(`{"first_name":"Anna"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed birth date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newLeadRouter(mocks.NewMockILeadUseCase(ctrl))

		body := strings.Replace(validLeadBody, "1996-10-20", "20.10.1996", 1)
		req := httptest.NewRequest(http.MethodPost, "/api/lead", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeHTTPError(t, w); !strings.Contains(got.Details, "birth_date") {
			t.Fatalf("expected birth_date in details, got %+v", got)
		}
	})

	t.Run("validation error lists fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(uc)

		vErr := &entities.ValidationError{Fields: []entities.FieldError{{Field: "email", Rule: "email"}}}
		uc.EXPECT().CreateLead(gomock.Any(), gomock.Any()).
			Return(usecase.LeadCreated{}, fmt.Errorf("%w: %w", usecase.ErrInvalidLead, vErr))

		req := httptest.NewRequest(http.MethodPost, "/api/lead", bytes.NewBufferString(validLeadBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		got := decodeHTTPError(t, w)
		if got.Code != "INVALID_LEAD_INPUT" || got.Details != "invalid fields: email (email)" {
			t.Fatalf("unexpected error body %+v", got)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(uc)

		uc.EXPECT().CreateLead(gomock.Any(), gomock.Any()).
			Return(usecase.LeadCreated{}, fmt.Errorf("%w: %w", usecase.ErrLeadStoreUnavailable, errors.New("timeout")))

		req := httptest.NewRequest(http.MethodPost, "/api/lead", bytes.NewBufferString(validLeadBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		got := decodeHTTPError(t, w)
		if got.Code != "INTERNAL_ERROR" || got.Message != "Database error" || !strings.Contains(got.Details, "timeout") {
			t.Fatalf("unexpected error body %+v", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(uc)

		uc.EXPECT().CreateLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in entities.LeadInput) (usecase.LeadCreated, error) {
				if in.FirstName != "Anna" || in.Phone != "0664 1234567" || in.BirthDate == nil || !in.ConsentEmail {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.LeadCreated{
					ID:    "lead-1",
					Score: entities.LeadScore{Score: 75, Category: entities.LeadCategoryHot, RecommendedModel: entities.ModelCH},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/lead", bytes.NewBufferString(validLeadBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "lead-1" || body["score"] != float64(75) || body["category"] != "hot" || body["recommended_model"] != "CH" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestLeadHandler_ListLeads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(uc)

		created := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)
		uc.EXPECT().ListLeads(gomock.Any(), usecase.DefaultListLimit).Return([]entities.Lead{
			entities.Lead{ID: "lead-1", FirstName: "Anna", CreatedAt: created}.
				WithScore(entities.LeadScore{Score: 60, Category: entities.LeadCategoryWarm, RecommendedModel: entities.ModelHybrid}),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items []map[string]any `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body.Items) != 1 || body.Items[0]["_id"] != "lead-1" || body.Items[0]["category"] != "warm" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(uc)

		uc.EXPECT().ListLeads(gomock.Any(), 5).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/leads?limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"items":[]`) {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("non numeric limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newLeadRouter(mocks.NewMockILeadUseCase(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/api/leads?limit=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(uc)

		uc.EXPECT().ListLeads(gomock.Any(), 1000).Return(nil, usecase.ErrInvalidListLimit)

		req := httptest.NewRequest(http.MethodGet, "/api/leads?limit=1000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeHTTPError(t, w); got.Code != "INVALID_LIMIT" {
			t.Fatalf("unexpected code %s", got.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(uc)

		uc.EXPECT().ListLeads(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrLeadStoreUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
