package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"grenzgaenger_service/internal/domain/entities"
	mock_interfaces "grenzgaenger_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

func newTestLeadUseCase(repo *mock_interfaces.MockILeadRepository) *LeadUseCase {
	uc := NewLeadUseCase(repo)
	uc.clock = func() time.Time { return fixedNow }
	return uc
}

func validLeadInput() entities.LeadInput {
	birth := fixedNow.AddDate(0, 0, -25*365)
	return entities.LeadInput{
		FirstName:       "Anna",
		LastName:        "Muster",
		Email:           "anna@example.at",
		Phone:           "0664 1234567",
		BirthDate:       &birth,
		ResidenceAT:     "Vorarlberg",
		WorkCH:          "Zürich",
		ConsentEmail:    true,
		ConsentWhatsApp: true,
		Status:          "Neu-Grenzgänger",
		Family:          "Mit Kindern",
		ChildrenCount:   2,
		Health:          "Keine Vorerkrankungen",
	}
}

func TestLeadUseCase_CreateLead(t *testing.T) {
	t.Run("invalid lead", func(t *testing.T) {
		uc := NewLeadUseCase(nil)
		in := validLeadInput()
		in.Email = "nope"

		_, err := uc.CreateLead(context.Background(), in)
		if !errors.Is(err, ErrInvalidLead) {
			t.Fatalf("expected ErrInvalidLead, got %v", err)
		}
		var verr *entities.ValidationError
		if !errors.As(err, &verr) || verr.Fields[0].Field != "email" {
			t.Fatalf("expected email validation error, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := newTestLeadUseCase(repo)

		dbErr := errors.New("db")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", dbErr)

		_, err := uc.CreateLead(context.Background(), validLeadInput())
		if !errors.Is(err, ErrLeadStoreUnavailable) || !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := newTestLeadUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (string, error) {
				if l.Scoring == nil || l.Scoring.Score != 100 || l.Scoring.Category != entities.LeadCategoryHot || l.Scoring.RecommendedModel != entities.ModelCH {
					t.Fatalf("unexpected scoring: %+v", l.Scoring)
				}
				if l.Source != entities.LeadSourceWebForm {
					t.Fatalf("expected web-form source, got %q", l.Source)
				}
				if !l.CreatedAt.Equal(fixedNow) {
					t.Fatalf("expected created_at %v, got %v", fixedNow, l.CreatedAt)
				}
				if l.Phone != "+436641234567" {
					t.Fatalf("expected normalised phone, got %q", l.Phone)
				}
				return "lead-1", nil
			},
		)

		res, err := uc.CreateLead(context.Background(), validLeadInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "lead-1" || res.Score.Score != 100 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("neutral lead is warm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := newTestLeadUseCase(repo)

		in := validLeadInput()
		in.BirthDate = nil
		in.Status = "Bereits Grenzgänger"
		in.Family = "Allein"
		in.ConsentEmail = false
		in.ConsentWhatsApp = false
		in.WorkCH = "Liechtenstein"

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return("lead-2", nil)

		res, err := uc.CreateLead(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.LeadScore{Score: 50, Category: entities.LeadCategoryWarm, RecommendedModel: entities.ModelAT}
		if res.Score != want {
			t.Fatalf("expected %+v, got %+v", want, res.Score)
		}
	})
}

func TestLeadUseCase_ListLeads(t *testing.T) {
	for _, limit := range []int{0, -3, MaxListLimit + 1} {
		t.Run("invalid limit", func(t *testing.T) {
			uc := NewLeadUseCase(nil)
			_, err := uc.ListLeads(context.Background(), limit)
			if !errors.Is(err, ErrInvalidListLimit) {
				t.Fatalf("limit %d: expected ErrInvalidListLimit, got %v", limit, err)
			}
		})
	}

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)
		dbErr := errors.New("db")
		repo.EXPECT().List(gomock.Any(), 20).Return(nil, dbErr)

		_, err := uc.ListLeads(context.Background(), 20)
		if !errors.Is(err, ErrLeadStoreUnavailable) || !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo)
		repo.EXPECT().List(gomock.Any(), 2).Return([]entities.Lead{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)

		res, err := uc.ListLeads(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "a" || res[1].ID != "b" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
