package response

import (
	"encoding/json"
	"testing"
	"time"

	"grenzgaenger_service/internal/domain/entities"
	"grenzgaenger_service/internal/usecase"
)

func TestFromLeadCreated(t *testing.T) {
	got := FromLeadCreated(usecase.LeadCreated{
		ID:    "lead-1",
		Score: entities.LeadScore{Score: 100, Category: entities.LeadCategoryHot, RecommendedModel: entities.ModelCH},
	})
	if got.ID != "lead-1" || got.Score != 100 || got.Category != "hot" || got.RecommendedModel != "CH" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestFromLead(t *testing.T) {
	bd := time.Date(1996, time.October, 20, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)
	l := entities.Lead{
		ID:          "lead-1",
		FirstName:   "Anna",
		LastName:    "Muster",
		Email:       "anna@example.com",
		Phone:       "+436641234567",
		BirthDate:   &bd,
		ResidenceAT: entities.ResidenceVorarlberg,
		WorkCH:      "Zürich",
		Status:      entities.StatusNewCommuter,
		Family:      entities.FamilyAlone,
		Health:      entities.HealthNoConditions,
		Source:      entities.LeadSourceWebForm,
		CreatedAt:   created,
	}.WithScore(entities.LeadScore{Score: 80, Category: entities.LeadCategoryHot, RecommendedModel: entities.ModelCH})

	got := FromLead(l)
	if got.ID != "lead-1" || *got.BirthDate != "1996-10-20" || *got.Phone != "+436641234567" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if *got.Score != 80 || *got.Category != "hot" || *got.RecommendedModel != "CH" {
		t.Fatalf("unexpected derived fields: %+v", got)
	}

	body, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw["_id"] != "lead-1" || raw["source"] != "web-form" {
		t.Fatalf("unexpected json: %s", body)
	}
}

func TestFromLead_WithoutOptionalFields(t *testing.T) {
	got := FromLead(entities.Lead{ID: "x"})
	if got.Phone != nil || got.BirthDate != nil || got.Score != nil || got.Category != nil || got.RecommendedModel != nil {
		t.Fatalf("expected nil optionals, got %+v", got)
	}
}

func TestFromLeads(t *testing.T) {
	empty := FromLeads(nil)
	if empty.Items == nil || len(empty.Items) != 0 {
		t.Fatalf("expected empty non-nil list, got %+v", empty)
	}

	list := FromLeads([]entities.Lead{{ID: "a"}, {ID: "b"}})
	if len(list.Items) != 2 || list.Items[0].ID != "a" || list.Items[1].ID != "b" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
