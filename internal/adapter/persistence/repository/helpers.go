package repository

import (
	"time"

	"grenzgaenger_service/internal/domain/entities"
)

const birthDateLayout = "2006-01-02"

func formatBirthDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(birthDateLayout)
}

func parseBirthDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// scoreFields returns the derived fields, or zero values when the lead was
// never scored.
func scoreFields(l entities.Lead) (score int, category, model string, ok bool) {
	if l.Scoring == nil {
		return 0, "", "", false
	}
	return l.Scoring.Score, string(l.Scoring.Category), string(l.Scoring.RecommendedModel), true
}

func restoreScore(score *int, category, model string) *entities.LeadScore {
	if score == nil || category == "" || model == "" {
		return nil
	}
	return &entities.LeadScore{
		Score:            *score,
		Category:         entities.LeadCategory(category),
		RecommendedModel: entities.InsuranceModel(model),
	}
}
