package response

import (
	"time"

	"grenzgaenger_service/internal/domain/entities"
	"grenzgaenger_service/internal/usecase"
)

const birthDateLayout = "2006-01-02"

// LeadCreatedResponse is returned by POST /api/lead.
type LeadCreatedResponse struct {
	ID               string `json:"id"`
	Score            int    `json:"score"`
	Category         string `json:"category"`
	RecommendedModel string `json:"recommended_model"`
}

func FromLeadCreated(c usecase.LeadCreated) LeadCreatedResponse {
	return LeadCreatedResponse{
		ID:               c.ID,
		Score:            c.Score.Score,
		Category:         string(c.Score.Category),
		RecommendedModel: string(c.Score.RecommendedModel),
	}
}

// LeadResponse is one stored lead as listed by GET /api/leads.
type LeadResponse struct {
	ID               string    `json:"_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone"`
	BirthDate        *string   `json:"birth_date"`
	ResidenceAT      string    `json:"residence_at"`
	WorkCH           string    `json:"work_ch"`
	ConsentEmail     bool      `json:"consent_email"`
	ConsentWhatsApp  bool      `json:"consent_whatsapp"`
	Status           string    `json:"status"`
	Family           string    `json:"family"`
	ChildrenCount    int       `json:"children_count"`
	Health           string    `json:"health"`
	Score            *int      `json:"score"`
	Category         *string   `json:"category"`
	RecommendedModel *string   `json:"recommended_model"`
	Source           string    `json:"source"`
	CreatedAt        time.Time `json:"created_at"`
}

type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
}

func FromLead(l entities.Lead) LeadResponse {
	r := LeadResponse{
		ID:              l.ID,
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Email:           l.Email,
		ResidenceAT:     string(l.ResidenceAT),
		WorkCH:          l.WorkCH,
		ConsentEmail:    l.ConsentEmail,
		ConsentWhatsApp: l.ConsentWhatsApp,
		Status:          string(l.Status),
		Family:          string(l.Family),
		ChildrenCount:   l.ChildrenCount,
		Health:          string(l.Health),
		Source:          l.Source,
		CreatedAt:       l.CreatedAt,
	}
	if l.Phone != "" {
		p := l.Phone
		r.Phone = &p
	}
	if l.BirthDate != nil {
		bd := l.BirthDate.Format(birthDateLayout)
		r.BirthDate = &bd
	}
	if l.Scoring != nil {
		score := l.Scoring.Score
		category := string(l.Scoring.Category)
		model := string(l.Scoring.RecommendedModel)
		r.Score = &score
		r.Category = &category
		r.RecommendedModel = &model
	}
	return r
}

func FromLeads(leads []entities.Lead) LeadListResponse {
	items := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		items = append(items, FromLead(l))
	}
	return LeadListResponse{Items: items}
}
