package request

import (
	"errors"
	"strings"
	"time"

	"grenzgaenger_service/internal/domain/entities"
)

const birthDateLayout = "2006-01-02"

var ErrInvalidBirthDate = errors.New("birth_date must be formatted as YYYY-MM-DD")

// LeadCreateRequest is the body of POST /api/lead.
type LeadCreateRequest struct {
	Lead *LeadRequest `json:"lead" binding:"required"`
}

// LeadRequest mirrors the web form. Field rules live in entities.NewLead so
// every violation is reported in a single response.
type LeadRequest struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	BirthDate       *string `json:"birth_date"`
	ResidenceAT     string  `json:"residence_at"`
	WorkCH          string  `json:"work_ch"`
	ConsentEmail    bool    `json:"consent_email"`
	ConsentWhatsApp bool    `json:"consent_whatsapp"`
	Status          string  `json:"status"`
	Family          string  `json:"family"`
	ChildrenCount   *int    `json:"children_count"`
	Health          string  `json:"health"`
}

func (r LeadRequest) ToInput() (entities.LeadInput, error) {
	in := entities.LeadInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		ResidenceAT:     r.ResidenceAT,
		WorkCH:          r.WorkCH,
		ConsentEmail:    r.ConsentEmail,
		ConsentWhatsApp: r.ConsentWhatsApp,
		Status:          r.Status,
		Family:          r.Family,
		Health:          r.Health,
	}
	if r.Phone != nil {
		in.Phone = *r.Phone
	}
	if r.ChildrenCount != nil {
		in.ChildrenCount = *r.ChildrenCount
	}
	if r.BirthDate != nil {
		raw := strings.TrimSpace(*r.BirthDate)
		if raw != "" {
			bd, err := time.Parse(birthDateLayout, raw)
			if err != nil {
				return entities.LeadInput{}, ErrInvalidBirthDate
			}
			in.BirthDate = &bd
		}
	}
	return in, nil
}
