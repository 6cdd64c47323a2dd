package entities

import (
	"strings"
	"time"
)

// ResidenceRegion is the Austrian region a lead lives in.
type ResidenceRegion string

const (
	ResidenceVorarlberg ResidenceRegion = "Vorarlberg"
	ResidenceTirol      ResidenceRegion = "Tirol"
	ResidenceOther      ResidenceRegion = "andere"
)

// CommuterStatus describes where the lead stands as a cross-border commuter.
type CommuterStatus string

const (
	StatusNewCommuter      CommuterStatus = "Neu-Grenzgänger"
	StatusExistingCommuter CommuterStatus = "Bereits Grenzgänger"
	StatusPlanningSwitch   CommuterStatus = "Plane Wechsel"
)

type FamilySituation string

const (
	FamilyAlone        FamilySituation = "Allein"
	FamilyWithPartner  FamilySituation = "Mit Partner"
	FamilyWithChildren FamilySituation = "Mit Kindern"
)

// HealthStatus is collected on the form but never used for scoring.
type HealthStatus string

const (
	HealthNoConditions HealthStatus = "Keine Vorerkrankungen"
	HealthChronic      HealthStatus = "Chronisch krank"
	HealthInPerson     HealthStatus = "Bespreche ich persönlich"
)

type LeadCategory string

const (
	LeadCategoryHot  LeadCategory = "hot"
	LeadCategoryWarm LeadCategory = "warm"
)

// InsuranceModel is the health-insurance model recommended to the lead.
type InsuranceModel string

const (
	ModelCH     InsuranceModel = "CH"
	ModelAT     InsuranceModel = "AT"
	ModelHybrid InsuranceModel = "Hybrid"
)

// LeadSourceWebForm tags leads captured through the public form.
const LeadSourceWebForm = "web-form"

// LeadScore groups the derived fields. They are set together or not at all.
type LeadScore struct {
	Score            int            `json:"score"`
	Category         LeadCategory   `json:"category"`
	RecommendedModel InsuranceModel `json:"recommended_model"`
}

// Lead is a prospective customer submission.
//
// Storage model:
//   - DynamoDB: PK id (uuid)
//   - MongoDB: _id (ObjectID), collection "lead"
//
// A lead is scored once when it is created and never updated afterwards.
type Lead struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`

	ResidenceAT ResidenceRegion `json:"residence_at" validate:"residence_region"`
	WorkCH      string          `json:"work_ch" validate:"required"`

	ConsentEmail    bool `json:"consent_email"`
	ConsentWhatsApp bool `json:"consent_whatsapp"`

	Status        CommuterStatus  `json:"status" validate:"commuter_status"`
	Family        FamilySituation `json:"family" validate:"family_situation"`
	ChildrenCount int             `json:"children_count" validate:"min=0,max=10"`
	Health        HealthStatus    `json:"health" validate:"health_status"`

	Scoring *LeadScore `json:"-"`

	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadInput carries the raw, already-decoded form values.
type LeadInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	BirthDate       *time.Time
	ResidenceAT     string
	WorkCH          string
	ConsentEmail    bool
	ConsentWhatsApp bool
	Status          string
	Family          string
	ChildrenCount   int
	Health          string
}

// NewLead builds a validated Lead. Phone numbers are normalised to E.164
// when they can be parsed.
func NewLead(in LeadInput, normalizePhone func(string) string) (Lead, error) {
	l := Lead{
		FirstName:       strings.TrimSpace(in.FirstName),
		LastName:        strings.TrimSpace(in.LastName),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		BirthDate:       truncateDate(in.BirthDate),
		ResidenceAT:     ResidenceRegion(in.ResidenceAT),
		WorkCH:          strings.TrimSpace(in.WorkCH),
		ConsentEmail:    in.ConsentEmail,
		ConsentWhatsApp: in.ConsentWhatsApp,
		Status:          CommuterStatus(in.Status),
		Family:          FamilySituation(in.Family),
		ChildrenCount:   in.ChildrenCount,
		Health:          HealthStatus(in.Health),
	}
	if l.Phone != "" && normalizePhone != nil {
		l.Phone = normalizePhone(l.Phone)
	}

	if err := validateStruct(l); err != nil {
		return Lead{}, err
	}
	return l, nil
}

// WithScore returns a copy of the lead carrying the derived fields.
func (l Lead) WithScore(s LeadScore) Lead {
	l.Scoring = &s
	return l
}

func truncateDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
