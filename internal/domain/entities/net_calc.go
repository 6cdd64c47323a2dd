package entities

import (
	"math"
	"strings"
)

const (
	DefaultExchangeRate = 0.95
	MaritalSingle       = "single"
	MaritalMarried      = "married"
)

// NetCalcRequest is a validated, one-shot salary estimation input.
// ResidenceAT is carried along but not used by any calculation yet.
type NetCalcRequest struct {
	GrossCHF      float64 `json:"gross_chf" validate:"gt=0"`
	WorkCH        string  `json:"work_ch" validate:"required"`
	ResidenceAT   string  `json:"residence_at" validate:"required"`
	Age           *int    `json:"age,omitempty" validate:"omitempty,min=16,max=70"`
	Marital       string  `json:"marital"`
	ChildrenCount int     `json:"children_count" validate:"min=0,max=10"`
	ExchangeRate  float64 `json:"exchange_rate" validate:"gt=0"`
}

// NetCalcInput holds the optional request values before defaults apply.
type NetCalcInput struct {
	GrossCHF      float64
	WorkCH        string
	ResidenceAT   string
	Age           *int
	Marital       *string
	ChildrenCount *int
	ExchangeRate  *float64
}

// NewNetCalcRequest applies defaults and validates ranges.
func NewNetCalcRequest(in NetCalcInput) (NetCalcRequest, error) {
	r := NetCalcRequest{
		GrossCHF:     in.GrossCHF,
		WorkCH:       strings.TrimSpace(in.WorkCH),
		ResidenceAT:  strings.TrimSpace(in.ResidenceAT),
		Age:          in.Age,
		Marital:      MaritalSingle,
		ExchangeRate: DefaultExchangeRate,
	}
	if in.Marital != nil && strings.TrimSpace(*in.Marital) != "" {
		r.Marital = strings.ToLower(strings.TrimSpace(*in.Marital))
	}
	if in.ChildrenCount != nil {
		r.ChildrenCount = *in.ChildrenCount
	}
	if in.ExchangeRate != nil {
		r.ExchangeRate = *in.ExchangeRate
	}

	if math.IsNaN(r.GrossCHF) || math.IsInf(r.GrossCHF, 0) {
		return NetCalcRequest{}, &ValidationError{Fields: []FieldError{{Field: "gross_chf", Rule: "number"}}}
	}
	if math.IsNaN(r.ExchangeRate) || math.IsInf(r.ExchangeRate, 0) {
		return NetCalcRequest{}, &ValidationError{Fields: []FieldError{{Field: "exchange_rate", Rule: "number"}}}
	}
	if err := validateStruct(r); err != nil {
		return NetCalcRequest{}, err
	}
	return r, nil
}

// NetCalcBreakdown lists every deduction line in CHF. HealthInsuranceHint is
// informational and never part of the total.
type NetCalcBreakdown struct {
	AHVIVEO             float64 `json:"ahv_iv_eo"`
	ALV                 float64 `json:"alv"`
	NBU                 float64 `json:"nbu"`
	BVG                 float64 `json:"bvg"`
	Quellensteuer       float64 `json:"quellensteuer"`
	HealthInsuranceHint float64 `json:"health_insurance_hint"`
}

type NetCalcAssumptions struct {
	ExchangeRate      float64 `json:"exchange_rate"`
	BVGRate           float64 `json:"bvg_rate"`
	QuellensteuerRate float64 `json:"quellensteuer_rate"`
	Disclaimer        string  `json:"disclaimer"`
}

type NetCalcResult struct {
	GrossCHF        float64            `json:"gross_chf"`
	NetCHF          float64            `json:"net_chf"`
	NetEUR          float64            `json:"net_eur"`
	TotalDeductions float64            `json:"total_deductions"`
	Breakdown       NetCalcBreakdown   `json:"breakdown"`
	Assumptions     NetCalcAssumptions `json:"assumptions"`
}
