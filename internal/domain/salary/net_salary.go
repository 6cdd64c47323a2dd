// Package salary estimates the monthly net salary of a cross-border commuter
// working in Switzerland or Liechtenstein.
//
// The rates are rough heuristics, not a tax computation:
//
//	AHV/IV/EO      5.3 % of gross
//	ALV            1.1 % of gross, capped at 148'200 CHF per year
//	NBU            1.1 % of gross
//	BVG            5 - 12 % by age band
//	Quellensteuer  1.2 - 5 % by workplace, minus family relief
//
// Health insurance premiums are not payroll deductions and only appear as a
// zero hint line.
package salary

import (
	"errors"
	"math"
	"strings"

	"grenzgaenger_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	ahvIVEORate = 0.053
	alvRate     = 0.011
	nbuRate     = 0.011

	alvAnnualCap = 148200.0

	defaultBVGRate = 0.07

	marriedRelief     = 0.004
	perChildRelief    = 0.002
	maxReliefChildren = 3

	defaultQuellensteuerRate = 0.02

	moneyPlaces = 2
	ratePlaces  = 4

	Disclaimer = "Unverbindliche Schätzung. Sozialversicherungs-, BVG- und Quellensteuersätze sind vereinfachte Durchschnittswerte; " +
		"Krankenkassenprämien werden separat bezahlt und sind nicht abgezogen."
)

// ErrInvalidGross is returned when the gross salary is not a positive number.
var ErrInvalidGross = errors.New("gross_chf must be a positive number")

type quellensteuerRule struct {
	contains []string
	equals   []string
	rate     float64
}

// First matching rule wins.
var quellensteuerRules = []quellensteuerRule{
	{contains: []string{"zh", "zürich", "zuerich"}, rate: 0.045},
	{contains: []string{"bs", "basel"}, rate: 0.043},
	{contains: []string{"ge", "genf"}, rate: 0.05},
	{contains: []string{"liechtenstein"}, equals: []string{"fl", "li"}, rate: 0.012},
}

// EstimateBVGRate returns the occupational pension rate for an age band.
func EstimateBVGRate(age *int) float64 {
	if age == nil {
		return defaultBVGRate
	}
	switch a := *age; {
	case a < 25:
		return 0.05
	case a < 35:
		return 0.07
	case a < 45:
		return 0.09
	case a < 55:
		return 0.11
	default:
		return 0.12
	}
}

// EstimateQuellensteuerRate returns the withholding tax rate after family
// relief. The result is never negative.
func EstimateQuellensteuerRate(workCH, marital string, childrenCount int) float64 {
	base := baseQuellensteuerRate(workCH)

	relief := 0.0
	if strings.EqualFold(strings.TrimSpace(marital), entities.MaritalMarried) {
		relief += marriedRelief
	}
	relief += perChildRelief * float64(min(maxReliefChildren, max(0, childrenCount)))

	return math.Max(0, base-relief)
}

func baseQuellensteuerRate(workCH string) float64 {
	w := strings.ToLower(strings.TrimSpace(workCH))
	for _, rule := range quellensteuerRules {
		for _, c := range rule.contains {
			if strings.Contains(w, c) {
				return rule.rate
			}
		}
		for _, e := range rule.equals {
			if w == e {
				return rule.rate
			}
		}
	}
	return defaultQuellensteuerRate
}

// CalcNet estimates deductions and net salary. Components are summed
// unrounded; rounding happens only when the result is assembled.
func CalcNet(req entities.NetCalcRequest) (entities.NetCalcResult, error) {
	gross := req.GrossCHF
	if math.IsNaN(gross) || math.IsInf(gross, 0) || gross <= 0 {
		return entities.NetCalcResult{}, ErrInvalidGross
	}

	bvgRate := EstimateBVGRate(req.Age)
	qstRate := EstimateQuellensteuerRate(req.WorkCH, req.Marital, req.ChildrenCount)

	ahv := gross * ahvIVEORate
	alv := math.Min(gross, alvAnnualCap/12) * alvRate
	nbu := gross * nbuRate
	bvg := gross * bvgRate
	qst := gross * qstRate
	health := 0.0

	total := ahv + alv + nbu + bvg + qst
	netCHF := math.Max(0, gross-total)
	netEUR := netCHF * req.ExchangeRate

	return entities.NetCalcResult{
		GrossCHF:        round(gross, moneyPlaces),
		NetCHF:          round(netCHF, moneyPlaces),
		NetEUR:          round(netEUR, moneyPlaces),
		TotalDeductions: round(total, moneyPlaces),
		Breakdown: entities.NetCalcBreakdown{
			AHVIVEO:             round(ahv, moneyPlaces),
			ALV:                 round(alv, moneyPlaces),
			NBU:                 round(nbu, moneyPlaces),
			BVG:                 round(bvg, moneyPlaces),
			Quellensteuer:       round(qst, moneyPlaces),
			HealthInsuranceHint: round(health, moneyPlaces),
		},
		Assumptions: entities.NetCalcAssumptions{
			ExchangeRate:      req.ExchangeRate,
			BVGRate:           bvgRate,
			QuellensteuerRate: round(qstRate, ratePlaces),
			Disclaimer:        Disclaimer,
		},
	}, nil
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
