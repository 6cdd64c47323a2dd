package response

import "grenzgaenger_service/internal/domain/entities"

type NetCalcBreakdownResponse struct {
	AHVIVEO             float64 `json:"ahv_iv_eo"`
	ALV                 float64 `json:"alv"`
	NBU                 float64 `json:"nbu"`
	BVG                 float64 `json:"bvg"`
	Quellensteuer       float64 `json:"quellensteuer"`
	HealthInsuranceHint float64 `json:"health_insurance_hint"`
}

type NetCalcAssumptionsResponse struct {
	ExchangeRate      float64 `json:"exchange_rate"`
	BVGRate           float64 `json:"bvg_rate"`
	QuellensteuerRate float64 `json:"quellensteuer_rate"`
	Disclaimer        string  `json:"disclaimer"`
}

// NetCalcResponse is returned by POST /api/calc/net. All amounts are CHF
// except net_eur.
type NetCalcResponse struct {
	GrossCHF        float64                    `json:"gross_chf"`
	NetCHF          float64                    `json:"net_chf"`
	NetEUR          float64                    `json:"net_eur"`
	TotalDeductions float64                    `json:"total_deductions"`
	Breakdown       NetCalcBreakdownResponse   `json:"breakdown"`
	Assumptions     NetCalcAssumptionsResponse `json:"assumptions"`
}

func FromNetCalcResult(r entities.NetCalcResult) NetCalcResponse {
	return NetCalcResponse{
		GrossCHF:        r.GrossCHF,
		NetCHF:          r.NetCHF,
		NetEUR:          r.NetEUR,
		TotalDeductions: r.TotalDeductions,
		Breakdown: NetCalcBreakdownResponse{
			AHVIVEO:             r.Breakdown.AHVIVEO,
			ALV:                 r.Breakdown.ALV,
			NBU:                 r.Breakdown.NBU,
			BVG:                 r.Breakdown.BVG,
			Quellensteuer:       r.Breakdown.Quellensteuer,
			HealthInsuranceHint: r.Breakdown.HealthInsuranceHint,
		},
		Assumptions: NetCalcAssumptionsResponse{
			ExchangeRate:      r.Assumptions.ExchangeRate,
			BVGRate:           r.Assumptions.BVGRate,
			QuellensteuerRate: r.Assumptions.QuellensteuerRate,
			Disclaimer:        r.Assumptions.Disclaimer,
		},
	}
}
