package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"grenzgaenger_service/internal/domain/entities"
)

var ErrNotANumber = errors.New("value is not a number")

// FlexibleFloat accepts a JSON number or a numeric string.
type FlexibleFloat float64

func (f *FlexibleFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ErrNotANumber
	}
	*f = FlexibleFloat(v)
	return nil
}

// NetCalcRequest is the body of POST /api/calc/net.
type NetCalcRequest struct {
	GrossCHF      FlexibleFloat `json:"gross_chf" swaggertype:"number"`
	WorkCH        string        `json:"work_ch"`
	ResidenceAT   string        `json:"residence_at"`
	Age           *int          `json:"age"`
	Marital       *string       `json:"marital"`
	ChildrenCount *int          `json:"children_count"`
	ExchangeRate  *float64      `json:"exchange_rate"`
}

func (r NetCalcRequest) ToInput() entities.NetCalcInput {
	return entities.NetCalcInput{
		GrossCHF:      float64(r.GrossCHF),
		WorkCH:        r.WorkCH,
		ResidenceAT:   r.ResidenceAT,
		Age:           r.Age,
		Marital:       r.Marital,
		ChildrenCount: r.ChildrenCount,
		ExchangeRate:  r.ExchangeRate,
	}
}
