package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"grenzgaenger_service/internal/domain/entities"
	"grenzgaenger_service/internal/domain/salary"
)

var ErrInvalidNetCalcInput = errors.New("invalid net calculation input")

// INetSalaryUseCase exposes the net salary estimate (POST /api/calc/net).
type INetSalaryUseCase interface {
	CalculateNet(ctx context.Context, in entities.NetCalcInput) (entities.NetCalcResult, error)
}

type NetSalaryUseCase struct{}

var _ INetSalaryUseCase = (*NetSalaryUseCase)(nil)

func NewNetSalaryUseCase() *NetSalaryUseCase {
	return &NetSalaryUseCase{}
}

func (u *NetSalaryUseCase) CalculateNet(_ context.Context, in entities.NetCalcInput) (entities.NetCalcResult, error) {
	req, err := entities.NewNetCalcRequest(in)
	if err != nil {
		log.Printf("[calc][usecase] validation failed err=%v", err)
		return entities.NetCalcResult{}, fmt.Errorf("%w: %w", ErrInvalidNetCalcInput, err)
	}

	res, err := salary.CalcNet(req)
	if err != nil {
		return entities.NetCalcResult{}, fmt.Errorf("%w: %w", ErrInvalidNetCalcInput, err)
	}
	log.Printf("[calc][usecase] estimate done work_ch=%q bvg_rate=%.2f qst_rate=%.4f", req.WorkCH, res.Assumptions.BVGRate, res.Assumptions.QuellensteuerRate)
	return res, nil
}
