package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"grenzgaenger_service/internal/domain/entities"
	"grenzgaenger_service/internal/domain/scoring"
	"grenzgaenger_service/internal/usecase/interfaces"
	"grenzgaenger_service/pkg/phone"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 500
)

var (
	ErrInvalidLead          = errors.New("invalid lead")
	ErrInvalidListLimit     = errors.New("invalid list limit")
	ErrLeadStoreUnavailable = errors.New("lead store unavailable")
)

// ILeadUseCase exposes lead intake operations.
//
//   - POST /api/lead  => CreateLead()
//   - GET  /api/leads => ListLeads()

type ILeadUseCase interface {
	CreateLead(ctx context.Context, in entities.LeadInput) (LeadCreated, error)
	ListLeads(ctx context.Context, limit int) ([]entities.Lead, error)
}

// LeadCreated is the outcome of a successful submission.
type LeadCreated struct {
	ID    string
	Score entities.LeadScore
}

type LeadUseCase struct {
	repo  interfaces.ILeadRepository
	clock func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo, clock: time.Now}
}

// CreateLead validates, scores and stores a form submission. The score is
// computed once here and never recomputed.
func (u *LeadUseCase) CreateLead(ctx context.Context, in entities.LeadInput) (LeadCreated, error) {
	lead, err := entities.NewLead(in, phone.NormalizeE164)
	if err != nil {
		log.Printf("[lead][usecase] validation failed err=%v", err)
		return LeadCreated{}, fmt.Errorf("%w: %w", ErrInvalidLead, err)
	}

	now := u.clock().UTC()
	score := scoring.ScoreLead(lead, now)
	lead = lead.WithScore(score)
	lead.Source = entities.LeadSourceWebForm
	lead.CreatedAt = now

	id, err := u.repo.Create(ctx, lead)
	if err != nil {
		log.Printf("[lead][usecase] repository create failed err=%v", err)
		return LeadCreated{}, fmt.Errorf("%w: %w", ErrLeadStoreUnavailable, err)
	}
	log.Printf("[lead][usecase] lead stored id=%s score=%d category=%s model=%s", id, score.Score, score.Category, score.RecommendedModel)

	return LeadCreated{ID: id, Score: score}, nil
}

func (u *LeadUseCase) ListLeads(ctx context.Context, limit int) ([]entities.Lead, error) {
	if limit < 1 || limit > MaxListLimit {
		return nil, ErrInvalidListLimit
	}

	leads, err := u.repo.List(ctx, limit)
	if err != nil {
		log.Printf("[lead][usecase] repository list failed limit=%d err=%v", limit, err)
		return nil, fmt.Errorf("%w: %w", ErrLeadStoreUnavailable, err)
	}
	if len(leads) > limit {
		leads = leads[:limit]
	}
	return leads, nil
}
