package repository

import (
	"context"
	"sort"
	"sync"

	"grenzgaenger_service/internal/domain/entities"
	"grenzgaenger_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// LeadMemoryRepository keeps leads in process memory. It is meant for local
// development; data is lost on restart.
type LeadMemoryRepository struct {
	mu    sync.RWMutex
	leads []entities.Lead
}

var (
	_ interfaces.ILeadRepository   = (*LeadMemoryRepository)(nil)
	_ interfaces.IStoreStatusProbe = (*LeadMemoryRepository)(nil)
)

func NewLeadMemoryRepository() *LeadMemoryRepository {
	return &LeadMemoryRepository{}
}

func (r *LeadMemoryRepository) Create(_ context.Context, l entities.Lead) (string, error) {
	l.ID = uuid.NewString()
	l = cloneLead(l)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, l)
	return l.ID, nil
}

// List returns the newest leads first.
func (r *LeadMemoryRepository) List(_ context.Context, limit int) ([]entities.Lead, error) {
	r.mu.RLock()
	out := make([]entities.Lead, 0, len(r.leads))
	for _, l := range r.leads {
		out = append(out, cloneLead(l))
	}
	r.mu.RUnlock()

	// Insertion order breaks ties between equal timestamps.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *LeadMemoryRepository) Status(_ context.Context) (entities.StoreStatus, error) {
	return entities.StoreStatus{
		Kind:        "memory",
		Name:        "memory",
		Connected:   true,
		Collections: []string{DefaultLeadsCollection},
	}, nil
}

func cloneLead(l entities.Lead) entities.Lead {
	if l.Scoring != nil {
		s := *l.Scoring
		l.Scoring = &s
	}
	if l.BirthDate != nil {
		b := *l.BirthDate
		l.BirthDate = &b
	}
	return l
}
