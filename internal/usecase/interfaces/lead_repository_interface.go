package interfaces

import (
	"context"
	"grenzgaenger_service/internal/domain/entities"
)

// ILeadRepository abstracts the document store holding scored leads.
//
// The lead service only needs to:
//   - store a lead and get its generated identifier back
//   - fetch up to N leads

type ILeadRepository interface {
	Create(ctx context.Context, lead entities.Lead) (string, error)
	List(ctx context.Context, limit int) ([]entities.Lead, error)
}
