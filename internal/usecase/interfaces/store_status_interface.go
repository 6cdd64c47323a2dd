package interfaces

import (
	"context"
	"grenzgaenger_service/internal/domain/entities"
)

// IStoreStatusProbe reports connectivity of the lead store for diagnostics.
type IStoreStatusProbe interface {
	Status(ctx context.Context) (entities.StoreStatus, error)
}
