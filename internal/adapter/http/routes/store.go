package routes

import (
	"context"
	"errors"
	"log"

	"grenzgaenger_service/internal/adapter/persistence/repository"
	"grenzgaenger_service/internal/domain/entities"
	"grenzgaenger_service/internal/infrastructure/config"
	"grenzgaenger_service/internal/infrastructure/database"
	"grenzgaenger_service/internal/usecase/interfaces"
)

var errLeadStoreNotConnected = errors.New("lead store not connected")

// leadStore bundles the repository selected by LEAD_STORE with its status
// probe. A nil probe means no store could be reached at startup.
type leadStore struct {
	repo  interfaces.ILeadRepository
	probe interfaces.IStoreStatusProbe
	close func(ctx context.Context)
}

func newMemoryLeadStore() *leadStore {
	repo := repository.NewLeadMemoryRepository()
	return &leadStore{repo: repo, probe: repo, close: func(context.Context) {}}
}

// openLeadStore connects the configured backend. The API keeps serving when
// the store is unreachable: lead endpoints fail with 500 and /test reports it.
func openLeadStore(ctx context.Context, cfg *config.Config) *leadStore {
	switch cfg.LeadStore {
	case config.StoreMemory:
		log.Printf("[store][memory] using in-memory lead store")
		return newMemoryLeadStore()

	case config.StoreMongoDB:
		client, db, err := database.ConnectMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			log.Printf("[store][mongodb] connection failed err=%v", err)
			return disconnectedLeadStore()
		}
		repo := repository.NewLeadMongoRepository(db, cfg.LeadsCollection)
		return &leadStore{repo: repo, probe: repo, close: func(ctx context.Context) {
			if err := client.Disconnect(ctx); err != nil {
				log.Printf("[store][mongodb] disconnect failed err=%v", err)
			}
		}}

	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			log.Printf("[store][dynamodb] client setup failed err=%v", err)
			return disconnectedLeadStore()
		}
		repo := repository.NewLeadDynamoRepository(ddb, cfg.LeadsTable)
		return &leadStore{repo: repo, probe: repo, close: func(context.Context) {}}
	}
}

func disconnectedLeadStore() *leadStore {
	return &leadStore{repo: disconnectedLeadRepository{}, close: func(context.Context) {}}
}

type disconnectedLeadRepository struct{}

func (disconnectedLeadRepository) Create(context.Context, entities.Lead) (string, error) {
	return "", errLeadStoreNotConnected
}

func (disconnectedLeadRepository) List(context.Context, int) ([]entities.Lead, error) {
	return nil, errLeadStoreNotConnected
}
