package bakery

import (
	"context"

	"bakery-server/models"
)

// BakeryAPI defines the interface for interacting with the bakery backend
type BakeryAPI interface {
	GetStoreConfig(ctx context.Context) (*models.StoreConfigResponse, error)
	CreateOrder(ctx context.Context, payload []byte, headers map[string]string) (int, []byte, error)
}
