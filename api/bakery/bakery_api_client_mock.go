package bakery

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"bakery-server/models"
	"bakery-server/util"
)

// BakeryApiClientMock serves the store config from a JSON fixture and
// accepts every order.
type BakeryApiClientMock struct {
	configPath string

	mu     sync.Mutex
	orders [][]byte
}

// NewBakeryApiClientMock creates a new instance of BakeryApiClientMock
func NewBakeryApiClientMock(configPath string) *BakeryApiClientMock {
	return &BakeryApiClientMock{configPath: configPath}
}

// GetStoreConfig reads the store config fixture from disk
func (c *BakeryApiClientMock) GetStoreConfig(ctx context.Context) (*models.StoreConfigResponse, error) {
	response, err := util.ReadStoreConfigResponseFromJSON(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("mock store config: %w", err)
	}
	return response, nil
}

// CreateOrder records the payload and answers 201 with a sequential id
func (c *BakeryApiClientMock) CreateOrder(ctx context.Context, payload []byte, headers map[string]string) (int, []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.orders = append(c.orders, append([]byte(nil), payload...))
	return http.StatusCreated, []byte(fmt.Sprintf(`{"data":{"id":%d}}`, len(c.orders))), nil
}

// Orders returns the payloads received so far
func (c *BakeryApiClientMock) Orders() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([][]byte, len(c.orders))
	copy(out, c.orders)
	return out
}
