package bakery

import (
	"context"
	"fmt"

	"bakery-server/api"
	"bakery-server/config"
	"bakery-server/models"
)

// BakeryApiClient embeds the common HTTPClient
type BakeryApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewBakeryApiClient creates a new instance of BakeryApiClient
func NewBakeryApiClient(httpClient *api.HTTPClient) *BakeryApiClient {
	return &BakeryApiClient{
		HTTPClient: httpClient,
	}
}

// GetStoreConfig fetches the store settings, including the operating hours
func (c *BakeryApiClient) GetStoreConfig(ctx context.Context) (*models.StoreConfigResponse, error) {
	var response models.StoreConfigResponse
	if err := c.Request(ctx, "GET", config.BAKERY_CONFIG_ENDPOINT, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("get store config: %w", err)
	}
	return &response, nil
}

// CreateOrder forwards an order payload to the backend as is
func (c *BakeryApiClient) CreateOrder(ctx context.Context, payload []byte, headers map[string]string) (int, []byte, error) {
	status, body, err := c.Forward(ctx, "POST", config.BAKERY_ORDERS_ENDPOINT, headers, payload)
	if err != nil {
		return 0, nil, fmt.Errorf("create order: %w", err)
	}
	return status, body, nil
}
