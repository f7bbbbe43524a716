package bakery

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery-server/config"
	"bakery-server/util"
)

func TestMockGetStoreConfig_Success(t *testing.T) {
	// Arrange
	t.Setenv("PROJECT_ROOT", filepath.Join("..", ".."))
	path := config.GetResourcePath(config.STORE_CONFIG_RESPONSE_RESOURCE)
	client := NewBakeryApiClientMock(path)

	expected, err := util.ReadStoreConfigResponseFromJSON(path)
	require.NoError(t, err)

	// Act
	response, err := client.GetStoreConfig(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, response, "Responses dont match")
	assert.Len(t, response.Data.OperatingHours, 7)
}

func TestMockGetStoreConfig_MissingFixture(t *testing.T) {
	client := NewBakeryApiClientMock(filepath.Join(t.TempDir(), "missing.json"))

	response, err := client.GetStoreConfig(context.Background())
	assert.Error(t, err)
	assert.Nil(t, response)
}

func TestMockCreateOrder_RecordsPayloads(t *testing.T) {
	client := NewBakeryApiClientMock("")

	status, body, err := client.CreateOrder(context.Background(), []byte(`{"a":1}`), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"data":{"id":1}}`, string(body))

	_, body, _ = client.CreateOrder(context.Background(), []byte(`{"b":2}`), nil)
	assert.JSONEq(t, `{"data":{"id":2}}`, string(body))

	orders := client.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, `{"a":1}`, string(orders[0]))
}
