package util

import (
	"encoding/json"
	"fmt"
	"os"

	"bakery-server/models"
)

// ReadStoreConfigResponseFromJSON loads a StoreConfigResponse from JSON on disk.
func ReadStoreConfigResponseFromJSON(filePath string) (*models.StoreConfigResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.StoreConfigResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal StoreConfigResponse: %w", err)
	}
	return &resp, nil
}
