package models

import "encoding/json"

// StoreConfigResponse is the envelope returned by GET /config on the bakery backend.
type StoreConfigResponse struct {
	Data StoreConfig `json:"data"`
}

// StoreConfig holds the store settings relevant to availability.
// IsTutup ("closed") and TglBuka ("opening date") are the backend's own
// store-wide closure flag and reopening date.
type StoreConfig struct {
	IsTutup        bool        `json:"is_tutup"`
	TglBuka        string      `json:"tgl_buka"`
	OperatingHours WeeklyHours `json:"operating_hours"`
	WhatsappNumber string      `json:"whatsapp_number"`
}

// UnmarshalJSON tolerates is_tutup as 0/1 and whatsapp_number as a number.
func (c *StoreConfig) UnmarshalJSON(data []byte) error {
	type Alias StoreConfig
	aux := &struct {
		IsTutup        interface{} `json:"is_tutup"`
		TglBuka        interface{} `json:"tgl_buka"`
		WhatsappNumber interface{} `json:"whatsapp_number"`
		*Alias
	}{
		Alias: (*Alias)(c),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c.IsTutup = toBool(aux.IsTutup)
	c.TglBuka = toString(aux.TglBuka)
	c.WhatsappNumber = toString(aux.WhatsappNumber)
	return nil
}
