package models

import (
	"bytes"
	"encoding/json"
)

// DayHours is one weekday entry of the store's operating hours.
// DayIndex follows time.Weekday: 0 is Sunday, 6 is Saturday.
type DayHours struct {
	DayIndex  int    `json:"day_index"`
	DayName   string `json:"day_name"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// UnmarshalJSON accepts day_index and is_open as numbers, strings or booleans,
// which is how the backend's database layer tends to hand them out.
func (d *DayHours) UnmarshalJSON(data []byte) error {
	// Create an alias to avoid infinite recursion.
	type Alias DayHours
	aux := &struct {
		DayIndex interface{} `json:"day_index"`
		IsOpen   interface{} `json:"is_open"`
		*Alias
	}{
		Alias: (*Alias)(d),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.DayIndex = toInt(aux.DayIndex, -1)
	d.IsOpen = toBool(aux.IsOpen)
	return nil
}

// WeeklyHours is the recurring per-weekday schedule.
type WeeklyHours []DayHours

// UnmarshalJSON decodes operating hours given either as a JSON array or as a
// string holding the JSON-encoded array. Malformed input decodes to an empty
// list rather than an error so callers fall back to the default schedule.
func (w *WeeklyHours) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			*w = WeeklyHours{}
			return nil
		}
		raw = bytes.TrimSpace([]byte(encoded))
	}

	var days []DayHours
	if err := json.Unmarshal(raw, &days); err != nil || days == nil {
		*w = WeeklyHours{}
		return nil
	}

	*w = days
	return nil
}

// ByDayIndex returns the entry for the given weekday index, if present.
func (w WeeklyHours) ByDayIndex(index int) (DayHours, bool) {
	for _, d := range w {
		if d.DayIndex == index {
			return d, true
		}
	}
	return DayHours{}, false
}
