package models

// DATE_LAYOUT is the civil-date format used by closure overrides.
const DATE_LAYOUT = "2006-01-02"

// ClosureOverride is a manually declared closed date range. It takes
// precedence over the weekly hours while active. An empty EndDate means the
// store stays closed until further notice.
type ClosureOverride struct {
	IsActive  bool   `json:"isActive"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}
