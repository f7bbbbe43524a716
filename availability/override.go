package availability

import (
	"errors"
	"fmt"
	"time"

	"bakery-server/models"
)

var ErrInvalidClosure = errors.New("invalid closure override")

// ValidateClosureOverride checks the date fields of an override. Inactive
// overrides are only checked for well-formed dates.
func ValidateClosureOverride(o models.ClosureOverride) error {
	var start, end time.Time
	var err error

	if o.StartDate != "" {
		if start, err = time.Parse(models.DATE_LAYOUT, o.StartDate); err != nil {
			return fmt.Errorf("%w: start date %q", ErrInvalidClosure, o.StartDate)
		}
	} else if o.IsActive {
		return fmt.Errorf("%w: start date is required", ErrInvalidClosure)
	}

	if o.EndDate != "" {
		if end, err = time.Parse(models.DATE_LAYOUT, o.EndDate); err != nil {
			return fmt.Errorf("%w: end date %q", ErrInvalidClosure, o.EndDate)
		}
	}

	if o.StartDate != "" && o.EndDate != "" && end.Before(start) {
		return fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidClosure, o.EndDate, o.StartDate)
	}
	return nil
}

// OverrideCovers reports whether an active, well-formed override includes the
// civil date of now. Malformed overrides never close the store.
func OverrideCovers(o *models.ClosureOverride, now time.Time) bool {
	if o == nil || !o.IsActive {
		return false
	}
	if ValidateClosureOverride(*o) != nil {
		return false
	}
	// DATE_LAYOUT strings order the same way as the dates they encode.
	today := now.Format(models.DATE_LAYOUT)
	if today < o.StartDate {
		return false
	}
	return o.EndDate == "" || today <= o.EndDate
}
