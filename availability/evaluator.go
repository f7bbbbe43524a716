// Package availability decides whether the store accepts orders at a given
// instant and describes when it next opens.
package availability

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"bakery-server/i18n"
	"bakery-server/models"
)

// Evaluator renders labels in one language. It holds no mutable state and
// is safe for concurrent use.
type Evaluator struct {
	tag     language.Tag
	printer *message.Printer
}

func NewEvaluator(tag language.Tag) *Evaluator {
	return &Evaluator{tag: tag, printer: i18n.Printer(tag)}
}

var english = NewEvaluator(language.English)

// Evaluate is the English-labelled evaluation of now against the schedule.
func Evaluate(now time.Time, hours models.WeeklyHours, override *models.ClosureOverride) models.EvaluationResult {
	return english.Evaluate(now, hours, override)
}

// Tag returns the evaluator's language.
func (e *Evaluator) Tag() language.Tag {
	return e.tag
}

// Evaluate computes the store status at now. now is expected in the store's
// local time; all comparisons are whole minutes and the close time is
// exclusive.
func (e *Evaluator) Evaluate(now time.Time, hours models.WeeklyHours, override *models.ClosureOverride) models.EvaluationResult {
	result := models.EvaluationResult{EvaluatedAt: now}

	if OverrideCovers(override, now) {
		result.Source = models.SOURCE_OVERRIDE
		result.Reason = override.Reason
		result.NextOpenLabel = e.overrideLabel(override)
		return result
	}

	week, err := compile(hours)
	result.Source = models.SOURCE_SCHEDULE
	if err != nil {
		week = defaultWeekSchedule
		result.Source = models.SOURCE_DEFAULT_SCHEDULE
	}

	weekday := now.Weekday()
	today := week[weekday]
	if !today.isOpen {
		result.NextOpenLabel = e.nextOpenAfter(week, weekday)
		return result
	}

	current := now.Hour()*60 + now.Minute()
	switch {
	case current < today.openMinutes:
		result.NextOpenLabel = e.printer.Sprintf(i18n.KeyTodayAt, FormatClock(today.openMinutes))
	case current < today.closeMinutes:
		result.IsOpen = true
		result.ClosesAt = FormatClock(today.closeMinutes)
	default:
		result.NextOpenLabel = e.nextOpenAfter(week, weekday)
	}
	return result
}

// nextOpenAfter scans the seven days following from, wrapping around the week.
func (e *Evaluator) nextOpenAfter(week weekSchedule, from time.Weekday) string {
	for i := 1; i <= DAYS_PER_WEEK; i++ {
		day := time.Weekday((int(from) + i) % DAYS_PER_WEEK)
		if week[day].isOpen {
			return e.printer.Sprintf(i18n.KeyDayAt, i18n.DayName(e.printer, day), FormatClock(week[day].openMinutes))
		}
	}
	return e.printer.Sprintf(i18n.KeyToBeAnnounced)
}

func (e *Evaluator) overrideLabel(override *models.ClosureOverride) string {
	end, err := time.Parse(models.DATE_LAYOUT, override.EndDate)
	if override.EndDate == "" || err != nil {
		return e.printer.Sprintf(i18n.KeyToBeAnnounced)
	}
	label := e.printer.Sprintf(i18n.KeyAfterDate, i18n.FormatDate(e.printer, end))
	if override.Reason != "" {
		label = e.printer.Sprintf(i18n.KeyWithReason, label, override.Reason)
	}
	return label
}
