package availability

import (
	"fmt"
	"strconv"
	"strings"

	"bakery-server/models"
)

const MINUTES_PER_DAY = 24 * 60
const DAYS_PER_WEEK = 7

// defaultWeeklyHours is used whenever the configured schedule is missing or
// malformed: Mon–Fri 07:00–21:00, Sat–Sun 08:00–22:00.
var defaultWeeklyHours = models.WeeklyHours{
	{DayIndex: 0, DayName: "Sunday", IsOpen: true, OpenTime: "08:00", CloseTime: "22:00"},
	{DayIndex: 1, DayName: "Monday", IsOpen: true, OpenTime: "07:00", CloseTime: "21:00"},
	{DayIndex: 2, DayName: "Tuesday", IsOpen: true, OpenTime: "07:00", CloseTime: "21:00"},
	{DayIndex: 3, DayName: "Wednesday", IsOpen: true, OpenTime: "07:00", CloseTime: "21:00"},
	{DayIndex: 4, DayName: "Thursday", IsOpen: true, OpenTime: "07:00", CloseTime: "21:00"},
	{DayIndex: 5, DayName: "Friday", IsOpen: true, OpenTime: "07:00", CloseTime: "21:00"},
	{DayIndex: 6, DayName: "Saturday", IsOpen: true, OpenTime: "08:00", CloseTime: "22:00"},
}

// DefaultWeeklyHours returns a copy of the fallback schedule.
func DefaultWeeklyHours() models.WeeklyHours {
	hours := make(models.WeeklyHours, len(defaultWeeklyHours))
	copy(hours, defaultWeeklyHours)
	return hours
}

type daySchedule struct {
	isOpen       bool
	openMinutes  int
	closeMinutes int
}

// weekSchedule is indexed by time.Weekday.
type weekSchedule [DAYS_PER_WEEK]daySchedule

var defaultWeekSchedule = mustCompile(defaultWeeklyHours)

// ParseClock converts "HH:MM" (or "HH:MM:SS") into minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in clock %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid minute in clock %q", value)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidateWeeklyHours reports why a schedule cannot be used as is.
func ValidateWeeklyHours(hours models.WeeklyHours) error {
	_, err := compile(hours)
	return err
}

func compile(hours models.WeeklyHours) (weekSchedule, error) {
	var week weekSchedule
	if len(hours) != DAYS_PER_WEEK {
		return week, fmt.Errorf("expected %d days, got %d", DAYS_PER_WEEK, len(hours))
	}

	var seen [DAYS_PER_WEEK]bool
	for _, d := range hours {
		if d.DayIndex < 0 || d.DayIndex >= DAYS_PER_WEEK {
			return week, fmt.Errorf("day index %d out of range", d.DayIndex)
		}
		if seen[d.DayIndex] {
			return week, fmt.Errorf("duplicate entry for day index %d", d.DayIndex)
		}
		seen[d.DayIndex] = true

		if !d.IsOpen {
			continue
		}
		open, err := ParseClock(d.OpenTime)
		if err != nil {
			return week, fmt.Errorf("day %d: %w", d.DayIndex, err)
		}
		closing, err := ParseClock(d.CloseTime)
		if err != nil {
			return week, fmt.Errorf("day %d: %w", d.DayIndex, err)
		}
		if open >= closing {
			return week, fmt.Errorf("day %d: open time %s is not before close time %s", d.DayIndex, d.OpenTime, d.CloseTime)
		}
		week[d.DayIndex] = daySchedule{isOpen: true, openMinutes: open, closeMinutes: closing}
	}
	return week, nil
}

func mustCompile(hours models.WeeklyHours) weekSchedule {
	week, err := compile(hours)
	if err != nil {
		panic(err)
	}
	return week
}

// EffectiveWeeklyHours returns the schedule the evaluator actually uses,
// normalized to "HH:MM" and ordered by weekday, and whether the default
// schedule replaced the given one.
func EffectiveWeeklyHours(hours models.WeeklyHours) (models.WeeklyHours, bool) {
	week, err := compile(hours)
	usedDefault := err != nil
	if usedDefault {
		week = defaultWeekSchedule
	}

	out := make(models.WeeklyHours, 0, DAYS_PER_WEEK)
	for i, d := range week {
		entry := models.DayHours{DayIndex: i, DayName: defaultWeeklyHours[i].DayName, IsOpen: d.isOpen}
		if d.isOpen {
			entry.OpenTime = FormatClock(d.openMinutes)
			entry.CloseTime = FormatClock(d.closeMinutes)
		}
		out = append(out, entry)
	}
	return out, usedDefault
}
