package i18n

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LANG_QUERY_ARG selects a language explicitly, e.g. ?lang=id.
const LANG_QUERY_ARG = "lang"

// Message keys. English text doubles as the key.
const (
	KeyDayAt          = "%s at %s"
	KeyTodayAt        = "today at %s"
	KeyToBeAnnounced  = "to be announced"
	KeyAfterDate      = "after %s"
	KeyWithReason     = "%s (%s)"
	KeyDate           = "%s %s %s"
	KeyChartTitle     = "Weekly operating hours"
	KeyChartOpenHours = "Open"
	KeyChartClosed    = "Closed"
)

var Indonesian = language.MustParse("id")

var supportedTags = []language.Tag{
	language.English,
	Indonesian,
}

var tagMatcher = language.NewMatcher(supportedTags)

var dayKeys = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var monthKeys = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var catalog = map[language.Tag]map[string]string{
	language.English: {},
	Indonesian: {
		KeyDayAt:          "%s pukul %s",
		KeyTodayAt:        "hari ini pukul %s",
		KeyToBeAnnounced:  "akan diumumkan",
		KeyAfterDate:      "setelah %s",
		KeyChartTitle:     "Jam operasional mingguan",
		KeyChartOpenHours: "Buka",
		KeyChartClosed:    "Tutup",

		"Sunday":    "Minggu",
		"Monday":    "Senin",
		"Tuesday":   "Selasa",
		"Wednesday": "Rabu",
		"Thursday":  "Kamis",
		"Friday":    "Jumat",
		"Saturday":  "Sabtu",

		"January":   "Januari",
		"February":  "Februari",
		"March":     "Maret",
		"April":     "April",
		"May":       "Mei",
		"June":      "Juni",
		"July":      "Juli",
		"August":    "Agustus",
		"September": "September",
		"October":   "Oktober",
		"November":  "November",
		"December":  "Desember",
	},
}

func init() {
	for tag, messages := range catalog {
		for key, value := range messages {
			message.SetString(tag, key, value)
		}
	}
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag maps a language string onto one of the supported tags.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supportedTags[index], true
}

// ResolveTag picks the language for a request: the lang query argument first,
// then Accept-Language, then fallback.
func ResolveTag(r *http.Request, fallback language.Tag) language.Tag {
	if r == nil {
		return fallback
	}

	if tag, ok := ParseTag(r.URL.Query().Get(LANG_QUERY_ARG)); ok {
		return tag
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if _, index, confidence := tagMatcher.Match(tags...); confidence != language.No {
				return supportedTags[index]
			}
		}
	}

	return fallback
}

// DayName returns the localized name of a weekday.
func DayName(p *message.Printer, day time.Weekday) string {
	return p.Sprintf(dayKeys[int(day)%7])
}

// FormatDate renders a civil date as "26 December 2024" in the printer's language.
func FormatDate(p *message.Printer, t time.Time) string {
	month := p.Sprintf(monthKeys[int(t.Month())-1])
	// Numbers go in as strings; the printer would otherwise group the year's digits.
	return p.Sprintf(KeyDate, strconv.Itoa(t.Day()), month, strconv.Itoa(t.Year()))
}
