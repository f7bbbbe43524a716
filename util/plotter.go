package util

import (
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/text/language"

	"bakery-server/availability"
	"bakery-server/i18n"
	"bakery-server/models"
)

// RenderWeeklyHoursChart writes an HTML page with one stacked bar per
// weekday: an invisible bar up to the opening hour, then the open span.
// Days are ordered Monday first, the way the back-office lists them.
func RenderWeeklyHoursChart(w io.Writer, hours models.WeeklyHours, tag language.Tag) error {
	printer := i18n.Printer(tag)
	effective, _ := availability.EffectiveWeeklyHours(hours)

	days := make([]string, 0, len(effective))
	offsets := make([]opts.BarData, 0, len(effective))
	spans := make([]opts.BarData, 0, len(effective))

	for i := 1; i <= len(effective); i++ {
		d := effective[i%len(effective)]
		days = append(days, i18n.DayName(printer, time.Weekday(d.DayIndex)))

		if !d.IsOpen {
			offsets = append(offsets, opts.BarData{Name: printer.Sprintf(i18n.KeyChartClosed), Value: 0})
			spans = append(spans, opts.BarData{Name: printer.Sprintf(i18n.KeyChartClosed), Value: 0})
			continue
		}

		// Effective hours are always parseable.
		open, _ := availability.ParseClock(d.OpenTime)
		closing, _ := availability.ParseClock(d.CloseTime)
		offsets = append(offsets, opts.BarData{Value: hoursOf(open)})
		spans = append(spans, opts.BarData{Name: d.OpenTime + "-" + d.CloseTime, Value: hoursOf(closing - open)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: printer.Sprintf(i18n.KeyChartTitle),
			Width:     "800px",
			Height:    "480px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: printer.Sprintf(i18n.KeyChartTitle),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "h",
			Min:  0,
			Max:  24,
		}),
	)

	bar.SetXAxis(days).
		AddSeries("offset", offsets,
			charts.WithBarChartOpts(opts.BarChart{Stack: "hours"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "transparent"}),
		).
		AddSeries(printer.Sprintf(i18n.KeyChartOpenHours), spans,
			charts.WithBarChartOpts(opts.BarChart{Stack: "hours"}),
		)

	return bar.Render(w)
}

func hoursOf(minutes int) float64 {
	return float64(minutes) / 60
}
