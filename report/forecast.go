package report

import (
	"strings"
	"time"

	"weather-mcp/models"
)

const (
	// MaxDays is the number of day blocks rendered, taken in first-seen order
	MaxDays = 5
	// MaxHourly is the number of entries listed under "Hourly Details" per day
	MaxHourly = 4
)

// GroupByDay partitions entries into buckets keyed by calendar date in loc.
// Buckets appear in the order their date is first seen and keep the
// relative order of their entries. The series is not sorted.
func GroupByDay(entries []models.ForecastEntry, loc *time.Location) []models.DayBucket {
	loc = locationOrLocal(loc)

	var buckets []models.DayBucket
	index := make(map[string]int)
	for _, entry := range entries {
		date := entry.Time(loc).Format(DateLayout)
		i, ok := index[date]
		if !ok {
			i = len(buckets)
			index[date] = i
			buckets = append(buckets, models.DayBucket{Date: date})
		}
		buckets[i].Entries = append(buckets[i].Entries, entry)
	}
	return buckets
}

// Summarize computes the aggregates of one bucket. Entries that lack a value
// are left out of that value's aggregate.
func Summarize(bucket models.DayBucket) models.DaySummary {
	summary := models.DaySummary{
		Date:        bucket.Date,
		Description: Unknown,
	}

	var humidity, wind mean
	for _, entry := range bucket.Entries {
		if m := entry.Main; m != nil {
			if m.TempMin != nil && (summary.MinTemp == nil || *m.TempMin < *summary.MinTemp) {
				summary.MinTemp = ptr(*m.TempMin)
			}
			if m.TempMax != nil && (summary.MaxTemp == nil || *m.TempMax > *summary.MaxTemp) {
				summary.MaxTemp = ptr(*m.TempMax)
			}
			humidity.add(m.Humidity)
		}
		if entry.Wind != nil {
			wind.add(entry.Wind.Speed)
		}
	}
	summary.AvgHumidity = humidity.value()
	summary.AvgWind = wind.value()

	// The middle entry stands in for midday conditions.
	if len(bucket.Entries) > 0 {
		if desc, ok := bucket.Entries[len(bucket.Entries)/2].Description(); ok {
			summary.Description = desc
		}
	}

	summary.Hourly = bucket.Entries
	if len(summary.Hourly) > MaxHourly {
		summary.Hourly = summary.Hourly[:MaxHourly]
	}
	return summary
}

// RenderForecast renders the multi-day report for a forecast response
func RenderForecast(resp *models.ForecastResponse, loc *time.Location) string {
	loc = locationOrLocal(loc)
	if resp == nil {
		resp = &models.ForecastResponse{}
	}

	var city models.City
	if resp.City != nil {
		city = *resp.City
	}

	buckets := GroupByDay(resp.List, loc)
	if len(buckets) > MaxDays {
		buckets = buckets[:MaxDays]
	}

	blocks := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		blocks = append(blocks, renderDay(Summarize(bucket), loc))
	}

	return "5-Day Weather Forecast for " + stringOr(city.Name, "Unknown Location") + ", " + stringOr(city.Country, "") + "\n" +
		strings.Join(blocks, "\n---\n")
}

func renderDay(s models.DaySummary, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("\nDate: " + s.Date + "\n")
	b.WriteString("Temperature: Min: " + fixed(s.MinTemp, 1) + "°C, Max: " + fixed(s.MaxTemp, 1) + "°C\n")
	b.WriteString("Weather: " + s.Description + "\n")
	b.WriteString("Avg. Humidity: " + fixed(s.AvgHumidity, 0) + "%\n")
	b.WriteString("Avg. Wind Speed: " + fixed(s.AvgWind, 1) + " m/s\n")
	b.WriteString("\nHourly Details:\n")
	for _, entry := range s.Hourly {
		var temp *float64
		if entry.Main != nil {
			temp = entry.Main.Temp
		}
		desc, ok := entry.Description()
		if !ok {
			desc = Unknown
		}
		b.WriteString("  " + entry.Time(loc).Format(ClockLayout) + ": " + fixed(temp, 1) + "°C, " + desc + "\n")
	}
	return b.String()
}

// mean accumulates an arithmetic mean over the values that are present
type mean struct {
	sum   float64
	count int
}

func (m *mean) add(v *float64) {
	if v == nil {
		return
	}
	m.sum += *v
	m.count++
}

func (m *mean) value() *float64 {
	if m.count == 0 {
		return nil
	}
	return ptr(m.sum / float64(m.count))
}

func ptr(f float64) *float64 {
	return &f
}
