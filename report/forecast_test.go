package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-mcp/models"
)

// 2024-01-01 00:00:00 UTC
const day0 = int64(1704067200)

const hour = int64(3600)

type entryOpt func(*models.ForecastEntry)

func newEntry(dt int64, opts ...entryOpt) models.ForecastEntry {
	e := models.ForecastEntry{
		Dt: dt,
		Main: &models.EntryMeasurements{
			Temp:     ptr(10),
			TempMin:  ptr(8),
			TempMax:  ptr(12),
			Humidity: ptr(50),
		},
		Weather: []models.Condition{{Description: str("clear sky")}},
		Wind:    &models.EntryWind{Speed: ptr(1)},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func withTemps(temp, min, max float64) entryOpt {
	return func(e *models.ForecastEntry) {
		e.Main.Temp, e.Main.TempMin, e.Main.TempMax = ptr(temp), ptr(min), ptr(max)
	}
}

func withHumidity(h float64) entryOpt {
	return func(e *models.ForecastEntry) { e.Main.Humidity = ptr(h) }
}

func withWind(s float64) entryOpt {
	return func(e *models.ForecastEntry) { e.Wind.Speed = ptr(s) }
}

func withDescription(d string) entryOpt {
	return func(e *models.ForecastEntry) { e.Weather = []models.Condition{{Description: str(d)}} }
}

func withoutWeather() entryOpt {
	return func(e *models.ForecastEntry) { e.Weather = nil }
}

func str(s string) *string { return &s }

func TestGroupByDay(t *testing.T) {
	entries := []models.ForecastEntry{
		newEntry(day0 + 3*hour),
		newEntry(day0 + 6*hour),
		newEntry(day0 + 24*hour),
		newEntry(day0 + 27*hour),
		newEntry(day0 + 30*hour),
		newEntry(day0 + 48*hour),
		newEntry(day0 + 51*hour),
	}

	buckets := GroupByDay(entries, time.UTC)

	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-01-01", buckets[0].Date)
	assert.Equal(t, "2024-01-02", buckets[1].Date)
	assert.Equal(t, "2024-01-03", buckets[2].Date)
	assert.Equal(t, entries[0:2], buckets[0].Entries)
	assert.Equal(t, entries[2:5], buckets[1].Entries)
	assert.Equal(t, entries[5:7], buckets[2].Entries)
}

func TestGroupByDayKeepsInsertionOrder(t *testing.T) {
	entries := []models.ForecastEntry{
		newEntry(day0 + 48*hour),
		newEntry(day0),
		newEntry(day0 + 50*hour),
		newEntry(day0 + 1*hour),
	}

	buckets := GroupByDay(entries, time.UTC)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-01-03", buckets[0].Date)
	assert.Equal(t, []models.ForecastEntry{entries[0], entries[2]}, buckets[0].Entries)
	assert.Equal(t, "2024-01-01", buckets[1].Date)
	assert.Equal(t, []models.ForecastEntry{entries[1], entries[3]}, buckets[1].Entries)
}

func TestGroupByDayUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2024-01-01 20:00 UTC is 2024-01-02 05:00 in Tokyo
	entries := []models.ForecastEntry{newEntry(day0 + 20*hour)}

	assert.Equal(t, "2024-01-01", GroupByDay(entries, time.UTC)[0].Date)
	assert.Equal(t, "2024-01-02", GroupByDay(entries, tokyo)[0].Date)
}

func TestGroupByDayEmpty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil, time.UTC))
}

func TestSummarizeAggregates(t *testing.T) {
	bucket := models.DayBucket{
		Date: "2024-01-01",
		Entries: []models.ForecastEntry{
			newEntry(day0, withTemps(15, 10, 20), withHumidity(50), withWind(1.0)),
			newEntry(day0+3*hour, withTemps(16, 12, 22), withHumidity(60), withWind(2.0)),
			newEntry(day0+6*hour, withTemps(14, 9, 21), withHumidity(70), withWind(3.0)),
		},
	}

	s := Summarize(bucket)

	assert.Equal(t, 9.0, *s.MinTemp)
	assert.Equal(t, 22.0, *s.MaxTemp)
	assert.Equal(t, 60.0, *s.AvgHumidity)
	assert.Equal(t, 2.0, *s.AvgWind)

	out := renderDay(s, time.UTC)
	assert.Contains(t, out, "Temperature: Min: 9.0°C, Max: 22.0°C\n")
	assert.Contains(t, out, "Avg. Humidity: 60%\n")
	assert.Contains(t, out, "Avg. Wind Speed: 2.0 m/s\n")
}

func TestSummarizeRepresentativeDescription(t *testing.T) {
	descriptions := []string{"d0", "d1", "d2", "d3"}

	tests := []struct {
		size     int
		expected string
	}{
		{1, "d0"},
		{2, "d1"},
		{3, "d1"},
		{4, "d2"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d entries", tt.size), func(t *testing.T) {
			var bucket models.DayBucket
			for i := 0; i < tt.size; i++ {
				bucket.Entries = append(bucket.Entries, newEntry(day0+int64(i)*hour, withDescription(descriptions[i])))
			}
			assert.Equal(t, tt.expected, Summarize(bucket).Description)
		})
	}
}

func TestSummarizeRepresentativeWithoutCondition(t *testing.T) {
	bucket := models.DayBucket{
		Date: "2024-01-01",
		Entries: []models.ForecastEntry{
			newEntry(day0, withDescription("light rain")),
			newEntry(day0+3*hour, withoutWeather()),
			newEntry(day0+6*hour, withDescription("overcast clouds")),
		},
	}

	s := Summarize(bucket)
	assert.Equal(t, Unknown, s.Description)

	out := renderDay(s, time.UTC)
	assert.Contains(t, out, "  00:00: 10.0°C, light rain\n")
	assert.Contains(t, out, "  03:00: 10.0°C, Unknown\n")
	assert.Contains(t, out, "  06:00: 10.0°C, overcast clouds\n")
}

func TestSummarizeHourlyLimit(t *testing.T) {
	var bucket models.DayBucket
	for i := 0; i < 8; i++ {
		bucket.Entries = append(bucket.Entries, newEntry(day0+int64(i)*3*hour, withTemps(float64(i), 0, 10)))
	}

	s := Summarize(bucket)
	require.Len(t, s.Hourly, MaxHourly)
	assert.Equal(t, bucket.Entries[:MaxHourly], s.Hourly)

	out := renderDay(s, time.UTC)
	hourly := out[strings.Index(out, "Hourly Details:\n")+len("Hourly Details:\n"):]
	assert.Equal(t, "  00:00: 0.0°C, clear sky\n"+
		"  03:00: 1.0°C, clear sky\n"+
		"  06:00: 2.0°C, clear sky\n"+
		"  09:00: 3.0°C, clear sky\n", hourly)
}

func TestSummarizeMissingValues(t *testing.T) {
	bucket := models.DayBucket{
		Date: "2024-01-01",
		Entries: []models.ForecastEntry{
			{Dt: day0},
			{Dt: day0 + 3*hour, Main: &models.EntryMeasurements{Humidity: ptr(81)}},
		},
	}

	s := Summarize(bucket)
	assert.Nil(t, s.MinTemp)
	assert.Nil(t, s.MaxTemp)
	assert.Nil(t, s.AvgWind)
	require.NotNil(t, s.AvgHumidity)
	assert.Equal(t, 81.0, *s.AvgHumidity)

	out := renderDay(s, time.UTC)
	assert.Contains(t, out, "Temperature: Min: N/A°C, Max: N/A°C\n")
	assert.Contains(t, out, "Weather: Unknown\n")
	assert.Contains(t, out, "Avg. Humidity: 81%\n")
	assert.Contains(t, out, "Avg. Wind Speed: N/A m/s\n")
	assert.Contains(t, out, "  00:00: N/A°C, Unknown\n")
}

func TestRenderForecastDayLimit(t *testing.T) {
	var resp models.ForecastResponse
	for d := int64(0); d < 7; d++ {
		resp.List = append(resp.List, newEntry(day0+d*24*hour), newEntry(day0+d*24*hour+12*hour))
	}

	out := RenderForecast(&resp, time.UTC)

	assert.Equal(t, MaxDays, strings.Count(out, "Date: "))
	for d := 1; d <= 5; d++ {
		assert.Contains(t, out, fmt.Sprintf("Date: 2024-01-0%d\n", d))
	}
	assert.NotContains(t, out, "Date: 2024-01-06")
	assert.NotContains(t, out, "Date: 2024-01-07")
	assert.Equal(t, MaxDays-1, strings.Count(out, "\n---\n"))
}

func TestRenderForecastDayLimitUsesFirstSeenDates(t *testing.T) {
	var resp models.ForecastResponse
	for _, d := range []int64{6, 5, 4, 3, 2, 1, 0} {
		resp.List = append(resp.List, newEntry(day0+d*24*hour))
	}

	out := RenderForecast(&resp, time.UTC)

	assert.Contains(t, out, "Date: 2024-01-07")
	assert.Contains(t, out, "Date: 2024-01-03")
	assert.NotContains(t, out, "Date: 2024-01-02")
	assert.NotContains(t, out, "Date: 2024-01-01")
	assert.Less(t, strings.Index(out, "2024-01-07"), strings.Index(out, "2024-01-06"))
}

func TestRenderForecastTwoDays(t *testing.T) {
	resp := &models.ForecastResponse{
		City: &models.City{Name: str("Springfield"), Country: str("US")},
	}
	// Day one: eight 3-hour steps. Day two: two steps.
	for i := int64(0); i < 8; i++ {
		resp.List = append(resp.List, newEntry(day0+i*3*hour,
			withTemps(float64(10+i), float64(9+i), float64(11+i)),
			withHumidity(float64(40+4*i)),
			withWind(float64(i)),
			withDescription(fmt.Sprintf("sky %d", i)),
		))
	}
	resp.List = append(resp.List,
		newEntry(day0+24*hour, withTemps(5, 4.25, 6), withHumidity(90), withWind(0.5), withDescription("snow")),
		newEntry(day0+27*hour, withTemps(3, 2.5, 4), withHumidity(92), withWind(1.5), withDescription("heavy snow")),
	)

	out := RenderForecast(resp, time.UTC)

	expected := "5-Day Weather Forecast for Springfield, US\n" +
		"\nDate: 2024-01-01\n" +
		"Temperature: Min: 9.0°C, Max: 18.0°C\n" +
		"Weather: sky 4\n" +
		"Avg. Humidity: 54%\n" +
		"Avg. Wind Speed: 3.5 m/s\n" +
		"\nHourly Details:\n" +
		"  00:00: 10.0°C, sky 0\n" +
		"  03:00: 11.0°C, sky 1\n" +
		"  06:00: 12.0°C, sky 2\n" +
		"  09:00: 13.0°C, sky 3\n" +
		"\n---\n" +
		"\nDate: 2024-01-02\n" +
		"Temperature: Min: 2.5°C, Max: 6.0°C\n" +
		"Weather: heavy snow\n" +
		"Avg. Humidity: 91%\n" +
		"Avg. Wind Speed: 1.0 m/s\n" +
		"\nHourly Details:\n" +
		"  00:00: 5.0°C, snow\n" +
		"  03:00: 3.0°C, heavy snow\n"

	assert.Equal(t, expected, out)
}

func TestRenderForecastDefaults(t *testing.T) {
	assert.Equal(t, "5-Day Weather Forecast for Unknown Location, \n", RenderForecast(&models.ForecastResponse{}, time.UTC))
	assert.Equal(t, "5-Day Weather Forecast for Unknown Location, \n", RenderForecast(nil, time.UTC))
}
