package models

import (
	"time"
)

// EntryMeasurements is the "main" block of a forecast entry
type EntryMeasurements struct {
	Temp     *float64 `json:"temp"`     // in Celsius
	TempMin  *float64 `json:"temp_min"` // in Celsius
	TempMax  *float64 `json:"temp_max"` // in Celsius
	Humidity *float64 `json:"humidity"` // percentage
	Pressure *float64 `json:"pressure"` // in hPa
}

// EntryWind is the "wind" block of a forecast entry
type EntryWind struct {
	Speed *float64 `json:"speed"` // in m/s
	Deg   *float64 `json:"deg"`
}

// ForecastEntry represents a single forecast point (typically a 3-hour step)
type ForecastEntry struct {
	Dt      int64              `json:"dt"` // unix seconds
	Main    *EntryMeasurements `json:"main"`
	Weather []Condition        `json:"weather"`
	Wind    *EntryWind         `json:"wind"`
}

// Time returns the entry timestamp in the given location
func (e ForecastEntry) Time(loc *time.Location) time.Time {
	return time.Unix(e.Dt, 0).In(loc)
}

// Description returns the first condition's description, if any
func (e ForecastEntry) Description() (string, bool) {
	if len(e.Weather) == 0 || e.Weather[0].Description == nil {
		return "", false
	}
	return *e.Weather[0].Description, true
}

// City is the "city" block of a forecast response
type City struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

// ForecastResponse is the 5-day / 3-hour forecast response
type ForecastResponse struct {
	City *City           `json:"city"`
	List []ForecastEntry `json:"list"`
}

// DayBucket groups the forecast entries that share a calendar date.
// Buckets are only created for dates with at least one entry.
type DayBucket struct {
	Date    string // 2006-01-02
	Entries []ForecastEntry
}

// DaySummary holds the aggregates rendered for one day.
// A nil pointer means no entry in the bucket carried that value.
type DaySummary struct {
	Date        string
	MinTemp     *float64
	MaxTemp     *float64
	Description string
	AvgHumidity *float64
	AvgWind     *float64
	Hourly      []ForecastEntry
}
