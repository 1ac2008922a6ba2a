package models

import (
	"encoding/json"
)

// Condition is one entry of the provider's "weather" array
type Condition struct {
	Main        *string `json:"main"`        // condition group, e.g. "Rain"
	Description *string `json:"description"` // e.g. "light rain"
	Icon        *string `json:"icon"`
}

// Measurements is the "main" block of a current weather response.
// Values are kept as the provider sent them so they can be echoed unchanged.
type Measurements struct {
	Temp      *json.Number `json:"temp"`       // in Celsius
	FeelsLike *json.Number `json:"feels_like"` // in Celsius
	TempMin   *json.Number `json:"temp_min"`
	TempMax   *json.Number `json:"temp_max"`
	Humidity  *json.Number `json:"humidity"` // percentage
	Pressure  *json.Number `json:"pressure"` // in hPa
}

// Wind is the "wind" block of a current weather response
type Wind struct {
	Speed *json.Number `json:"speed"` // in m/s
	Deg   *json.Number `json:"deg"`   // direction in degrees
}

// SysInfo is the "sys" block of a current weather response
type SysInfo struct {
	Country *string `json:"country"`
	Sunrise *int64  `json:"sunrise"` // unix seconds
	Sunset  *int64  `json:"sunset"`  // unix seconds
}

// CurrentWeather is the current weather response. Every field is optional:
// nil means the provider omitted it.
type CurrentWeather struct {
	Name    *string       `json:"name"`
	Weather []Condition   `json:"weather"`
	Main    *Measurements `json:"main"`
	Wind    *Wind         `json:"wind"`
	Sys     *SysInfo      `json:"sys"`
	Dt      *int64        `json:"dt"`
}

// PrimaryCondition returns the first condition entry, or nil if there is none
func (w *CurrentWeather) PrimaryCondition() *Condition {
	if w == nil || len(w.Weather) == 0 {
		return nil
	}
	return &w.Weather[0]
}
