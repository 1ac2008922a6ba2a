package report

import (
	"fmt"
	"time"

	"weather-mcp/models"
)

// RenderCurrent renders current conditions. requested is the location string
// used in the query and stands in for a missing response name.
func RenderCurrent(requested string, w *models.CurrentWeather, loc *time.Location) string {
	loc = locationOrLocal(loc)
	if w == nil {
		w = &models.CurrentWeather{}
	}

	var cond models.Condition
	if c := w.PrimaryCondition(); c != nil {
		cond = *c
	}
	var main models.Measurements
	if w.Main != nil {
		main = *w.Main
	}
	var wind models.Wind
	if w.Wind != nil {
		wind = *w.Wind
	}
	var sys models.SysInfo
	if w.Sys != nil {
		sys = *w.Sys
	}

	return fmt.Sprintf(`Current Weather for %s, %s:

Weather: %s - %s
Temperature: %s°C (Feels like: %s°C)
Min/Max: %s°C / %s°C
Humidity: %s%%
Pressure: %s hPa
Wind: %s m/s, Direction: %s°
Sunrise: %s
Sunset: %s
`,
		stringOr(w.Name, requested), stringOr(sys.Country, ""),
		stringOr(cond.Main, Unknown), stringOr(cond.Description, Unknown),
		numberOr(main.Temp, NotAvailable), numberOr(main.FeelsLike, NotAvailable),
		numberOr(main.TempMin, NotAvailable), numberOr(main.TempMax, NotAvailable),
		numberOr(main.Humidity, NotAvailable),
		numberOr(main.Pressure, NotAvailable),
		numberOr(wind.Speed, NotAvailable), numberOr(wind.Deg, NotAvailable),
		unixOr(sys.Sunrise, loc, NotAvailable),
		unixOr(sys.Sunset, loc, NotAvailable),
	)
}
