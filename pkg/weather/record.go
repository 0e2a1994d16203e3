package weather

import "time"

// Source tells whether a record came from the upstream API or the demo table
type Source string

const (
	SourceLive Source = "live"
	SourceDemo Source = "demo"
)

// Unit systems understood by the upstream API
const (
	UnitsImperial = "imperial"
	UnitsMetric   = "metric"
	UnitsStandard = "standard"
)

// Record is a weather snapshot for one city. Temperatures are in the unit
// system named by Units: Fahrenheit (imperial), Celsius (metric) or Kelvin
// (standard). Wind is mph for imperial, m/s otherwise. Pressure is hPa and
// visibility is km regardless of units.
type Record struct {
	City          string                 `json:"city"`
	Country       string                 `json:"country"`
	Temperature   float64                `json:"temperature"`
	FeelsLike     float64                `json:"feels_like"`
	Humidity      int                    `json:"humidity"`
	WindSpeed     float64                `json:"wind_speed"`
	WindDirection float64                `json:"wind_direction"`
	Pressure      float64                `json:"pressure"`
	Visibility    float64                `json:"visibility"`
	Condition     string                 `json:"condition"`
	Icon          string                 `json:"icon"`
	Sunrise       time.Time              `json:"sunrise"`
	Sunset        time.Time              `json:"sunset"`
	Units         string                 `json:"units"`
	Source        Source                 `json:"source"`
	FetchedAt     time.Time              `json:"fetched_at,omitempty"`
	// FallbackReason is the error kind that forced a demo record, empty when
	// no live call was possible or it succeeded
	FallbackReason string                 `json:"fallback_reason,omitempty"`
	RawData        map[string]interface{} `json:"raw_data,omitempty"`
}

// IsDemo reports whether the record was synthesized
func (r *Record) IsDemo() bool {
	return r.Source == SourceDemo
}

// TemperatureIn returns the temperature in "F" or "C"
func (r *Record) TemperatureIn(unit string) float64 {
	return convertFromUnits(r.Temperature, r.Units, unit)
}

// FeelsLikeIn returns the apparent temperature in "F" or "C"
func (r *Record) FeelsLikeIn(unit string) float64 {
	return convertFromUnits(r.FeelsLike, r.Units, unit)
}

// WindIn returns the wind speed in "mph", "m/s" or "km/h"
func (r *Record) WindIn(unit string) float64 {
	mps := r.WindSpeed
	if r.Units == UnitsImperial {
		mps = MPHToMetersPerSecond(r.WindSpeed)
	}
	switch unit {
	case "mph":
		return MetersPerSecondToMPH(mps)
	case "km/h":
		return mps * 3.6
	default:
		return mps
	}
}

// IconURL returns the OpenWeatherMap icon image for the record
func (r *Record) IconURL() string {
	if r.Icon == "" {
		return ""
	}
	return "https://openweathermap.org/img/wn/" + r.Icon + "@2x.png"
}

func convertFromUnits(value float64, units, unit string) float64 {
	var from string
	switch units {
	case UnitsMetric:
		from = "C"
	case UnitsStandard:
		from = "K"
	default:
		from = "F"
	}
	converted, err := ConvertTemperature(value, from, unit)
	if err != nil {
		return value
	}
	return converted
}
