package weather

import (
	"hash/fnv"
	"strings"
	"time"
)

// demoCondition is one canned observation, stored in imperial units
type demoCondition struct {
	Country       string
	TemperatureF  float64
	FeelsLikeF    float64
	Humidity      int
	WindMPH       float64
	WindDirection float64
	Pressure      float64
	VisibilityKM  float64
	Condition     string
	Icon          string
	SunriseHour   int
	SunriseMinute int
	SunsetHour    int
	SunsetMinute  int
}

var demoConditions = []demoCondition{
	{"US", 72, 71, 45, 8.1, 220, 1015, 10, "Clear Sky", "01d", 6, 12, 20, 31},
	{"US", 64, 63, 68, 11.4, 270, 1011, 10, "Scattered Clouds", "03d", 6, 3, 20, 18},
	{"GB", 55, 53, 82, 14.2, 240, 1006, 8, "Light Rain", "10d", 4, 43, 21, 21},
	{"US", 88, 95, 71, 17.9, 190, 1002, 6, "Thunderstorm", "11d", 6, 31, 20, 2},
	{"JP", 79, 81, 60, 6.5, 150, 1013, 10, "Few Clouds", "02d", 4, 26, 19, 0},
	{"CA", 28, 17, 79, 27.5, 330, 998, 2, "Snow", "13d", 7, 41, 16, 38},
	{"AU", 91, 90, 22, 12.7, 45, 1009, 10, "Haze", "50d", 7, 1, 17, 52},
	{"DE", 60, 59, 88, 4.3, 200, 1018, 3, "Mist", "50d", 5, 51, 21, 30},
}

// demoDate anchors demo sunrise/sunset so repeated calls are identical
var demoDate = time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)

// demoIndex picks a table entry by FNV-1a hash of the normalized city name
func demoIndex(city string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(city))))
	return int(h.Sum32() % uint32(len(demoConditions)))
}

// DemoRecord synthesizes a deterministic record for the city. Equal inputs
// (after trimming and case folding) always map to the same observation.
func DemoRecord(city, units string) *Record {
	idx := demoIndex(city)
	c := demoConditions[idx]

	record := &Record{
		City:          strings.TrimSpace(city),
		Country:       c.Country,
		Temperature:   c.TemperatureF,
		FeelsLike:     c.FeelsLikeF,
		Humidity:      c.Humidity,
		WindSpeed:     c.WindMPH,
		WindDirection: c.WindDirection,
		Pressure:      c.Pressure,
		Visibility:    c.VisibilityKM,
		Condition:     c.Condition,
		Icon:          c.Icon,
		Sunrise:       demoDate.Add(time.Duration(c.SunriseHour)*time.Hour + time.Duration(c.SunriseMinute)*time.Minute),
		Sunset:        demoDate.Add(time.Duration(c.SunsetHour)*time.Hour + time.Duration(c.SunsetMinute)*time.Minute),
		Units:         UnitsImperial,
		Source:        SourceDemo,
		RawData: map[string]interface{}{
			"demo_entry": idx,
		},
	}

	switch units {
	case UnitsMetric:
		record.Temperature = Round(FahrenheitToCelsius(c.TemperatureF), 1)
		record.FeelsLike = Round(FahrenheitToCelsius(c.FeelsLikeF), 1)
		record.WindSpeed = Round(MPHToMetersPerSecond(c.WindMPH), 1)
		record.Units = UnitsMetric
	case UnitsStandard:
		record.Temperature = Round(KelvinFromFahrenheit(c.TemperatureF), 1)
		record.FeelsLike = Round(KelvinFromFahrenheit(c.FeelsLikeF), 1)
		record.WindSpeed = Round(MPHToMetersPerSecond(c.WindMPH), 1)
		record.Units = UnitsStandard
	}

	return record
}

// KelvinFromFahrenheit converts Fahrenheit to Kelvin
func KelvinFromFahrenheit(f float64) float64 {
	return FahrenheitToCelsius(f) + 273.15
}
