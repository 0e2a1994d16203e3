package weather

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var severeKeywords = []string{
	"storm", "thunderstorm", "hail", "tornado", "hurricane",
	"blizzard", "extreme", "severe", "warning", "advisory",
}

const (
	highWindMPH = 25.0
	highWindMPS = 11.0
)

// CheckSevere lists severe conditions for a record: each keyword found in
// the condition label, plus "High Winds" above 25 mph (imperial) or 11 m/s (metric).
func CheckSevere(r *Record) []string {
	if r == nil {
		return nil
	}

	var conditions []string
	description := strings.ToLower(r.Condition)
	title := cases.Title(language.English)
	for _, keyword := range severeKeywords {
		if strings.Contains(description, keyword) {
			conditions = append(conditions, title.String(keyword))
		}
	}

	switch r.Units {
	case UnitsImperial:
		if r.WindSpeed > highWindMPH {
			conditions = append(conditions, "High Winds")
		}
	case UnitsMetric:
		if r.WindSpeed > highWindMPS {
			conditions = append(conditions, "High Winds")
		}
	}

	return conditions
}
