package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSevere(t *testing.T) {
	tests := []struct {
		name string
		rec  *Record
		want []string
	}{
		{"nil", nil, nil},
		{"calm", &Record{Condition: "Clear Sky", WindSpeed: 5, Units: UnitsImperial}, nil},
		{"thunderstorm", &Record{Condition: "Thunderstorm", Units: UnitsImperial}, []string{"Storm", "Thunderstorm"}},
		{"hail and warning", &Record{Condition: "Hail Warning", Units: UnitsMetric}, []string{"Hail", "Warning"}},
		{"imperial wind", &Record{Condition: "Clear", WindSpeed: 25.1, Units: UnitsImperial}, []string{"High Winds"}},
		{"imperial wind at threshold", &Record{Condition: "Clear", WindSpeed: 25, Units: UnitsImperial}, nil},
		{"metric wind", &Record{Condition: "Clear", WindSpeed: 11.5, Units: UnitsMetric}, []string{"High Winds"}},
		{"standard units ignore wind", &Record{Condition: "Clear", WindSpeed: 40, Units: UnitsStandard}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckSevere(tt.rec))
		})
	}
}

func TestConvertTemperature(t *testing.T) {
	c, err := ConvertTemperature(212, "F", "C")
	assert.NoError(t, err)
	assert.InDelta(t, 100, c, 1e-9)

	f, err := ConvertTemperature(0, "c", "f")
	assert.NoError(t, err)
	assert.InDelta(t, 32, f, 1e-9)

	k, err := ConvertTemperature(0, "C", "K")
	assert.NoError(t, err)
	assert.InDelta(t, 273.15, k, 1e-9)

	_, err = ConvertTemperature(1, "R", "C")
	assert.Error(t, err)
}

func TestRecordUnitAccessors(t *testing.T) {
	r := &Record{Temperature: 50, FeelsLike: 41, WindSpeed: 10, Units: UnitsImperial}
	assert.InDelta(t, 10, r.TemperatureIn("C"), 1e-9)
	assert.InDelta(t, 5, r.FeelsLikeIn("C"), 1e-9)
	assert.InDelta(t, 10, r.WindIn("mph"), 1e-9)
	assert.InDelta(t, 4.4704, r.WindIn("m/s"), 1e-9)

	m := &Record{Temperature: 20, WindSpeed: 5, Units: UnitsMetric}
	assert.InDelta(t, 68, m.TemperatureIn("F"), 1e-9)
	assert.InDelta(t, 18, m.WindIn("km/h"), 1e-9)
	assert.InDelta(t, 20, m.TemperatureIn("C"), 1e-9)
}

func TestUnitHelpers(t *testing.T) {
	assert.InDelta(t, 29.92, HPaToInHg(1013.25), 0.01)
	assert.InDelta(t, 6.21371, KilometersToMiles(10), 1e-9)
	assert.Equal(t, 1.24, Round(1.2449, 2))
}
