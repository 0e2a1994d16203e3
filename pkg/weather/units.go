package weather

import (
	"fmt"
	"math"
	"strings"
)

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func KelvinToCelsius(k float64) float64 {
	return k - 273.15
}

func KelvinToFahrenheit(k float64) float64 {
	return CelsiusToFahrenheit(KelvinToCelsius(k))
}

// ConvertTemperature converts between "F", "C" and "K"
func ConvertTemperature(value float64, from, to string) (float64, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return value, nil
	}

	var celsius float64
	switch from {
	case "F":
		celsius = FahrenheitToCelsius(value)
	case "C":
		celsius = value
	case "K":
		celsius = KelvinToCelsius(value)
	default:
		return 0, fmt.Errorf("unknown temperature unit: %s", from)
	}

	switch to {
	case "F":
		return CelsiusToFahrenheit(celsius), nil
	case "C":
		return celsius, nil
	case "K":
		return celsius + 273.15, nil
	default:
		return 0, fmt.Errorf("unknown temperature unit: %s", to)
	}
}

func MPHToMetersPerSecond(mph float64) float64 {
	return mph * 0.44704
}

func MetersPerSecondToMPH(mps float64) float64 {
	return mps / 0.44704
}

func HPaToInHg(hpa float64) float64 {
	return hpa * 0.02953
}

func KilometersToMiles(km float64) float64 {
	return km * 0.621371
}

// Round rounds to the given number of decimals
func Round(value float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(value*p) / p
}
