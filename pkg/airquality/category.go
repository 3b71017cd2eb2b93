package airquality

import "math"

// Category is an AQI label derived from the PM2.5 concentration.
type Category string

const (
	Good                  Category = "Good"
	Moderate              Category = "Moderate"
	UnhealthyForSensitive Category = "Unhealthy for Sensitive"
	Unhealthy             Category = "Unhealthy"
	VeryUnhealthy         Category = "Very Unhealthy"
	Hazardous             Category = "Hazardous"

	// Unknown marks a reading that is missing or negative.
	Unknown Category = "Unknown"
)

// upper bounds are inclusive; anything above the last bound is Hazardous
var bounds = []struct {
	max float64
	cat Category
}{
	{50, Good},
	{100, Moderate},
	{150, UnhealthyForSensitive},
	{200, Unhealthy},
	{300, VeryUnhealthy},
}

// Classify maps a PM2.5 value to its category.
func Classify(pm25 float64) Category {
	if math.IsNaN(pm25) || pm25 < 0 {
		return Unknown
	}
	for _, b := range bounds {
		if pm25 <= b.max {
			return b.cat
		}
	}
	return Hazardous
}

// Categories returns the six labels from least to most severe.
func Categories() []Category {
	return []Category{Good, Moderate, UnhealthyForSensitive, Unhealthy, VeryUnhealthy, Hazardous}
}

// Severity is the position of c in Categories, or -1 for Unknown.
func (c Category) Severity() int {
	for i, k := range Categories() {
		if k == c {
			return i
		}
	}
	return -1
}

func (c Category) String() string { return string(c) }
