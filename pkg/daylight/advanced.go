package daylight

import "math"

// EstimateAdvanced returns daylight hours from axial-tilt geometry alone:
//
//	hours = 12 + (24/π) * asin(∓ tan(lat) * tan(tilt) * sin(2π/365 * Δ))
//
// where Δ = 79 - day in the north and day - 264 in the south (using |lat|).
// The asin argument is clamped to [-1,1], which yields polar day (24h) and
// polar night (0h) instead of an error. Valid for every latitude in
// [-90,90], including the poles.
func EstimateAdvanced(dayOfYear int, lat, axialTiltDeg float64) (float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return 0, err
	}

	tilt := math.Tan(degToRad(axialTiltDeg))

	var hours float64
	if HemisphereOf(lat) == Northern {
		inner := math.Tan(degToRad(lat)) * tilt * math.Sin(angularDay(NorthernEquinoxPhase-dayOfYear))
		hours = 12 + (24/math.Pi)*math.Asin(-Clamp(inner, -1, 1))
	} else {
		inner := math.Tan(degToRad(math.Abs(lat))) * tilt * math.Sin(angularDay(dayOfYear-SouthernEquinoxPhase))
		hours = 12 + (24/math.Pi)*math.Asin(Clamp(inner, -1, 1))
	}

	if math.IsNaN(hours) {
		hours = 12
	}
	return ClampHours(hours), nil
}
