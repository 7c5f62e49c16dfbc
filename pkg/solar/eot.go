package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func radToDeg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// fixAngle normalizes an angle to the range [0, 360) degrees
func fixAngle(angle float64) float64 {
	return math.Mod(math.Mod(angle, 360)+360, 360)
}

// equationOfTime returns apparent minus mean solar time in minutes.
func equationOfTime(t time.Time) float64 {
	T := base.J2000Century(julian.TimeToJD(t))

	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))            // Mean longitude of the Sun (degrees)
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))             // Mean anomaly of the Sun (degrees)
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)                  // Eccentricity of Earth's orbit
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60 // Mean obliquity of the ecliptic (degrees)

	y := math.Tan(degToRad(eps0)/2) * math.Tan(degToRad(eps0)/2)
	eqTime := y*math.Sin(degToRad(2*L0)) -
		2*e*math.Sin(degToRad(M)) +
		4*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0)) -
		0.5*y*y*math.Sin(degToRad(4*L0)) -
		1.25*e*e*math.Sin(degToRad(2*M))

	return radToDeg(eqTime) * 4 // 4 minutes per degree
}
