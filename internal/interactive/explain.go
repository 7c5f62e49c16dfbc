package interactive

// Level selects how results are explained.
type Level int

const (
	Rookie     Level = 1
	Enthusiast Level = 2
)

func (l Level) String() string {
	switch l {
	case Rookie:
		return "Science Rookie"
	case Enthusiast:
		return "Science Enthusiast"
	}
	return "Unknown"
}

var rookieExplanation = []string{
	"Picture the Earth as a ball spinning in front of a big lamp, the Sun.",
	"One spin takes a day, which is why we get day and night. The ball is",
	"not upright, though: its spin axis leans over a little, like a head",
	"tilted to one side.",
	"",
	"Near the middle of the ball (the equator) the lean hardly matters, so",
	"day and night stay close to twelve hours each all year. Close to the",
	"top or the bottom (high latitudes) the lean decides everything: for part",
	"of the year your side faces the lamp for most of each spin, and for the",
	"other part it hardly sees the lamp at all.",
}

var enthusiastExplanation = []string{
	"Day length varies with latitude because the Earth's rotation axis is",
	"tilted about 23.44 degrees from the normal to its orbital plane (the",
	"obliquity of the ecliptic). The axis keeps pointing the same way while",
	"the Earth orbits the Sun, so the subsolar point drifts between the",
	"Tropic of Cancer and the Tropic of Capricorn over the year.",
	"",
	"The empirical model writes this as 12 + K*sin(2*pi/365*(t - phase)),",
	"with the phase on the March equinox (north) or the September equinox",
	"(south), and an amplitude K fitted as a polynomial in latitude from",
	"sunrise and sunset observations. The geometric model derives the same",
	"curve from the tilt through the sunrise equation instead.",
}

func explanation(l Level) (title string, lines []string) {
	if l == Enthusiast {
		return "SCIENCE EXPLANATION FOR ENTHUSIASTS:", enthusiastExplanation
	}
	return "SCIENCE EXPLANATION FOR ROOKIES:", rookieExplanation
}
