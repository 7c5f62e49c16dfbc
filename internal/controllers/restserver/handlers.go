package restserver

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chrissnell/daylight/pkg/daylight"
	"github.com/chrissnell/daylight/pkg/reference"
	"github.com/chrissnell/daylight/pkg/responseformat"
	"github.com/chrissnell/daylight/pkg/solar"
)

const (
	modelFitted   = "fitted"
	modelAdvanced = "advanced"
)

var errBadRequest = errors.New("bad request")

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
	now        func() time.Time
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
		now:        time.Now,
	}
}

// GetDaylight returns the estimate for one day.
// Query parameters: lat (required), day (0-364) or month and date, model
// (fitted|advanced), tilt (degrees, advanced model only), lon and tz
// (sunrise and sunset clock times).
func (h *Handlers) GetDaylight(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	lat, err := parseLatitude(q)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}
	day, err := h.parseDay(q)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}
	model, tilt, err := h.parseModel(q)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	resp := DaylightResponse{
		Latitude:   lat,
		Hemisphere: daylight.HemisphereOf(lat).String(),
		DayOfYear:  day,
		Date:       daylight.FormatDay(day),
		Model:      model,
	}

	switch model {
	case modelAdvanced:
		resp.Hours, err = daylight.EstimateAdvanced(day, lat, tilt)
	default:
		resp.Hours, err = h.controller.estimator.Estimate(day, lat)
		resp.Amplitude = h.controller.estimator.Amplitude(lat)
	}
	if err != nil {
		h.badRequest(w, req, err)
		return
	}
	resp.Formatted = daylight.FormatHours(resp.Hours)

	if q.Has("lon") {
		resp.Sun, err = h.sunTimes(q, day, lat)
		if err != nil {
			h.badRequest(w, req, err)
			return
		}
	}

	h.write(w, req, resp)
}

// GetDaylightYear returns all 365 days at a latitude with a summary and the
// values on the equinoxes and solstices.
func (h *Handlers) GetDaylightYear(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	lat, err := parseLatitude(q)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}
	model, tilt, err := h.parseModel(q)
	if err != nil {
		h.badRequest(w, req, err)
		return
	}

	var values []float64
	switch model {
	case modelAdvanced:
		values, err = daylight.AdvancedYearValues(req.Context(), lat, tilt)
	default:
		values, err = h.controller.estimator.YearValues(req.Context(), lat)
	}
	if err != nil {
		if errors.Is(err, daylight.ErrInvalidLatitude) {
			h.badRequest(w, req, err)
			return
		}
		h.controller.logger.Errorf("year series at %v: %v", lat, err)
		_ = h.formatter.WriteError(w, req, http.StatusInternalServerError, err)
		return
	}

	resp := YearResponse{
		Latitude:   lat,
		Hemisphere: daylight.HemisphereOf(lat).String(),
		Model:      model,
		Hours:      values,
		Summary:    daylight.Summarize(values),
	}
	for _, kd := range daylight.KeyDates {
		resp.KeyDates = append(resp.KeyDates, KeyDateValue{Day: kd.Day, Label: kd.Label, Hours: values[kd.Day]})
	}

	h.write(w, req, resp)
}

// GetCoefficients returns the polynomials the server estimates with.
func (h *Handlers) GetCoefficients(w http.ResponseWriter, req *http.Request) {
	c := h.controller.estimator.Coefficients()
	h.write(w, req, CoefficientsResponse{
		Degree:    c.Northern.Degree(),
		AxialTilt: h.controller.model.AxialTilt,
		Northern:  c.Northern,
		Southern:  c.Southern,
		NorthernK: c.Northern.Format("lat"),
		SouthernK: c.Southern.Format("|lat|"),
	})
}

// GetSeasons returns the equinox and solstice days of a year (default: the
// current year).
func (h *Handlers) GetSeasons(w http.ResponseWriter, req *http.Request) {
	year := h.now().Year()
	if s := req.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < -2000 || y > 3000 {
			h.badRequest(w, req, fmt.Errorf("%w: year must be an integer between -2000 and 3000, got %q", errBadRequest, s))
			return
		}
		year = y
	}

	h.write(w, req, SeasonsResponse{Year: year, KeyDates: reference.Seasons(year)})
}

func (h *Handlers) sunTimes(q url.Values, day int, lat float64) (*SunTimes, error) {
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil || math.IsNaN(lon) || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: lon must be between -180 and 180, got %q", errBadRequest, q.Get("lon"))
	}

	loc := time.UTC
	if tz := q.Get("tz"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown time zone %q", errBadRequest, tz)
		}
	}

	t, err := solar.SunriseSunset(day, h.now().Year(), lat, lon)
	if err != nil {
		return nil, err
	}
	return &SunTimes{
		Longitude:  lon,
		TimeZone:   loc.String(),
		Sunrise:    t.SunriseIn(loc),
		Sunset:     t.SunsetIn(loc),
		PolarDay:   t.PolarDay,
		PolarNight: t.PolarNight,
		DayLength:  t.DayLength(),
	}, nil
}

func (h *Handlers) write(w http.ResponseWriter, req *http.Request, data any) {
	if err := h.formatter.WriteResponse(w, req, data, map[string]string{"Cache-Control": "max-age=3600"}); err != nil {
		h.controller.logger.Errorf("error encoding response: %v", err)
	}
}

func (h *Handlers) badRequest(w http.ResponseWriter, req *http.Request, err error) {
	_ = h.formatter.WriteError(w, req, http.StatusBadRequest, err)
}

func parseLatitude(q url.Values) (float64, error) {
	s := q.Get("lat")
	if s == "" {
		return 0, fmt.Errorf("%w: lat parameter is required", errBadRequest)
	}
	lat, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: lat must be a number, got %q", daylight.ErrInvalidLatitude, s)
	}
	if err := daylight.ValidateLatitude(lat); err != nil {
		return 0, err
	}
	return lat, nil
}

// parseDay reads day (0-based) or month and date. With neither, today's
// date is used.
func (h *Handlers) parseDay(q url.Values) (int, error) {
	if s := q.Get("day"); s != "" {
		day, err := strconv.Atoi(s)
		if err != nil || day < 0 || day >= daylight.DaysPerYear {
			return 0, fmt.Errorf("%w: day must be an integer between 0 and %d, got %q",
				daylight.ErrInvalidCalendarDate, daylight.DaysPerYear-1, s)
		}
		return day, nil
	}

	ms, ds := q.Get("month"), q.Get("date")
	if ms == "" && ds == "" {
		return daylight.DayOfYearFromTime(h.now()), nil
	}
	month, err := strconv.Atoi(ms)
	if err != nil {
		return 0, fmt.Errorf("%w: month must be an integer, got %q", daylight.ErrInvalidCalendarDate, ms)
	}
	date, err := strconv.Atoi(ds)
	if err != nil {
		return 0, fmt.Errorf("%w: date must be an integer, got %q", daylight.ErrInvalidCalendarDate, ds)
	}
	return daylight.DayOfYear(month, date)
}

func (h *Handlers) parseModel(q url.Values) (string, float64, error) {
	tilt := h.controller.model.AxialTilt
	if s := q.Get("tilt"); s != "" {
		t, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(t) || t < 0 || t > 90 {
			return "", 0, fmt.Errorf("%w: tilt must be between 0 and 90 degrees, got %q", errBadRequest, s)
		}
		tilt = t
	}

	switch m := q.Get("model"); m {
	case "", modelFitted:
		return modelFitted, tilt, nil
	case modelAdvanced:
		return modelAdvanced, tilt, nil
	default:
		return "", 0, fmt.Errorf("%w: model must be %q or %q, got %q", errBadRequest, modelFitted, modelAdvanced, m)
	}
}
