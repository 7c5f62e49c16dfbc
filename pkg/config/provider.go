package config

import (
	"errors"
	"fmt"

	"github.com/chrissnell/daylight/pkg/calibrate"
	"github.com/chrissnell/daylight/pkg/daylight"
)

// ErrIncompleteCoefficients is returned when only one hemisphere has
// explicit coefficients.
var ErrIncompleteCoefficients = errors.New("explicit coefficients must be given for both hemispheres")

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetModel() (*ModelData, error)
	GetCalibration() (*CalibrationData, error)
	GetRESTServer() (*RESTServerData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Model       ModelData       `yaml:"model"`
	Calibration CalibrationData `yaml:"calibration,omitempty"`
	REST        RESTServerData  `yaml:"rest,omitempty"`
	Output      OutputData      `yaml:"output,omitempty"`
}

// ModelData selects the amplitude polynomials. Explicit coefficients (in
// ascending power order) take precedence over the preset for Degree.
type ModelData struct {
	Degree    int       `yaml:"degree"`
	AxialTilt float64   `yaml:"axial_tilt,omitempty"`
	Northern  []float64 `yaml:"northern,omitempty"`
	Southern  []float64 `yaml:"southern,omitempty"`
}

// CalibrationData holds the observation tables the fitter runs on.
type CalibrationData struct {
	ReferenceDay int                     `yaml:"reference_day"`
	Northern     []calibrate.Observation `yaml:"northern,omitempty"`
	Southern     []calibrate.Observation `yaml:"southern,omitempty"`
}

// RESTServerData configures the HTTP server
type RESTServerData struct {
	ListenAddr string `yaml:"listen_addr,omitempty"`
	Port       int    `yaml:"port,omitempty"`
}

// OutputData configures optional file output
type OutputData struct {
	CSVPath string `yaml:"csv_path,omitempty"`
}

const (
	DefaultDegree     = 3
	DefaultListenAddr = "0.0.0.0"
	DefaultHTTPPort   = 8080
)

// Defaults returns the configuration used when no file is present: the
// published cubic fit and the built-in January 19th observation tables.
func Defaults() *ConfigData {
	cfg := &ConfigData{}
	cfg.applyDefaults(explicitKeys{})
	return cfg
}

// explicitKeys records keys whose zero value is a valid setting, so that
// "reference_day: 0" is not mistaken for an absent key.
type explicitKeys struct {
	Model struct {
		Degree *int `yaml:"degree"`
	} `yaml:"model"`
	Calibration struct {
		ReferenceDay *int `yaml:"reference_day"`
	} `yaml:"calibration"`
}

func (c *ConfigData) applyDefaults(set explicitKeys) {
	if set.Model.Degree == nil && c.Model.Degree == 0 && len(c.Model.Northern) == 0 {
		c.Model.Degree = DefaultDegree
	}
	if c.Model.AxialTilt == 0 {
		c.Model.AxialTilt = daylight.DefaultAxialTilt
	}
	if set.Calibration.ReferenceDay == nil && c.Calibration.ReferenceDay == 0 {
		c.Calibration.ReferenceDay = daylight.ReferenceDay
	}
	if len(c.Calibration.Northern) == 0 {
		c.Calibration.Northern = calibrate.NorthernObservations
	}
	if len(c.Calibration.Southern) == 0 {
		c.Calibration.Southern = calibrate.SouthernObservations
	}
	if c.REST.ListenAddr == "" {
		c.REST.ListenAddr = DefaultListenAddr
	}
	if c.REST.Port == 0 {
		c.REST.Port = DefaultHTTPPort
	}
}

// Coefficients resolves the configured polynomials.
func (m ModelData) Coefficients() (daylight.Coefficients, error) {
	switch {
	case len(m.Northern) > 0 && len(m.Southern) > 0:
		return daylight.Coefficients{
			Northern: append(daylight.Polynomial(nil), m.Northern...),
			Southern: append(daylight.Polynomial(nil), m.Southern...),
		}, nil
	case len(m.Northern) > 0 || len(m.Southern) > 0:
		return daylight.Coefficients{}, ErrIncompleteCoefficients
	}

	c, err := daylight.PresetCoefficients(m.Degree)
	if err != nil {
		return daylight.Coefficients{}, fmt.Errorf("model.degree: %w", err)
	}
	return c, nil
}

// Estimator builds a daylight.Estimator from the model section.
func (m ModelData) Estimator() (*daylight.Estimator, error) {
	c, err := m.Coefficients()
	if err != nil {
		return nil, err
	}
	return daylight.NewEstimator(c), nil
}
