package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/chrissnell/daylight/pkg/calibrate"
	"github.com/chrissnell/daylight/pkg/daylight"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider. An empty
// filename or a missing file yields the defaults.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	if y.filename == "" {
		y.config = Defaults()
		return y.config, nil
	}

	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			y.config = Defaults()
			return y.config, nil
		}
		return nil, err
	}

	config, err := Parse(cfgFile)
	if err != nil {
		return nil, err
	}

	y.config = config
	return config, nil
}

// Parse decodes YAML configuration and fills in defaults.
func Parse(data []byte) (*ConfigData, error) {
	var config ConfigData
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, err
	}
	var set explicitKeys
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	config.applyDefaults(set)

	if d := config.Calibration.ReferenceDay; d < 0 || d >= daylight.DaysPerYear {
		return nil, fmt.Errorf("calibration.reference_day: %w: %d is outside 0-%d",
			daylight.ErrInvalidCalendarDate, d, daylight.DaysPerYear-1)
	}

	if _, err := config.Model.Coefficients(); err != nil {
		return nil, err
	}
	if err := validateObservations(&config.Calibration); err != nil {
		return nil, err
	}
	return &config, nil
}

func validateObservations(c *CalibrationData) error {
	for _, table := range [][]calibrate.Observation{c.Northern, c.Southern} {
		for _, o := range table {
			if err := daylight.ValidateLatitude(o.Latitude); err != nil {
				return fmt.Errorf("calibration observation %q: %w", o.Name, err)
			}
		}
	}
	return nil
}

// MarshalModel renders a model section for pasting into a config file.
func MarshalModel(degree int, c daylight.Coefficients) ([]byte, error) {
	doc := struct {
		Model ModelData `yaml:"model"`
	}{
		Model: ModelData{
			Degree:   degree,
			Northern: c.Northern,
			Southern: c.Southern,
		},
	}
	return yaml.Marshal(doc)
}

// GetModel returns the model section
func (y *YAMLProvider) GetModel() (*ModelData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Model, nil
}

// GetCalibration returns the calibration section
func (y *YAMLProvider) GetCalibration() (*CalibrationData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Calibration, nil
}

// GetRESTServer returns the REST server section
func (y *YAMLProvider) GetRESTServer() (*RESTServerData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.REST, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML files
func (y *YAMLProvider) Close() error {
	return nil
}
