package aprs

/*------------------------------------------------------------------
 *
 * Purpose:	Settings for the command line tools.
 *
 * Description:	An optional YAML file, e.g.
 *
 *			precision: one-minute
 *			compressed: false
 *			symbol_table: /
 *			timestamp_format: "%H:%M:%S"
 *			log_level: warn
 *
 *		Anything not mentioned keeps its default.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Precision       Precision `yaml:"precision"`
	Compressed      bool      `yaml:"compressed"`
	SymbolTable     string    `yaml:"symbol_table"`
	TimestampFormat string    `yaml:"timestamp_format"`
	LogLevel        string    `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Precision:   PrecisionHundredthMinute,
		SymbolTable: "/",
		LogLevel:    "warn",
	}
}

// Searched in order when no file is named explicitly.
var configSearchLocations = []string{
	"samoyed-latlong.yaml",
	"/usr/local/etc/samoyed-latlong.yaml",
	"/etc/samoyed-latlong.yaml",
}

// LoadConfig reads path, or the first of the usual locations that exists
// when path is empty.  No file at all is not an error.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		var fp, err = os.Open(path)
		if err != nil {
			return Config{}, err
		}
		defer fp.Close()

		return ReadConfig(fp)
	}

	for _, location := range configSearchLocations {
		var fp, err = os.Open(location)
		if err != nil {
			continue
		}
		defer fp.Close()

		logger.Debug("using config file", "path", location)

		return ReadConfig(fp)
	}

	return DefaultConfig(), nil
}

func ReadConfig(r io.Reader) (Config, error) {
	var data, err = io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	var c = DefaultConfig()

	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if !c.Precision.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, int(c.Precision))
	}

	if len(c.SymbolTable) != 1 {
		return fmt.Errorf("symbol_table must be a single character, not %q", c.SymbolTable)
	}

	var _, err = log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

func (c Config) Level() log.Level {
	var level, err = log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}

	return level
}
