//go:build !solution

package grocerconfig

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v2"
)

const (
	DefaultInput  = "CS210_Project_Three_Input_File.txt"
	DefaultBackup = "frequency.dat"
)

// Config описывает настройки трекера.
type Config struct {
	Input       string `yaml:"input"`
	Backup      string `yaml:"backup"`
	Restore     bool   `yaml:"restore"`
	Marker      string `yaml:"marker"`
	ColumnWidth int    `yaml:"column_width"`
	LookupMode  string `yaml:"lookup_mode"`
	MetricsFile string `yaml:"metrics_file"`
	Log         Log    `yaml:"log"`
}

type Log struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Input:       DefaultInput,
		Backup:      DefaultBackup,
		Marker:      "*",
		ColumnWidth: 15,
		LookupMode:  "scan",
		Log: Log{
			Mode:  "development",
			Level: "warn",
		},
	}
}

// Load читает YAML поверх значений по умолчанию.
// Пустой файл даёт конфигурацию по умолчанию.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) == 0 {
		return config, nil
	}

	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return config, nil
}

// MarkerRune возвращает маркер гистограммы. Вызывать после Validate.
func (c Config) MarkerRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Marker)
	return r
}

func (c Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input path is empty"))
	}
	if c.Backup == "" {
		errs = append(errs, errors.New("backup path is empty"))
	}
	if utf8.RuneCountInString(c.Marker) != 1 {
		errs = append(errs, fmt.Errorf("marker must be a single character, got %q", c.Marker))
	}
	if c.ColumnWidth < 1 {
		errs = append(errs, fmt.Errorf("column_width must be positive, got %d", c.ColumnWidth))
	}
	switch c.LookupMode {
	case "scan", "index":
	default:
		errs = append(errs, fmt.Errorf("unknown lookup_mode %q", c.LookupMode))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
