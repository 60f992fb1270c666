package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "vaccination_config.yaml"
	dateLayout     = "2006-01-02"
	daysPerWeek    = 7
)

// HourOverride replaces the working hours of every planning-week day matched by RRule
type HourOverride struct {
	RRule string `yaml:"rrule" validate:"required"`
	Hours int    `yaml:"hours" validate:"min=0,max=12"`
}

// HubConfig defines a hub and its staffing
type HubConfig struct {
	Name    string `yaml:"name" validate:"required"`
	Doctors int    `yaml:"doctors" validate:"min=1"`
	Nurses  int    `yaml:"nurses" validate:"min=1"`
	Other   int    `yaml:"other" validate:"min=1"`
}

// Config represents the campaign configuration
type Config struct {
	// CurrentYear is the reference year for ages (defaults to the current calendar year)
	CurrentYear int `yaml:"currentYear,omitempty" validate:"omitempty,min=1"`

	// PeopleFile is the path of the SSN,LAST,FIRST,YEAR file to load at startup
	PeopleFile string `yaml:"peopleFile,omitempty"`

	// AgeBreaks are the boundaries between age intervals, strictly increasing
	AgeBreaks []int `yaml:"ageBreaks" validate:"required,min=1,dive,min=1"`

	// Hours are the working hours Monday..Sunday
	Hours []int `yaml:"hours" validate:"len=7,dive,min=0,max=12"`

	// WeekStart is the Monday of the planning week, required with HourOverrides
	WeekStart string `yaml:"weekStart,omitempty" validate:"omitempty,datetime=2006-01-02"`

	HourOverrides []HourOverride `yaml:"hourOverrides,omitempty" validate:"dive"`

	Hubs []HubConfig `yaml:"hubs" validate:"unique=Name,dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from vaccination_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile(configFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadWithEnv loads vaccination_config.<env>.yaml, falling back to vaccination_config.yaml
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(fmt.Sprintf("vaccination_config.%s.yaml", env), configFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, age breaks and rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i := 1; i < len(cfg.AgeBreaks); i++ {
		if cfg.AgeBreaks[i] <= cfg.AgeBreaks[i-1] {
			return fmt.Errorf("ageBreaks must be strictly increasing, got %v", cfg.AgeBreaks)
		}
	}

	if len(cfg.HourOverrides) > 0 {
		if cfg.WeekStart == "" {
			return fmt.Errorf("weekStart is required when hourOverrides are set")
		}
		start, err := time.Parse(dateLayout, cfg.WeekStart)
		if err != nil {
			return fmt.Errorf("invalid weekStart: %w", err)
		}
		if start.Weekday() != time.Monday {
			return fmt.Errorf("weekStart must be a Monday, got %s (%s)", cfg.WeekStart, start.Weekday())
		}
	}

	// Validate rrule syntax for each override
	for i, override := range cfg.HourOverrides {
		if _, err := rrule.StrToRRule(override.RRule); err != nil {
			return fmt.Errorf("invalid rrule in hourOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

// Year returns the reference year for ages
func (c *Config) Year(now time.Time) int {
	if c.CurrentYear != 0 {
		return c.CurrentYear
	}
	return now.Year()
}

// WeeklyHours returns the working hours Monday..Sunday with every
// hour override applied. Later overrides win over earlier ones.
func (c *Config) WeeklyHours() ([]int, error) {
	hours := append([]int(nil), c.Hours...)
	if len(c.HourOverrides) == 0 {
		return hours, nil
	}

	start, err := time.Parse(dateLayout, c.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid weekStart: %w", err)
	}
	// Occurrences may fall at any time of day, so the window runs up to
	// (but excluding) the following Monday
	end := start.AddDate(0, 0, daysPerWeek)

	for i, override := range c.HourOverrides {
		rule, err := rrule.StrToRRule(override.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for override %d: %w", i, err)
		}

		rule.DTStart(start)
		for _, occurrence := range rule.Between(start, end, true) {
			if !occurrence.Before(end) {
				continue
			}
			day := int(occurrence.Sub(start).Hours() / 24)
			if day >= 0 && day < len(hours) {
				hours[day] = override.Hours
			}
		}
	}

	return hours, nil
}

// findConfigFile searches for the named config files in the current directory and home directory
func findConfigFile(names ...string) (string, error) {
	// Check current directory
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	for _, name := range names {
		homeConfigPath := filepath.Join(homeDir, name)
		if _, err := os.Stat(homeConfigPath); err == nil {
			return homeConfigPath, nil
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
