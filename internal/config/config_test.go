package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		CurrentYear: 2021,
		PeopleFile:  "people.csv",
		AgeBreaks:   []int{40, 50, 60},
		Hours:       []int{4, 8, 8, 8, 8, 4, 0},
		Hubs: []HubConfig{
			{Name: "Torino", Doctors: 5, Nurses: 4, Other: 3},
			{Name: "Milano", Doctors: 2, Nurses: 2, Other: 1},
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.WeekStart = "2021-06-07"
	cfg.HourOverrides = []HourOverride{
		{RRule: "FREQ=WEEKLY;BYDAY=SU", Hours: 2},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		AgeBreaks: []int{60},
		Hours:     []int{0, 0, 0, 0, 0, 0, 0},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_StructErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"missing age breaks", func(cfg *Config) { cfg.AgeBreaks = nil }},
		{"zero age break", func(cfg *Config) { cfg.AgeBreaks = []int{0, 40} }},
		{"six days of hours", func(cfg *Config) { cfg.Hours = []int{8, 8, 8, 8, 8, 8} }},
		{"negative hours", func(cfg *Config) { cfg.Hours = []int{8, 8, -1, 8, 8, 8, 8} }},
		{"thirteen hours", func(cfg *Config) { cfg.Hours = []int{8, 8, 13, 8, 8, 8, 8} }},
		{"hub without name", func(cfg *Config) { cfg.Hubs[0].Name = "" }},
		{"hub without doctors", func(cfg *Config) { cfg.Hubs[0].Doctors = 0 }},
		{"hub with negative nurses", func(cfg *Config) { cfg.Hubs[1].Nurses = -2 }},
		{"duplicate hub names", func(cfg *Config) { cfg.Hubs[1].Name = "Torino" }},
		{"bad week start", func(cfg *Config) { cfg.WeekStart = "07/06/2021" }},
		{"override without rrule", func(cfg *Config) {
			cfg.WeekStart = "2021-06-07"
			cfg.HourOverrides = []HourOverride{{Hours: 2}}
		}},
		{"override hours out of range", func(cfg *Config) {
			cfg.WeekStart = "2021-06-07"
			cfg.HourOverrides = []HourOverride{{RRule: "FREQ=DAILY", Hours: 14}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidate_AgeBreaksNotIncreasing(t *testing.T) {
	cfg := validConfig()
	cfg.AgeBreaks = []int{40, 40, 60}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly increasing")
}

func TestValidate_OverridesRequireWeekStart(t *testing.T) {
	cfg := validConfig()
	cfg.HourOverrides = []HourOverride{{RRule: "FREQ=WEEKLY;BYDAY=SU", Hours: 2}}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weekStart is required")
}

func TestValidate_WeekStartMustBeMonday(t *testing.T) {
	cfg := validConfig()
	cfg.WeekStart = "2021-06-08"
	cfg.HourOverrides = []HourOverride{{RRule: "FREQ=WEEKLY;BYDAY=SU", Hours: 2}}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a Monday")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := validConfig()
	cfg.WeekStart = "2021-06-07"
	cfg.HourOverrides = []HourOverride{
		{RRule: "FREQ=WEEKLY;BYDAY=SU", Hours: 2},
		{RRule: "INVALID_RRULE", Hours: 2},
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule in hourOverrides[1]")
}

func TestYear(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	cfg := validConfig()
	assert.Equal(t, 2021, cfg.Year(now))

	cfg.CurrentYear = 0
	assert.Equal(t, 2026, cfg.Year(now))
}

func TestWeeklyHours_NoOverrides(t *testing.T) {
	cfg := validConfig()

	hours, err := cfg.WeeklyHours()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 8, 8, 8, 4, 0}, hours)

	// The configured vector is not modified
	hours[0] = 12
	assert.Equal(t, 4, cfg.Hours[0])
}

func TestWeeklyHours_Overrides(t *testing.T) {
	cfg := validConfig()
	cfg.WeekStart = "2021-06-07" // Monday
	cfg.HourOverrides = []HourOverride{
		{RRule: "FREQ=WEEKLY;BYDAY=SA,SU", Hours: 6},
		{RRule: "FREQ=WEEKLY;BYDAY=SU", Hours: 2},
		{RRule: "FREQ=WEEKLY;BYDAY=WE", Hours: 12},
	}
	require.NoError(t, Validate(cfg))

	hours, err := cfg.WeeklyHours()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 12, 8, 8, 6, 2}, hours)
}

func TestWeeklyHours_OverridesWithTimeOfDay(t *testing.T) {
	cfg := validConfig()
	cfg.WeekStart = "2021-06-07"
	cfg.HourOverrides = []HourOverride{
		{RRule: "FREQ=WEEKLY;BYDAY=SU;BYHOUR=18", Hours: 5},
		{RRule: "FREQ=WEEKLY;BYDAY=TU;BYHOUR=9;BYMINUTE=30", Hours: 3},
		// The following Monday is outside the planning week
		{RRule: "FREQ=WEEKLY;BYDAY=MO", Hours: 1},
	}
	require.NoError(t, Validate(cfg))

	hours, err := cfg.WeeklyHours()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 8, 8, 8, 4, 5}, hours)
}

func TestWeeklyHours_OverrideOutsideWeek(t *testing.T) {
	cfg := validConfig()
	cfg.WeekStart = "2021-06-07"
	cfg.HourOverrides = []HourOverride{
		{RRule: "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25", Hours: 0},
	}

	hours, err := cfg.WeeklyHours()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 8, 8, 8, 4, 0}, hours)
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validYAML := `
currentYear: 2021
peopleFile: "people.csv"
ageBreaks: [40, 50, 60]
hours: [4, 8, 8, 8, 8, 4, 0]
weekStart: "2021-06-07"
hourOverrides:
  - rrule: "FREQ=WEEKLY;BYDAY=SU"
    hours: 3
hubs:
  - name: Torino
    doctors: 5
    nurses: 4
    other: 3
  - name: Milano
    doctors: 2
    nurses: 2
    other: 1
`

	err := os.WriteFile(configPath, []byte(validYAML), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, 2021, cfg.CurrentYear)
	assert.Equal(t, "people.csv", cfg.PeopleFile)
	assert.Equal(t, []int{40, 50, 60}, cfg.AgeBreaks)
	assert.Equal(t, []int{4, 8, 8, 8, 8, 4, 0}, cfg.Hours)
	assert.Equal(t, "2021-06-07", cfg.WeekStart)

	require.Len(t, cfg.HourOverrides, 1)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=SU", cfg.HourOverrides[0].RRule)
	assert.Equal(t, 3, cfg.HourOverrides[0].Hours)

	require.Len(t, cfg.Hubs, 2)
	assert.Equal(t, HubConfig{Name: "Torino", Doctors: 5, Nurses: 4, Other: 3}, cfg.Hubs[0])
	assert.Equal(t, "Milano", cfg.Hubs[1].Name)

	hours, err := cfg.WeeklyHours()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 8, 8, 8, 4, 3}, hours)
}

func TestLoadFromPath_MinimalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	minimalYAML := `
ageBreaks: [60]
hours: [8, 8, 8, 8, 8, 0, 0]
`

	err := os.WriteFile(configPath, []byte(minimalYAML), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.CurrentYear)
	assert.Empty(t, cfg.PeopleFile)
	assert.Empty(t, cfg.HourOverrides)
	assert.Empty(t, cfg.Hubs)
}

func TestLoadFromPath_MissingRequiredField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_config.yaml")

	invalidYAML := `
# Missing ageBreaks
hours: [8, 8, 8, 8, 8, 0, 0]
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
ageBreaks: [60]
  invalid indentation
hours: [8, 8, 8, 8, 8, 0, 0]
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithEnv_PrefersEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	require.NoError(t, os.WriteFile(configFileName, []byte("ageBreaks: [60]\nhours: [1, 1, 1, 1, 1, 1, 1]\n"), 0644))
	require.NoError(t, os.WriteFile("vaccination_config.test.yaml", []byte("ageBreaks: [40]\nhours: [2, 2, 2, 2, 2, 2, 2]\n"), 0644))

	cfg, err := LoadWithEnv("test")
	require.NoError(t, err)
	assert.Equal(t, []int{40}, cfg.AgeBreaks)

	cfg, err = LoadWithEnv("prod")
	require.NoError(t, err)
	assert.Equal(t, []int{60}, cfg.AgeBreaks)

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, []int{60}, cfg.AgeBreaks)
}
