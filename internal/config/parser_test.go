package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moonerrors "github.com/alexisbeaulieu97/moonui/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1"
theme: dark
slider:
  min: 0
  max: 50
  step: 5
  values: [10, 40]
calendar:
  mode: range
  week_start: monday
  disabled_weekdays: [sat, sun]
pickers:
  date_format: "PPP"
  time_format: 12h
  time_interval: 15
  default_time: "09:30"
  default_date: "2024-01-20"
`

	invalidYAML := `version: [1, 0]
slider:
  min: 0
`

	badStep := `version: "1"
slider:
  min: 0
  max: 10
  step: 0
`

	badTime := `version: "1"
pickers:
  default_time: "9:75"
`

	cases := []struct {
		name      string
		contents  string
		wantError error
		assert    func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "dark", cfg.Theme)
				require.Equal(t, []float64{10, 40}, cfg.Slider.Values)
				require.Equal(t, Weekday(time.Monday), cfg.Calendar.WeekStart)
				require.Equal(t, []Weekday{Weekday(time.Saturday), Weekday(time.Sunday)}, cfg.Calendar.DisabledWeekdays)
				require.True(t, cfg.Pickers.Twelve())
				require.Equal(t, 15, cfg.Pickers.TimeInterval)
			},
		},
		{
			name:      "invalid yaml returns parse error",
			contents:  invalidYAML,
			wantError: &moonerrors.ParseError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *moonerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:      "step must be positive",
			contents:  badStep,
			wantError: &moonerrors.ValidationError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *moonerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "slider.step", validationErr.Field)
				require.Contains(t, validationErr.Message, "'gt'")
			},
		},
		{
			name:      "default time must be HH:mm",
			contents:  badTime,
			wantError: &moonerrors.ValidationError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *moonerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "pickers.default_time", validationErr.Field)
				require.Contains(t, validationErr.Message, "hhmm")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
			if tc.wantError != nil {
				require.Error(t, err)
				require.Nil(t, cfg)
			}
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *moonerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	require.NoError(t, ValidateConfig(cfg))
}

func TestPartialDocumentKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parse("inline", []byte("slider:\n  value: 30\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, []float64{30}, cfg.Slider.Values)
	assert.Equal(t, 100.0, cfg.Slider.Max)
	assert.Equal(t, 30, cfg.Pickers.TimeInterval)
}

func TestSliderValueAndValuesConflict(t *testing.T) {
	t.Parallel()

	_, err := parse("inline", []byte("slider:\n  value: 30\n  values: [1, 2]\n"))

	var parseErr *moonerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Calendar.WeekStart = Weekday(time.Monday)

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "week_start: monday")

	back, err := parse("roundtrip", data)
	require.NoError(t, err)
	assert.Equal(t, cfg, *back)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
