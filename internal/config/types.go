package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only schema version understood by this package.
const CurrentVersion = "1"

// Config is the playground document: which theme to use and how each demo
// component starts out.
type Config struct {
	Version  string         `yaml:"version" validate:"required,eq=1"`
	Theme    string         `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark default"`
	Slider   SliderConfig   `yaml:"slider"`
	Calendar CalendarConfig `yaml:"calendar"`
	Pickers  PickerConfig   `yaml:"pickers"`
}

// SliderConfig seeds the playground slider. Values holds one number per
// thumb.
type SliderConfig struct {
	Min      float64   `yaml:"min"`
	Max      float64   `yaml:"max" validate:"gtfield=Min"`
	Step     float64   `yaml:"step" validate:"gt=0"`
	Values   []float64 `yaml:"values,omitempty" validate:"max=4"`
	Width    int       `yaml:"width,omitempty" validate:"omitempty,min=4,max=200"`
	Disabled bool      `yaml:"disabled,omitempty"`
}

// UnmarshalYAML accepts a single "value" as shorthand for one thumb.
func (s *SliderConfig) UnmarshalYAML(value *yaml.Node) error {
	type rawSlider SliderConfig
	temp := rawSlider(*s)
	if err := value.Decode(&temp); err != nil {
		return err
	}

	var single struct {
		Value *float64 `yaml:"value"`
	}
	if err := value.Decode(&single); err != nil {
		return err
	}
	if single.Value != nil {
		if hasYAMLKey(value, "values") {
			return fmt.Errorf("line %d: slider sets both value and values", value.Line)
		}
		temp.Values = []float64{*single.Value}
	}

	*s = SliderConfig(temp)
	return nil
}

// CalendarConfig seeds the playground calendar.
type CalendarConfig struct {
	Mode             string    `yaml:"mode,omitempty" validate:"omitempty,oneof=single range"`
	WeekStart        Weekday   `yaml:"week_start,omitempty"`
	ShowOutsideDays  *bool     `yaml:"show_outside_days,omitempty"`
	DisabledWeekdays []Weekday `yaml:"disabled_weekdays,omitempty" validate:"max=6,unique"`
}

// OutsideDays reports whether adjacent-month days are drawn. Defaults to true.
func (c CalendarConfig) OutsideDays() bool {
	return c.ShowOutsideDays == nil || *c.ShowOutsideDays
}

// Disabled returns a predicate for the configured weekdays, or nil when no
// day is disabled.
func (c CalendarConfig) Disabled() func(time.Time) bool {
	if len(c.DisabledWeekdays) == 0 {
		return nil
	}
	set := make(map[time.Weekday]struct{}, len(c.DisabledWeekdays))
	for _, wd := range c.DisabledWeekdays {
		set[time.Weekday(wd)] = struct{}{}
	}
	return func(day time.Time) bool {
		_, ok := set[day.Weekday()]
		return ok
	}
}

// PickerConfig seeds the playground pickers.
type PickerConfig struct {
	DateFormat   string `yaml:"date_format,omitempty" validate:"omitempty,date_pattern"`
	RangeFormat  string `yaml:"range_format,omitempty" validate:"omitempty,date_pattern"`
	TimeFormat   string `yaml:"time_format,omitempty" validate:"omitempty,time_format"`
	TimeInterval int    `yaml:"time_interval,omitempty" validate:"omitempty,min=1,max=720"`
	DefaultTime  string `yaml:"default_time,omitempty" validate:"omitempty,hhmm"`
	DefaultDate  string `yaml:"default_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Twelve reports whether times are shown with an AM/PM suffix.
func (p PickerConfig) Twelve() bool {
	return p.TimeFormat == "12h"
}

// Date returns DefaultDate in the local time zone, or the zero time.
func (p PickerConfig) Date() time.Time {
	if p.DefaultDate == "" {
		return time.Time{}
	}
	date, err := time.ParseInLocation(time.DateOnly, p.DefaultDate, time.Local)
	if err != nil {
		return time.Time{}
	}
	return date
}

// Weekday is a time.Weekday written by name in YAML ("monday", "mon").
type Weekday time.Weekday

func (w Weekday) String() string {
	return time.Weekday(w).String()
}

// MarshalYAML writes the lower-case day name.
func (w Weekday) MarshalYAML() (any, error) {
	return strings.ToLower(w.String()), nil
}

// UnmarshalYAML accepts full or three-letter English day names, any case.
func (w *Weekday) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	day, ok := ParseWeekday(name)
	if !ok {
		return fmt.Errorf("line %d: unknown weekday %q", value.Line, name)
	}
	*w = day
	return nil
}

// ParseWeekday resolves a day name.
func ParseWeekday(name string) (Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0, false
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		full := strings.ToLower(day.String())
		if name == full || name == full[:3] {
			return Weekday(day), true
		}
	}
	return 0, false
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		Version: CurrentVersion,
		Theme:   "light",
		Slider: SliderConfig{
			Min:    0,
			Max:    100,
			Step:   1,
			Values: []float64{25, 75},
			Width:  32,
		},
		Calendar: CalendarConfig{
			Mode: "single",
		},
		Pickers: PickerConfig{
			TimeFormat:   "24h",
			TimeInterval: 30,
		},
	}
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		if strings.EqualFold(node.Content[i].Value, key) {
			return true
		}
	}
	return false
}
