package config

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/moonui/internal/dateformat"
)

var (
	hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	timeFormats = map[string]struct{}{"12h": {}, "24h": {}}
)

// validateHHMM accepts 24-hour clock times such as "09:30".
func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmPattern.MatchString(fl.Field().String())
}

func validateTimeFormat(fl validator.FieldLevel) bool {
	_, ok := timeFormats[fl.Field().String()]
	return ok
}

// validateDatePattern accepts patterns the formatter can translate.
func validateDatePattern(fl validator.FieldLevel) bool {
	_, err := dateformat.Layout(fl.Field().String())
	return err == nil
}

// sliderStructLevel checks that every seeded thumb lies on the track.
func sliderStructLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(SliderConfig)
	for _, value := range s.Values {
		if value < s.Min || value > s.Max {
			sl.ReportError(s.Values, "Values", "Values", "within_range", "")
			return
		}
	}
}
