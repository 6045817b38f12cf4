package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	moonerrors "github.com/alexisbeaulieu97/moonui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hhmm", validateHHMM)
		_ = v.RegisterValidation("time_format", validateTimeFormat)
		_ = v.RegisterValidation("date_pattern", validateDatePattern)
		v.RegisterStructValidation(sliderStructLevel, SliderConfig{})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator with the playground rules
// registered.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig checks a playground document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return moonerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}
