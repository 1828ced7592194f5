// conf/validate.go

package conf

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %s", strings.Join(ve.Errors, "; "))
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateWindSettings(&settings.Wind); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateOutputSettings(&settings.Output); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// validateWindSettings validates the physical inputs of the wind table
func validateWindSettings(settings *WindConfig) error {
	var errs []string

	switch {
	case math.IsNaN(settings.FinalTime):
		errs = append(errs, "final time t_f is not set")
	case settings.FinalTime <= 0:
		errs = append(errs, fmt.Sprintf("final time t_f must be positive, got %g", settings.FinalTime))
	}

	switch {
	case math.IsNaN(settings.EjectionTime):
		errs = append(errs, "ejection time scale t_ej is not set")
	case settings.EjectionTime < 0:
		errs = append(errs, fmt.Sprintf("ejection time scale t_ej must not be negative, got %g", settings.EjectionTime))
	}

	switch {
	case math.IsNaN(settings.EjectedMass):
		errs = append(errs, "ejected mass M_ej is not set")
	case settings.EjectedMass < 0:
		errs = append(errs, fmt.Sprintf("ejected mass M_ej must not be negative, got %g", settings.EjectedMass))
	}

	switch {
	case math.IsNaN(settings.Velocity):
		errs = append(errs, "ejection velocity v_ej is not set")
	case settings.Velocity < 0:
		errs = append(errs, fmt.Sprintf("ejection velocity v_ej must not be negative, got %g", settings.Velocity))
	}

	if settings.Steps < 2 {
		errs = append(errs, fmt.Sprintf("at least 2 time samples are required, got %d", settings.Steps))
	}

	if len(errs) > 0 {
		return fmt.Errorf("wind settings errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// validateOutputSettings validates the output file locations
func validateOutputSettings(settings *OutputConfig) error {
	var errs []string

	if settings.TablePath == "" {
		errs = append(errs, "wind table output path must not be empty")
	}
	if settings.PlotPath == "" {
		errs = append(errs, "plot output path must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("output settings errors: %s", strings.Join(errs, "; "))
	}
	return nil
}
