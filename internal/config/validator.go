package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/opmodel/create-vue/internal/eslint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks cfg and returns every problem found, or nil.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.StyleGuide != "" {
		if _, err := eslint.ParseStyleGuide(cfg.StyleGuide); err != nil {
			errs = append(errs, ValidationError{
				Field:   "styleGuide",
				Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(eslint.StyleGuideNames(), ", "), cfg.StyleGuide),
			})
		}
	}

	if cfg.TemplateDir != "" {
		dir, err := ExpandPath(cfg.TemplateDir)
		if err != nil {
			errs = append(errs, ValidationError{Field: "templateDir", Message: err.Error()})
		} else if info, err := os.Stat(dir); err != nil {
			errs = append(errs, ValidationError{Field: "templateDir", Message: fmt.Sprintf("cannot access %s", dir)})
		} else if !info.IsDir() {
			errs = append(errs, ValidationError{Field: "templateDir", Message: fmt.Sprintf("%s is not a directory", dir)})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
