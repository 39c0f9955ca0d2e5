package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/secinspect/internal/common"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("reportformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "json", "yaml":
			return true
		default:
			return false
		}
	})

	// A file extension starts with a dot and contains no path separator.
	_ = validate.RegisterValidation("extension", func(fl validator.FieldLevel) bool {
		ext := fl.Field().String()
		return len(ext) > 1 && strings.HasPrefix(ext, ".") && !strings.ContainsAny(ext, `/\`)
	})

	return validate
}

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return common.NewConfigurationError("", "", "config is nil")
	}

	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return common.WrapError(err, "configuration validation error")
	}

	var collector common.ErrorCollector
	for _, e := range errs {
		section, field := splitNamespace(e.StructNamespace())
		reason := fmt.Sprintf("rule '%s'", e.Tag())
		if e.Param() != "" {
			reason += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			reason += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		collector.Add(common.NewConfigurationError(section, field, reason))
	}
	return collector.Error()
}

// splitNamespace turns "GlobalConfig.ScanConfig.MaxFiles" into ("ScanConfig", "MaxFiles").
func splitNamespace(ns string) (string, string) {
	parts := strings.Split(ns, ".")
	if len(parts) > 0 && parts[0] == "GlobalConfig" {
		parts = parts[1:]
	}
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return "", parts[0]
	default:
		return parts[0], strings.Join(parts[1:], ".")
	}
}
