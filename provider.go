package econfig

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/econfig/config"
)

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that decodes the mandatory section at path into target,
// sets defaults, and validates it. An empty path decodes the whole document.
//
// A missing section yields a *LookupError; decoding and validation failures
// yield a *SettingError located at the section.
func Provider[T any](target *T, path string) func(*config.Document) (*T, error) {
	return func(doc *config.Document) (*T, error) {
		setting, err := Lookup(doc, path)
		if err != nil {
			return nil, err
		}

		err = config.Decode(setting, target)
		if err != nil {
			return nil, sectionError(setting, fmt.Errorf("decoding error: %w", err))
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path), slog.String("file", setting.SourceFile()))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, sectionError(setting, fmt.Errorf("validating error: %w", err))
			}
		}

		return target, nil
	}
}

func sectionError(setting *config.Setting, err error) *SettingError {
	return &SettingError{
		File: setting.SourceFile(),
		Line: setting.SourceLine(),
		Path: setting.Path(),
		Err:  err,
	}
}
