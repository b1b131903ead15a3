package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Tags reported by validations the en translations know nothing about.
const (
	tagFile              = "file"
	tagRequiredForDriver = "required_for_driver"
)

var customMessages = map[string]string{
	tagFile:              "{0} must be an existing and readable file",
	tagRequiredForDriver: "{0} is required for the {1} driver",
}

// newValidator reports errors under config keys such as database.driver rather than Go field names.
func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations() > %w", err)
	}

	validate.RegisterTagNameFunc(configKey)
	if err := validate.RegisterValidation(tagFile, isReadableFile); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterValidation(%s) > %w", tagFile, err)
	}
	validate.RegisterStructValidation(validateServerDatabase, DatabaseConfig{})

	for tag, message := range customMessages {
		if err := validate.RegisterTranslation(tag, trans, addMessage(tag, message), translateKey(tag)); err != nil {
			return nil, nil, fmt.Errorf("validate.RegisterTranslation(%s) > %w", tag, err)
		}
	}
	return validate, trans, nil
}

func configKey(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func addMessage(tag, message string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, message, true)
	}
}

// translateKey renders the full key (database.host) and the rule parameter.
func translateKey(tag string) validator.TranslationFunc {
	return func(trans ut.Translator, fe validator.FieldError) string {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		msg, err := trans.T(tag, key, fe.Param())
		if err != nil {
			return fe.Error()
		}
		return msg
	}
}

// validateServerDatabase requires connection details for the client-server drivers.
func validateServerDatabase(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(DatabaseConfig)
	if cfg.Driver != DriverMySQL && cfg.Driver != DriverPostgres {
		return
	}
	if cfg.Host == "" {
		sl.ReportError(cfg.Host, "host", "Host", tagRequiredForDriver, cfg.Driver)
	}
	if cfg.Database == "" {
		sl.ReportError(cfg.Database, "database", "Database", tagRequiredForDriver, cfg.Driver)
	}
}

func isReadableFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
