package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// chestNamePattern matches chest type identifiers such as "normal" or "event_2024"
var chestNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,49}$`)

// Validator checks decoded request bodies against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce    sync.Once
	requestValidator *Validator
)

// GetValidator returns the shared request validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// report fields by their JSON names so clients see what they sent
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("chest", validateChest)
		_ = v.RegisterValidation("catalogpath", validateCatalogPath)

		requestValidator = &Validator{validate: v}
	})
	return requestValidator
}

// InitValidator builds the shared validator eagerly so the first request
// does not pay for tag parsing.
func InitValidator() {
	GetValidator()
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into a field → message map.
// Anything that is not a validation error collapses to a single "error" key.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = describeFieldError(e)
	}
	return fields
}

func describeFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "chest":
		return "Must be a lowercase chest identifier"
	case "max", "lte":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min", "gte":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "catalogpath":
		return "Contains invalid characters"
	}
	return "Invalid value"
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// validateChest accepts an empty value (the default chest) or a lowercase identifier
func validateChest(fl validator.FieldLevel) bool {
	chest := fl.Field().String()
	return chest == "" || chestNamePattern.MatchString(chest)
}

// validateCatalogPath rejects control characters, which no catalog file name needs
func validateCatalogPath(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
}
