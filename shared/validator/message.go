package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":      "{field} is required",
	"required_if":   "{field} is required",
	"gte":           "{field} must be greater than or equal to {param}",
	"gt":            "{field} must be greater than {param}",
	"lte":           "{field} must be less than or equal to {param}",
	"oneof":         "{field} must be one of {param}",
	"max":           "{field} must be at most {param}",
	"min":           "{field} must be at least {param}",
	"len":           "{field} must be {param} characters long",
	"numeric":       "{field} must be numeric",
	"email":         "{field} must be a valid email address",
	"url":           "{field} must be a valid url",
	"uuid":          "{field} must be a valid id",
	"latitude":      "{field} must be a valid latitude",
	"longitude":     "{field} must be a valid longitude",
	"mimetypes":     "{field} must be one of {param}",
	"maxfilesize":   "{field} must not exceed {param} MB",
	"listingimages": "{field} must contain between 3 and 7 images",
	"phmobile":      "{field} must be a valid mobile number",
	"eqfield":       "{field} must match {param}",
	"nefield":       "{field} must differ from {param}",
}

// message renders the first validation error that has a template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template)
	}

	return valErrors.Error()
}
