package validator

import (
	"dormy/shared/base64"
	"dormy/shared/constant"
	"dormy/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	MinListingImages = 3
	MaxListingImages = 7
)

var (
	validate = newValidate()

	phMobilePattern = regexp.MustCompile(`^(\+639|09)\d{9}$`)
)

// SelfValidator is checked by the `self` tag for rules spanning several fields.
type SelfValidator interface {
	Validate() error
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	rules := map[string]val.Func{
		"self":          selfValidation,
		"empty":         func(fl val.FieldLevel) bool { return fl.Field().IsZero() },
		"mimetypes":     mimetypeValidation,
		"maxfilesize":   fileSizeValidation,
		"listingimages": listingImagesValidation,
		"phmobile":      func(fl val.FieldLevel) bool { return phMobilePattern.MatchString(fl.Field().String()) },
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registering %s validation: %v", tag, err))
		}
	}

	return v
}

func selfValidation(fl val.FieldLevel) bool {
	if sv, ok := fl.Field().Interface().(SelfValidator); ok {
		return sv.Validate() == nil
	}

	if fl.Field().CanAddr() {
		if sv, ok := fl.Field().Addr().Interface().(SelfValidator); ok {
			return sv.Validate() == nil
		}
	}

	return false
}

func mimetypeValidation(fl val.FieldLevel) bool {
	var contentType string

	switch v := fl.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = v.Header.Get(constant.RequestHeaderContentType)
	case string:
		contentType = base64.GetContentType(v)
	}

	if contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(fl.Param()), contentType)
}

func fileSizeValidation(fl val.FieldLevel) bool {
	var size int64

	switch v := fl.Field().Interface().(type) {
	case multipart.FileHeader:
		size = v.Size
	case string:
		size = int64(len(v))
	}

	maxMB, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}

	return float64(size) <= maxMB*1024*1024
}

// listingImagesValidation requires between MinListingImages and
// MaxListingImages non-blank entries.
func listingImagesValidation(fl val.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.String {
		return false
	}

	if field.Len() < MinListingImages || field.Len() > MaxListingImages {
		return false
	}

	for i := range field.Len() {
		if strings.TrimSpace(field.Index(i).String()) == "" {
			return false
		}
	}

	return true
}

// Validate decodes a JSON body into data and validates it.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	if sv, ok := any(data).(SelfValidator); ok {
		if err := sv.Validate(); err != nil {
			return failure.BadRequest(err) //nolint:wrapcheck
		}
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
