package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"luna/shared/constant"
	"luna/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// Refiner is implemented by requests carrying cross-field rules. Refine returns
// messages keyed by the JSON field the violation is attached to.
type Refiner interface {
	Refine() map[string][]string
}

// Normalizer is implemented by requests that tidy their input, such as trimming
// whitespace, before the rules run.
type Normalizer interface {
	Normalize()
}

// Messenger lets a request override the default message of a rule, keyed by
// "<json field>.<tag>".
type Messenger interface {
	ValidationMessages() map[string]string
}

const bytesPerMB = 1 << 20

func uploadedFile(field val.FieldLevel) (multipart.FileHeader, bool) {
	file, ok := field.Field().Interface().(multipart.FileHeader)

	return file, ok
}

// validateMimetypes checks the declared content type of an upload against the
// space separated list in the tag parameter.
func validateMimetypes(field val.FieldLevel) bool {
	file, ok := uploadedFile(field)
	if !ok {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), file.Header.Get(constant.RequestHeaderContentType))
}

// validateMaxFileSize caps an upload at the tag parameter in megabytes.
func validateMaxFileSize(field val.FieldLevel) bool {
	file, ok := uploadedFile(field)
	if !ok {
		return false
	}

	maxMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(file.Size) <= maxMB*bytesPerMB
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("expiry", func(fl val.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("digits", func(fl val.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", validateMimetypes)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", validateMaxFileSize)
	if err != nil {
		panic(err)
	}
}

// IsExpiry reports whether value is a card expiry in MM/YY form.
func IsExpiry(value string) bool {
	return expiryPattern.MatchString(value)
}

// IsDigits reports whether value is a non-empty run of ASCII digits.
func IsDigits(value string) bool {
	return digitsPattern.MatchString(value)
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct runs the tag rules and then the cross-field rules of data. Every
// violation is reported under its JSON field name; the error message is the first one found.
func ValidateStruct[T any](data *T) error {
	if normalizer, ok := any(data).(Normalizer); ok {
		normalizer.Normalize()
	}

	fields := map[string][]string{}
	first := ""

	add := func(field, msg string) {
		if first == "" {
			first = msg
		}

		fields[field] = append(fields[field], msg)
	}

	if err := validate.Struct(data); err != nil {
		var valErrors val.ValidationErrors
		if !errors.As(err, &valErrors) {
			return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
		}

		custom := map[string]string{}
		if messenger, ok := any(data).(Messenger); ok {
			custom = messenger.ValidationMessages()
		}

		for _, valErr := range valErrors {
			add(fieldPath(valErr), fieldMessage(valErr, custom))
		}
	}

	if refiner, ok := any(data).(Refiner); ok {
		refined := refiner.Refine()

		for _, field := range slices.Sorted(maps.Keys(refined)) {
			for _, msg := range refined[field] {
				add(field, msg)
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}

	return failure.Validation(first, fields) //nolint:wrapcheck
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
