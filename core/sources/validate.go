package sources

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so errors read like the
// payload the source sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRecords checks every record against its validate tags. The first
// failing record is reported as ErrMalformedPayload.
func ValidateRecords[T any](source, endpoint string, records []T) error {
	for i := range records {
		err := validate.Struct(records[i])
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return Malformed(source, endpoint, "record %d: %v", i, err)
		}
		fe := verrs[0]
		if fe.Tag() == "required" {
			return Malformed(source, endpoint, "record %d: missing %s", i, fieldPath(fe))
		}
		return Malformed(source, endpoint, "record %d: %s failed %s", i, fieldPath(fe), fe.Tag())
	}
	return nil
}

// fieldPath drops the struct name from the namespace, e.g.
// "Student.enrollments[0].class_id" becomes "enrollments[0].class_id".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}
