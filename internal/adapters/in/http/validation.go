package http

import (
	"errors"
	"reflect"
	"strings"

	"orderdesk/internal/generated/servers"
	"orderdesk/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const isoDate = "datetime=2006-01-02"

// RequestValidator checks request bodies before any command is built.
// The rules live here rather than in struct tags because the request types belong
// to the servers package.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	platforms := "oneof=instagram whatsapp facebook website"
	statuses := "oneof=pending in_progress completed cancelled"

	v.RegisterStructValidationMapRules(map[string]string{
		"Name": "required",
	}, servers.OrderItemInput{})

	v.RegisterStructValidationMapRules(map[string]string{
		"CustomerName": "required",
		"MobileNo":     "required",
		"Address":      "required",
		"Description":  "required",
		"Platform":     "required," + platforms,
		"OrderDate":    "required," + isoDate,
		"Deadline":     "required," + isoDate,
		"Items":        "dive",
	}, servers.NewOrder{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Platform":  "omitempty," + platforms,
		"Status":    "omitempty," + statuses,
		"OrderDate": "omitempty," + isoDate,
		"Deadline":  "omitempty," + isoDate,
		"Items":     "omitempty,dive",
	}, servers.OrderPatch{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Email":    "required,email",
		"Password": "required",
	}, servers.RegisterRequest{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Email":    "required",
		"Password": "required",
	}, servers.LoginRequest{})

	v.RegisterStructValidationMapRules(map[string]string{
		"ShopName": "omitempty,max=60",
	}, servers.ProfilePatch{})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Field failures are reported as errs values
// named by their JSON path, e.g. "items[1].name".
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}

	errList := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		switch fe.Tag() {
		case "required":
			errList = append(errList, errs.NewValueIsRequiredError(field))
		case "max":
			errList = append(errList, errs.NewValueIsOutOfRangeError(field+" length", len([]rune(toString(fe.Value()))), 0, fe.Param()))
		default:
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(field, fe))
		}
	}

	return errors.Join(errList...)
}

// fieldPath drops the struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s != nil {
			return *s
		}
	}
	return ""
}
