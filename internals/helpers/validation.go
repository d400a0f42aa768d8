package helper

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// NewValidator reports fields by their json name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldErrors turns validator errors into {field: [messages]}; nil when err is not one.
func FieldErrors(err error) map[string][]string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		key := fieldKey(fe.Namespace())
		out[key] = append(out[key], fieldMessage(fe))
	}
	return out
}

// fieldKey drops the root struct and embedded type names:
// "MinorEnrollmentRequest.children[0].PersonRequest.name" → "children[0].name".
func fieldKey(ns string) string {
	parts := strings.Split(ns, ".")
	kept := parts[:0]
	for i, p := range parts {
		if i == 0 || p == "" || unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return ns
	}
	return strings.Join(kept, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid uuid"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must match " + fe.Param()
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
