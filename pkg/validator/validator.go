package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"plumbing_estimator/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagSupplier validates a supplier id against the built-in suppliers.
const TagSupplier = "supplier"

var registerOnce sync.Once

// RegisterGin installs the custom tags and json field naming on gin's
// binding validator. It is safe to call more than once.
func RegisterGin() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
			return
		}
		err = Register(v)
	})
	return err
}

// Register adds the project's tags to v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v.RegisterValidation(TagSupplier, validSupplier)
}

func validSupplier(fl validator.FieldLevel) bool {
	id := entities.SupplierID(strings.TrimSpace(fl.Field().String()))
	for _, s := range entities.DefaultSuppliers() {
		if s.ID == id {
			return true
		}
	}
	return false
}

// FieldErrors converts validator.ValidationErrors into field -> message.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, e := range ve {
		out[e.Field()] = formatFieldError(e)
	}
	return out
}

// Describe renders FieldErrors as a single stable message.
func Describe(err error) string {
	fields := FieldErrors(err)
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	case TagSupplier:
		return "Unknown supplier"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}
