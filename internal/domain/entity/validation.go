package entity

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
)

// AllCategories is the category sentinel that disables category filtering
const AllCategories = "All Categories"

// Storage backends a model file locator may point at
const (
	StorageIPFS     = "ipfs"
	StorageFilecoin = "filecoin"
	StorageOcean    = "ocean"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of input and reports the first failure
// as a ValidationError for the given entity
func validateStruct(entityName string, input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errs.NewValidationError(entityName, fe.Field(), describeTag(fe))
	}

	return errs.NewValidationError(entityName, "", err.Error())
}

// validateAmountField checks a decimal money field and attaches field context
func validateAmountField(entityName, field, amount string) error {
	if _, err := ValidateAmount(amount); err != nil {
		return errs.WrapValidationError(entityName, field, err)
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
