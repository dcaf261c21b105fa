package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dangerclosesec/resadmin/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Coded is implemented by every closed code list type.
type Coded interface {
	Valid() bool
	Label() string
}

// Defaulter sets every declared default on a fresh value, including boolean
// and numeric defaults that cannot be told apart from an explicit zero later.
type Defaulter interface {
	Defaults()
}

// BlankFiller replaces blank fields whose blank value is never valid with
// their declared default. The repository applies it on create.
type BlankFiller interface {
	FillBlank()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// code accepts only values declared in the field's code list
	if err := v.RegisterValidation("code", func(fl validator.FieldLevel) bool {
		c, ok := fl.Field().Interface().(Coded)
		return ok && c.Valid()
	}); err != nil {
		panic(fmt.Sprintf("registering code validation: %v", err))
	}

	return v
}

// Validate checks the field constraints of an entity value and reports every
// violation in a single *domain.ValidationError.
func Validate(entity string, value any) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating %s: %w", entity, err)
	}

	out := &domain.ValidationError{Entity: entity}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
