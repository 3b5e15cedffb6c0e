package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"article-api/internal/lib/api/messages"
)

// Validator wraps the go-playground validator and reports failures as message codes.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	// Report json field names, they are what clients send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidationError lists the message codes of all failed rules in field order.
type ValidationError struct {
	Codes []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Codes, ", ")
}

// Messages resolves the codes through the message catalog.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Codes))
	for _, c := range e.Codes {
		msgs = append(msgs, messages.Get(c))
	}
	return msgs
}

// Struct validates s. Rule failures are returned as *ValidationError.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	codes := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		codes = append(codes, code(fe))
	}

	return &ValidationError{Codes: codes}
}

func code(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "not.blank." + fe.Field()
	case "max":
		return "size.exceed." + fe.Field()
	case "required":
		return "not.null." + fe.Field()
	default:
		return fe.Tag() + "." + fe.Field()
	}
}
