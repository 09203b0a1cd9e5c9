package form

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// fieldOrder is the on-screen order; the first invalid field in this order is
// the one reported to the user.
var fieldOrder = []string{"name", "email", "mobile", "city", "eventType", "otherEvent", "message"}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("mobile", validateMobile) //nolint:errcheck
}

// validateMobile accepts a 10-digit Indian mobile number starting 6-9, with an
// optional +91 or 0 prefix. Spaces and dashes are ignored.
func validateMobile(fl validator.FieldLevel) bool {
	n := strings.NewReplacer(" ", "", "-", "").Replace(fl.Field().String())
	switch {
	case strings.HasPrefix(n, "+91"):
		n = n[3:]
	case len(n) == 11 && strings.HasPrefix(n, "0"):
		n = n[1:]
	}
	if len(n) != 10 || n[0] < '6' || n[0] > '9' {
		return false
	}
	for i := 0; i < len(n); i++ {
		if n[i] < '0' || n[i] > '9' {
			return false
		}
	}
	return true
}

// FieldProblem is one failed rule on one field.
type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every problem found; Field is the first invalid
// field in form order.
type ValidationError struct {
	Field    string
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Message)
	}
	return strings.Join(msgs, "; ")
}

// validateEnquiry runs the struct rules plus the toggle-dependent rule for
// otherEvent. It returns nil or a *ValidationError.
func validateEnquiry(enq Enquiry, otherRequired bool) error {
	byField := map[string][]string{}

	if err := validate.Struct(enq); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range verrs {
			byField[fe.Field()] = append(byField[fe.Field()], formatFieldError(fe))
		}
	}
	if otherRequired && enq.OtherEvent == "" {
		byField["otherEvent"] = append(byField["otherEvent"], "otherEvent is required")
	}
	if len(byField) == 0 {
		return nil
	}

	verr := &ValidationError{}
	for _, field := range fieldOrder {
		msgs, ok := byField[field]
		if !ok {
			continue
		}
		if verr.Field == "" {
			verr.Field = field
		}
		for _, m := range msgs {
			verr.Problems = append(verr.Problems, FieldProblem{Field: field, Message: m})
		}
	}
	return verr
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "mobile":
		return fmt.Sprintf("%s must be a valid 10-digit mobile number", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
