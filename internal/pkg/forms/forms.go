package forms

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// WaitlistForm is the single-field signup form from the landing page dialog.
type WaitlistForm struct {
	Email string `form:"email" validate:"required,email"`
}

// BillingForm carries the billing page fields. Card details are validated
// for shape only and never persisted; the actual charge happens on the
// processor's hosted checkout page.
type BillingForm struct {
	Name       string `form:"name" validate:"required"`
	Email      string `form:"email" validate:"required,email"`
	CardNumber string `form:"card_number" validate:"required,cardnumber"`
	Expiry     string `form:"expiry" validate:"required,expiry"`
	CVV        string `form:"cvv" validate:"required,cvv"`
	Address    string `form:"address" validate:"required"`
	City       string `form:"city" validate:"required"`
	PostalCode string `form:"postal_code" validate:"required"`
}

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
			return cardNumberRe.MatchString(fl.Field().String())
		})
		validate.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
			return expiryRe.MatchString(fl.Field().String())
		})
		validate.RegisterValidation("cvv", func(fl validator.FieldLevel) bool {
			return cvvRe.MatchString(fl.Field().String())
		})
	})
	return validate
}

var fieldLabels = map[string]string{
	"Name":       "Name",
	"Email":      "Email",
	"CardNumber": "Card number",
	"Expiry":     "Expiry date",
	"CVV":        "CVV",
	"Address":    "Address",
	"City":       "City",
	"PostalCode": "Postal code",
}

// Validate checks a form struct and returns field-level error messages keyed
// by struct field name. An empty map means the form is valid. It never
// returns an error value: surfacing messages next to fields and blocking
// submission is the caller's job.
func Validate(form interface{}) map[string]string {
	errs := map[string]string{}

	err := getValidator().Struct(form)
	if err == nil {
		return errs
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation errors (nil pointer, unsupported type) should not
		// reach users as field messages.
		errs[""] = "Invalid form submission"
		return errs
	}

	for _, fe := range validationErrs {
		errs[fe.Field()] = messageFor(fe)
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email address"
	case "cardnumber":
		return "Card number must be 16 digits"
	case "expiry":
		return "Format: MM/YY"
	case "cvv":
		return "CVV must be 3-4 digits"
	default:
		return label + " is invalid"
	}
}
