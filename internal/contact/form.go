// Package contact validates contact form submissions and persists them.
package contact

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Form is a contact form submission.
type Form struct {
	Name    string `form:"name" json:"name" validate:"min=3"`
	Email   string `form:"email" json:"email" validate:"email"`
	Subject string `form:"subject" json:"subject" validate:"min=5"`
	Message string `form:"message" json:"message" validate:"min=10"`
}

// Message is a stored submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// FieldErrors maps a form field to its validation messages.
type FieldErrors map[string][]string

var fieldMessages = map[string]string{
	"name":    "Name must be at least 3 characters.",
	"email":   "Invalid email address.",
	"subject": "Subject must be at least 5 characters.",
	"message": "Message must be at least 10 characters.",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate returns nil when f is acceptable, otherwise the messages for each
// failing field.
func (f Form) Validate() FieldErrors {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": {err.Error()}}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := fieldMessages[field]
		if !ok {
			msg = "Invalid value."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
