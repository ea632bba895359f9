package study

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field names the way clients send them.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateStruct runs tag validation and converts failures to a domain.ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// RecordOutcomeInput holds one correct/incorrect judgment for a card.
type RecordOutcomeInput struct {
	CardID  uuid.UUID `json:"card_id" validate:"required"`
	Correct bool      `json:"correct"`
}

// Validate checks all fields and collects all errors.
func (i *RecordOutcomeInput) Validate() error {
	return validateStruct(i)
}

// CalendarInput holds an inclusive range of day keys.
type CalendarInput struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to"   validate:"required,datetime=2006-01-02"`
}

// Validate checks all fields and collects all errors.
func (i *CalendarInput) Validate() error {
	return validateStruct(i)
}

// Range validates the input and returns its bounds as midnights in loc.
// The range may span at most maxDays days.
func (i *CalendarInput) Range(loc *time.Location, maxDays int) (time.Time, time.Time, error) {
	if err := i.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	from, err := ParseDayKey(i.From, loc)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("from", "must be a date in YYYY-MM-DD format")
	}
	to, err := ParseDayKey(i.To, loc)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("to", "must be a date in YYYY-MM-DD format")
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.NewValidationError("to", "must not be before from")
	}
	if addDays(from, maxDays).Before(addDays(to, 1)) {
		return time.Time{}, time.Time{}, domain.NewValidationError("to", fmt.Sprintf("range must not exceed %d days", maxDays))
	}

	return from, to, nil
}
