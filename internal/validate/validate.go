package validate

import (
	"fmt"
	"strings"

	"afterschool/internal/domain"
)

// FieldError reports a single violated constraint on a candidate record.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Reason }

// Errors collects every violation found on one candidate. All checks run;
// nothing short-circuits, so callers can surface the full list at once.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

// orNil keeps the "no violations" result a plain nil error.
func (e Errors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Lesson trims the candidate's string fields in place and checks its
// acceptance rules: subject and location non-blank, price and spaces
// non-negative. Pure; never touches storage.
func Lesson(l *domain.Lesson) error {
	var errs Errors

	l.Subject = strings.TrimSpace(l.Subject)
	l.Location = strings.TrimSpace(l.Location)
	l.Description = strings.TrimSpace(l.Description)
	l.Image = strings.TrimSpace(l.Image)

	if l.Subject == "" {
		errs = append(errs, FieldError{Field: "subject", Reason: "required"})
	}
	if l.Location == "" {
		errs = append(errs, FieldError{Field: "location", Reason: "required"})
	}
	if l.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Reason: "must be >= 0"})
	}
	if l.Spaces < 0 {
		errs = append(errs, FieldError{Field: "spaces", Reason: "must be >= 0"})
	}
	return errs.orNil()
}

// Order trims and checks an order candidate and every embedded line item.
// Email is optional and only trimmed; no format check is applied.
func Order(o *domain.Order) error {
	var errs Errors

	o.Name = strings.TrimSpace(o.Name)
	o.Phone = strings.TrimSpace(o.Phone)
	o.Email = strings.TrimSpace(o.Email)

	if o.Name == "" {
		errs = append(errs, FieldError{Field: "name", Reason: "required"})
	}
	if o.Phone == "" {
		errs = append(errs, FieldError{Field: "phone", Reason: "required"})
	}
	if len(o.Items) == 0 {
		errs = append(errs, FieldError{Field: "items", Reason: "empty"})
	}
	for i, it := range o.Items {
		if it.LessonID == 0 {
			errs = append(errs, FieldError{
				Field:  fmt.Sprintf("items[%d].lessonId", i),
				Reason: "required",
			})
		}
		if it.Spaces < 1 {
			errs = append(errs, FieldError{
				Field:  fmt.Sprintf("items[%d].spaces", i),
				Reason: "must be >= 1",
			})
		}
	}
	return errs.orNil()
}
