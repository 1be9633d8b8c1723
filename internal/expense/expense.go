package expense

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout           = "2006-01-02"
	MaxDescriptionLength = 120
)

// Expense is a single recorded transaction. Amount is always positive.
type Expense struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"createdAt"`
}

// FormData carries user input for creating or updating an expense.
// Amount is kept as typed so it can be validated before parsing.
type FormData struct {
	Date        string
	Amount      string
	Category    Category
	Description string
}

var ErrInvalidAmount = errors.New("amount must be a number greater than zero")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseAmount converts a decimal string into a positive amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Validate applies the form rules: date required and not after today,
// amount numeric and positive, category known, description non-empty
// and at most 120 characters once trimmed.
func (f FormData) Validate(now time.Time) []*ValidationError {
	var errs []*ValidationError

	if strings.TrimSpace(f.Date) == "" {
		errs = append(errs, &ValidationError{Field: "date", Message: "date is required"})
	} else if d, err := time.ParseInLocation(DateLayout, f.Date, now.Location()); err != nil {
		errs = append(errs, &ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	} else if d.After(now) {
		errs = append(errs, &ValidationError{Field: "date", Message: "date cannot be in the future"})
	}

	if _, err := ParseAmount(f.Amount); err != nil {
		errs = append(errs, &ValidationError{Field: "amount", Message: ErrInvalidAmount.Error()})
	}

	if !f.Category.Valid() {
		errs = append(errs, &ValidationError{Field: "category", Message: "category is required"})
	}

	description := strings.TrimSpace(f.Description)
	switch {
	case description == "":
		errs = append(errs, &ValidationError{Field: "description", Message: "description is required"})
	case len([]rune(description)) > MaxDescriptionLength:
		errs = append(errs, &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("description must be %d characters or less", MaxDescriptionLength),
		})
	}

	return errs
}

// Decimal returns the amount as a decimal for exact arithmetic.
func (e Expense) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(e.Amount)
}
