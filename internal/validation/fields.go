// Package validation checks and coerces raw form input.
//
// Text fields are required and trimmed. Numeric fields follow the lenient
// form rules: blank or unparseable input becomes 0, while ranged fields
// (credits, grades) are rejected with a message.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iudanet/lifedash/internal/models"
)

var (
	// ErrRequired возвращается для пустого обязательного поля
	ErrRequired = errors.New("field is required")
	// ErrOutOfRange возвращается, когда число вне допустимого диапазона
	ErrOutOfRange = errors.New("value out of range")
	// ErrNegative возвращается для отрицательной суммы
	ErrNegative = errors.New("value must not be negative")
)

// RequireText trims value and fails when nothing is left.
func RequireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%s: %w", field, ErrRequired)
	}
	return v, nil
}

// ValidateCFU checks that credits are within 1..30.
func ValidateCFU(cfu int) error {
	if cfu < models.MinCFU || cfu > models.MaxCFU {
		return fmt.Errorf("cfu must be between %d and %d: %w", models.MinCFU, models.MaxCFU, ErrOutOfRange)
	}
	return nil
}

// ParseCFU parses and validates a credits field.
func ParseCFU(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("cfu must be a whole number: %w", ErrOutOfRange)
	}
	if err := ValidateCFU(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateGrade checks that a grade is within 18..31 (31 = 30 cum laude).
func ValidateGrade(grade int) error {
	if grade < models.MinGrade || grade > models.MaxGrade {
		return fmt.Errorf("grade must be between %d and %d: %w", models.MinGrade, models.MaxGrade, ErrOutOfRange)
	}
	return nil
}

// ParseGrade parses an optional grade. Blank input means "no grade".
func ParseGrade(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("grade must be a whole number: %w", ErrOutOfRange)
	}
	if err := ValidateGrade(n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ParseNumber coerces s to a finite float. Anything unparseable yields 0.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseAmount coerces s to a money amount. Blank or unparseable input yields 0;
// a negative amount is rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, nil
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %s: %w", d, ErrNegative)
	}
	return d, nil
}

// ParseOptionalDate accepts a blank string (no date) or YYYY-MM-DD.
func ParseOptionalDate(s string) (models.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	return models.ParseDate(s)
}
