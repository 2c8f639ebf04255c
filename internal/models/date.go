package models

import (
	"fmt"
	"time"
)

// DateLayout формат календарной даты, совместимый с ISO 8601 (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Date представляет календарную дату без времени в формате YYYY-MM-DD.
// Пустая строка означает "дата не задана".
type Date string

// NewDate возвращает календарную дату для t в его собственной тайм-зоне
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate проверяет строку и возвращает Date
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Date(s), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == ""
}

// Valid reports whether the date is set and well-formed.
func (d Date) Valid() bool {
	if d.IsZero() {
		return false
	}
	_, err := time.Parse(DateLayout, string(d))
	return err == nil
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, string(d), loc)
}

// AddDays returns the date shifted by n calendar days.
// Invalid dates are returned unchanged.
func (d Date) AddDays(n int) Date {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return d
	}
	return NewDate(t.AddDate(0, 0, n))
}

// Month returns the YYYY-MM prefix of the date.
func (d Date) Month() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

func (d Date) String() string {
	return string(d)
}
