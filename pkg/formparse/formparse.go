// Package formparse разбирает строковые поля HTML-форм в типизированные значения.
// Ошибки разбора возвращаются явно, значения по умолчанию не подставляются молча.
package formparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout формат дат в формах (input type=date)
const DateLayout = "2006-01-02"

var (
	// ErrEmpty возвращается для пустого обязательного поля
	ErrEmpty = errors.New("formparse: value is empty")

	// ErrInvalidFormat возвращается, когда значение не разбирается
	ErrInvalidFormat = errors.New("formparse: invalid format")

	// ErrNotPositive возвращается, когда число должно быть > 0
	ErrNotPositive = errors.New("formparse: value must be positive")

	// ErrOutOfRange возвращается, когда число вне допустимого диапазона
	ErrOutOfRange = errors.New("formparse: value out of range")
)

// Date разбирает дату YYYY-MM-DD
func Date(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmpty
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidFormat, s)
	}
	return d, nil
}

// OptionalDate разбирает дату, пустая строка дает nil
func OptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := Date(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// PositiveInt разбирает целое число > 0
func PositiveInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidFormat, s)
	}
	if n <= 0 {
		return 0, ErrNotPositive
	}
	return n, nil
}

// IntOr разбирает целое число, для пустой строки возвращает def
func IntOr(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidFormat, s)
	}
	return n, nil
}

// OptionalInt разбирает целое число, пустая строка дает nil
func OptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidFormat, s)
	}
	return &n, nil
}

// FloatOr разбирает число с плавающей точкой, для пустой строки возвращает def
func FloatOr(s string, def float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidFormat, s)
	}
	return f, nil
}

// OptionalFloat разбирает число с плавающей точкой, пустая строка дает nil
func OptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidFormat, s)
	}
	return &f, nil
}

// OptionalID разбирает идентификатор записи, пустая строка дает nil
func OptionalID(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an id", ErrInvalidFormat, s)
	}
	if id <= 0 {
		return nil, ErrNotPositive
	}
	return &id, nil
}

// ID разбирает обязательный идентификатор записи
func ID(s string) (int64, error) {
	id, err := OptionalID(s)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, ErrEmpty
	}
	return *id, nil
}
