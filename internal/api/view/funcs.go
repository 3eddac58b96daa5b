package view

import (
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

var funcs = template.FuncMap{
	"date":     formatDate,
	"money":    formatMoney,
	"str":      derefString,
	"optFloat": optionalFloat,
	"optInt":   optionalInt,
}

// formatDate принимает time.Time или *time.Time, nil дает пустую строку
func formatDate(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(domain.DateFormat)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(domain.DateFormat)
	default:
		return ""
	}
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func optionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
