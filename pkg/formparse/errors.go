package formparse

import "strings"

// FieldError ошибка конкретного поля формы
type FieldError struct {
	Field   string
	Message string
}

// Errors набор ошибок полей формы в порядке проверки
type Errors []FieldError

// Add добавляет ошибку поля
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Empty сообщает, что ошибок нет
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Err возвращает nil, если ошибок нет, иначе сам набор как error
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

// Has сообщает, есть ли ошибка для поля
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, " ")
}
