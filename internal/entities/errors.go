package entities

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ValidationError локальная ошибка ввода. До сервера такие данные не доходят.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{
		Message: "invalid request",
		Fields:  map[string]string{field: msg},
	}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) FieldErrors() map[string]string {
	return e.Fields
}

type IllegalTransitionError struct {
	Kind  string
	From  string
	To    string
	Actor Role
}

func (e *IllegalTransitionError) Error() string {
	if e.Actor != "" {
		return fmt.Sprintf("illegal %s transition %s -> %s for %s", e.Kind, e.From, e.To, e.Actor)
	}
	return fmt.Sprintf("illegal %s transition %s -> %s", e.Kind, e.From, e.To)
}

// NetworkError платформа недоступна: запрос не дошел или ответ не получен.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("platform %s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError платформа ответила не-2xx статусом или нечитаемым телом.
type ServerError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("platform %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// Is позволяет сопоставлять ответы 401/403/404 с sentinel-ошибками.
func (e *ServerError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}
