package domain

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is сравнивает ошибки по коду, чтобы работал errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeUnavailable      = "UNAVAILABLE"
)

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrMethodNotAllowed - маршрут есть, но метод не поддерживается
	ErrMethodNotAllowed = &DomainError{
		Code:    CodeMethodNotAllowed,
		Message: "method not allowed",
	}

	// ErrUnavailable - база данных недоступна
	ErrUnavailable = &DomainError{
		Code:    CodeUnavailable,
		Message: "database is unavailable",
	}
)
