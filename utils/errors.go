package utils

import (
	"github.com/gofiber/fiber/v2"
)

type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION_ERROR"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindInvalidState ErrorKind = "INVALID_STATE"
	KindConflict     ErrorKind = "CONFLICT"
	KindStore        ErrorKind = "STORE_ERROR"
)

// AppError phân loại lỗi nghiệp vụ, handler sẽ map sang HTTP status
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func StatusFromKind(kind ErrorKind) int {
	switch kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidState:
		return fiber.StatusUnprocessableEntity
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// AppErrorResponse trả lỗi đã phân loại về client. Lỗi hệ thống không
// kèm chi tiết bên trong.
func AppErrorResponse(c *fiber.Ctx, appErr *AppError) error {
	status := StatusFromKind(appErr.Kind)
	if appErr.Kind == KindStore {
		return c.Status(status).JSON(fiber.Map{
			"message": appErr.Message,
			"kind":    appErr.Kind,
			"error":   nil,
		})
	}
	var errMsg interface{}
	if appErr.Err != nil {
		errMsg = appErr.Err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": appErr.Message,
		"kind":    appErr.Kind,
		"error":   errMsg,
	})
}
