package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of AppError.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"

	// Board errors
	ErrCodeInvalidLocation ErrorCode = "INVALID_LOCATION"
	ErrCodeInvalidRoom     ErrorCode = "INVALID_ROOM"
	ErrCodeInvalidStatus   ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidField    ErrorCode = "INVALID_FIELD"

	// Booking errors
	ErrCodeBookingNotFound      ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeInvalidPayment       ErrorCode = "INVALID_PAYMENT_METHOD"
	ErrCodeInvalidAmount        ErrorCode = "INVALID_AMOUNT"
	ErrCodeConfirmationRequired ErrorCode = "CONFIRMATION_REQUIRED"
	ErrCodeMonthOutOfRange      ErrorCode = "MONTH_OUT_OF_RANGE"

	// Storage errors
	ErrCodeStoreLoad ErrorCode = "STORE_LOAD"
	ErrCodeStoreSave ErrorCode = "STORE_SAVE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
)

// AppError is an error that carries a code and a user-facing message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError extracts the AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	ErrBookingNotFound      = NewAppError(ErrCodeBookingNotFound, "booking not found", nil)
	ErrConfirmationRequired = NewAppError(ErrCodeConfirmationRequired, "deleting a booking must be confirmed", nil)
	ErrInvalidLocation      = NewAppError(ErrCodeInvalidLocation, "unknown location", nil)
	ErrInvalidRoom          = NewAppError(ErrCodeInvalidRoom, "unknown room for location", nil)
	ErrInvalidStatus        = NewAppError(ErrCodeInvalidStatus, "unknown room status", nil)
	ErrInvalidField         = NewAppError(ErrCodeInvalidField, "unknown cell field", nil)
	ErrMonthOutOfRange      = NewAppError(ErrCodeMonthOutOfRange, "month is before the first bookable month", nil)
	ErrStayTooLong          = NewAppError(ErrCodeInvalidDate, "occupiedUntil is more than a year after the date", nil)
)
