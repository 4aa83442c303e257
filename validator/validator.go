package validator

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs the `validate` tags and turns the first failure into an AppError.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			return errors.NewAppError(errors.ErrCodeRequiredField, field+" is required", err)
		case "oneof":
			return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("%s must be one of: %s", field, fe.Param()), err)
		case "gte":
			return errors.NewAppError(errors.ErrCodeInvalidAmount, field+" must not be negative", err)
		default:
			return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()), err)
		}
	}
	return errors.NewAppError(errors.ErrCodeValidation, "invalid input", err)
}

// ValidateStay checks a date pair coming from a form.
func ValidateStay(start, end time.Time) error {
	if start.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "startDate is required", nil)
	}
	if end.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "endDate is required", nil)
	}
	if end.Before(start) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "endDate must not be before startDate", nil)
	}
	return nil
}

// ValidateQuote validates a price request.
func ValidateQuote(req *dto.QuoteRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	return ValidateStay(req.StartDate.Time, req.EndDate.Time)
}

// ValidateBooking validates the booking form. An empty location defaults to the airport house.
func ValidateBooking(req *dto.BookingRequest) error {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.RoomNumber = dto.FlexString(strings.TrimSpace(string(req.RoomNumber)))
	if req.Location == "" {
		req.Location = constants.LocationAirport
	}

	if err := validateStruct(req); err != nil {
		return err
	}
	if err := ValidateStay(req.StartDate.Time, req.EndDate.Time); err != nil {
		return err
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return errors.NewAppError(errors.ErrCodeInvalidPayment, "unknown payment method", nil)
	}
	_, err := ValidateRoom(req.Location, string(req.RoomNumber))
	return err
}

// ValidateLocation resolves a location id.
func ValidateLocation(location string) (models.Location, error) {
	loc, ok := models.FindLocation(location)
	if !ok {
		return models.Location{}, errors.ErrInvalidLocation
	}
	return loc, nil
}

// ValidateRoom resolves a location and checks the room belongs to it.
func ValidateRoom(location, room string) (models.Location, error) {
	loc, err := ValidateLocation(location)
	if err != nil {
		return models.Location{}, err
	}
	if !loc.HasRoom(room) {
		return models.Location{}, errors.ErrInvalidRoom
	}
	return loc, nil
}

// ValidateStatus parses a room status.
func ValidateStatus(value string) (models.RoomStatus, error) {
	status := models.RoomStatus(value)
	if !status.Valid() {
		return "", errors.ErrInvalidStatus
	}
	return status, nil
}

// ValidateDay parses a YYYY-MM-DD date.
func ValidateDay(value string) (time.Time, error) {
	t, err := time.Parse(constants.DayLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "date must be YYYY-MM-DD", err)
	}
	return t, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
