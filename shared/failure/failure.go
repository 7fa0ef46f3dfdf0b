package failure

import (
	"errors"
	"net/http"
)

// Reasons let callers tell failures with the same HTTP code apart, e.g. a full
// slot versus a slot that no longer exists.
const (
	ReasonNotFound          = "not_found"
	ReasonSlotFull          = "slot_full"
	ReasonSlotHasBookings   = "slot_has_bookings"
	ReasonInvalidTransition = "invalid_transition"
	ReasonValidation        = "validation"
	ReasonSameSlot          = "same_slot"
	ReasonTransient         = "transient"
	ReasonForbidden         = "forbidden"
	ReasonPaymentRequired   = "payment_required"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Reason: ReasonValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Reason: ReasonValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Reason: ReasonForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Reason: ReasonForbidden, Message: "You don't have permission to access this resource"}

// Sentinels for errors.Is matching. Constructors below return copies with a
// specific message that still match on Reason.
var (
	ErrNotFound          = &Failure{Code: http.StatusNotFound, Reason: ReasonNotFound, Message: "not found"}
	ErrSlotFull          = &Failure{Code: http.StatusConflict, Reason: ReasonSlotFull, Message: "slot is full"}
	ErrSlotHasBookings   = &Failure{Code: http.StatusConflict, Reason: ReasonSlotHasBookings, Message: "slot has bookings"}
	ErrInvalidTransition = &Failure{Code: http.StatusConflict, Reason: ReasonInvalidTransition, Message: "invalid status transition"}
	ErrValidation        = &Failure{Code: http.StatusBadRequest, Reason: ReasonValidation, Message: "validation failed"}
	ErrSameSlot          = &Failure{Code: http.StatusBadRequest, Reason: ReasonSameSlot, Message: "visit is already on this slot"}
	ErrTransient         = &Failure{Code: http.StatusServiceUnavailable, Reason: ReasonTransient, Message: "temporary conflict, retry the request"}
	ErrPaymentRequired   = &Failure{Code: http.StatusPaymentRequired, Reason: ReasonPaymentRequired, Message: "payment confirmation required"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Is reports whether target is a Failure with the same reason.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	if e == other {
		return true
	}

	return e.Reason != "" && e.Reason == other.Reason
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Reason:  ReasonValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonValidation,
		Message: msg,
	}
}

// Validation is an alias of BadRequestFromString used by the scheduling core.
func Validation(msg string) error {
	return BadRequestFromString(msg)
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Reason:  ReasonNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Reason:  ReasonForbidden,
		Message: msg,
	}
}

// SlotFull is returned when a slot's booked count has reached its capacity.
func SlotFull(msg string) error {
	return &Failure{Code: http.StatusConflict, Reason: ReasonSlotFull, Message: msg}
}

func SlotHasBookings(msg string) error {
	return &Failure{Code: http.StatusConflict, Reason: ReasonSlotHasBookings, Message: msg}
}

func InvalidTransition(msg string) error {
	return &Failure{Code: http.StatusConflict, Reason: ReasonInvalidTransition, Message: msg}
}

func SameSlot(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Reason: ReasonSameSlot, Message: msg}
}

func PaymentRequired(msg string) error {
	return &Failure{Code: http.StatusPaymentRequired, Reason: ReasonPaymentRequired, Message: msg}
}

// Transient marks store contention that is safe to retry.
func Transient(err error) error {
	msg := ErrTransient.Message
	if err != nil {
		msg = err.Error()
	}

	return &Failure{Code: http.StatusServiceUnavailable, Reason: ReasonTransient, Message: msg}
}

// IsTransient reports whether err (or anything it wraps) is a transient failure.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the reason of a wrapped Failure, or an empty string.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}
