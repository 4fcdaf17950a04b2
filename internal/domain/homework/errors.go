// internal/domain/homework/errors.go
package homework

import "errors"

// Sentinel errors for every failure the polling cycle can surface.
// Callers wrap these with fmt.Errorf("%w: ...") to attach context.
var (
	// ErrEndpointUnavailable covers transport failures and non-200 replies
	// from the status API.
	ErrEndpointUnavailable = errors.New("homework status endpoint unavailable")
	// ErrResponseNotJSON is returned when the response body cannot be
	// parsed as JSON.
	ErrResponseNotJSON = errors.New("response body is not valid JSON")
	// ErrResponseNotObject is returned when the parsed response is not a
	// JSON object.
	ErrResponseNotObject = errors.New("response is not a JSON object")
	// ErrHomeworksKeyMissing is returned when the response object has no
	// "homeworks" key.
	ErrHomeworksKeyMissing = errors.New("homeworks key not found in response")
	// ErrHomeworksNotList is returned when the "homeworks" value is not a list.
	ErrHomeworksNotList = errors.New("homeworks key is not a list")
	// ErrHomeworkFieldMissing is returned when a homework record lacks a
	// required field.
	ErrHomeworkFieldMissing = errors.New("homework record is missing a required field")
	// ErrUnknownStatus is returned when a homework status has no verdict.
	ErrUnknownStatus = errors.New("unknown homework status")
)

// ErrorKind is a stable code identifying a failure class. The poller
// de-duplicates error notifications by kind rather than by message text, so
// incidental formatting differences never count as a new error.
type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindEndpointUnavailable ErrorKind = "ENDPOINT_UNAVAILABLE"
	KindResponseNotJSON     ErrorKind = "RESPONSE_NOT_JSON"
	KindResponseNotObject   ErrorKind = "RESPONSE_NOT_OBJECT"
	KindHomeworksKeyMissing ErrorKind = "HOMEWORKS_KEY_MISSING"
	KindHomeworksNotList    ErrorKind = "HOMEWORKS_NOT_LIST"
	KindFieldMissing        ErrorKind = "HOMEWORK_FIELD_MISSING"
	KindUnknownStatus       ErrorKind = "UNKNOWN_STATUS"
	KindInternal            ErrorKind = "INTERNAL"
)

// KindOf classifies err into an ErrorKind. A nil error maps to KindNone;
// anything outside the known taxonomy maps to KindInternal.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrEndpointUnavailable):
		return KindEndpointUnavailable
	case errors.Is(err, ErrResponseNotJSON):
		return KindResponseNotJSON
	case errors.Is(err, ErrResponseNotObject):
		return KindResponseNotObject
	case errors.Is(err, ErrHomeworksKeyMissing):
		return KindHomeworksKeyMissing
	case errors.Is(err, ErrHomeworksNotList):
		return KindHomeworksNotList
	case errors.Is(err, ErrHomeworkFieldMissing):
		return KindFieldMissing
	case errors.Is(err, ErrUnknownStatus):
		return KindUnknownStatus
	default:
		return KindInternal
	}
}
