package aprs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLatitude  = errors.New("invalid latitude")
	ErrInvalidLongitude = errors.New("invalid longitude")
	ErrInvalidPrecision = errors.New("invalid precision")
	ErrEncode           = errors.New("encode failed")
)

// InvalidLatitudeError carries the field that could not be decoded.
type InvalidLatitudeError struct {
	Raw []byte
}

func invalidLatitude(b []byte) *InvalidLatitudeError {
	logger.Debug("rejected latitude", "raw", string(b))

	return &InvalidLatitudeError{Raw: append([]byte(nil), b...)}
}

func (e *InvalidLatitudeError) Error() string {
	return fmt.Sprintf("invalid latitude %q", e.Raw)
}

func (e *InvalidLatitudeError) Is(target error) bool {
	return target == ErrInvalidLatitude
}

// InvalidLongitudeError carries the field that could not be decoded.
type InvalidLongitudeError struct {
	Raw []byte
}

func invalidLongitude(b []byte) *InvalidLongitudeError {
	logger.Debug("rejected longitude", "raw", string(b))

	return &InvalidLongitudeError{Raw: append([]byte(nil), b...)}
}

func (e *InvalidLongitudeError) Error() string {
	return fmt.Sprintf("invalid longitude %q", e.Raw)
}

func (e *InvalidLongitudeError) Is(target error) bool {
	return target == ErrInvalidLongitude
}

// EncodeError is returned when a field could not be written.
// Field names what was being written, Err is the sink or range failure.
type EncodeError struct {
	Field string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Field, e.Err)
}

func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
