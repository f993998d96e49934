package domain

import "errors"

// Contract violation errors. All of these indicate programmer error at a
// call site, not a transient runtime condition; there is nothing to retry.
var (
	// ErrInvalidArgument is returned for structurally bad input such as a
	// non-positive bucket count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when an image index falls outside the
	// gallery bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPreconditionViolation is returned when thumbnails are requested but
	// the thumbnail list is empty or does not match the image list.
	ErrPreconditionViolation = errors.New("precondition violation")
)
