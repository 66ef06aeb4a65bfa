package gct

import "github.com/gctlib/go-gct/internal/gcterr"

// Error is one of the closed set of GCT error codes: Success,
// InvalidSize, UnsupportedFlags, NullPointer, UnsupportedImage,
// InvalidImage. It implements the standard error interface so the
// image.Image convenience wrappers (image.go) can return ordinary Go
// errors, while the lower-level entry points below keep returning the
// closed taxonomy directly.
//
// Size-returning calls (EncodedSize, DecodedSize) encode a failure as
// the negation of the Error value, since kinds are positive integers;
// ErrorString accepts either sign.
type Error int

const (
	Success          Error = Error(gcterr.Success)
	ErrInvalidSize   Error = Error(gcterr.InvalidSize)
	ErrUnsupportedFlags Error = Error(gcterr.UnsupportedFlags)
	ErrNullPointer   Error = Error(gcterr.NullPointer)
	ErrUnsupportedImage Error = Error(gcterr.UnsupportedImage)
	ErrInvalidImage  Error = Error(gcterr.InvalidImage)
)

// Error implements the error interface. It never returns "" for a value
// produced by this package; ErrorString is the caller-facing equivalent
// that may return "" for a code outside the closed set.
func (e Error) Error() string {
	if s := gcterr.Kind(e).String(); s != "" {
		return "gct: " + s
	}
	return "gct: unknown error"
}

// ErrorString converts a GCT error code to its human-readable label.
// err may be positive or negative (as returned by a size-returning
// call); the sign is ignored. ok is false if err names no defined kind,
// mirroring the C API's "return NULL" for an out-of-range code.
func ErrorString(err Error) (s string, ok bool) {
	k := gcterr.Kind(err)
	s = k.String()
	return s, s != ""
}

// asError converts a gcterr.Kind (as returned by the internal/header and
// internal/block packages) to the public Error type.
func asError(k gcterr.Kind) Error { return Error(k) }
