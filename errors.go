// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"errors"
	"fmt"
)

// textio distinguishes three failure planes.
//
// Mental model:
//   - Sink/source errors: the underlying io.Writer or io.Reader failed.
//     They pass through unchanged; match them the way you would match
//     errors from the sink itself.
//   - Config errors: the adapter could not be constructed (unknown
//     charset). They carry ErrUnknownCharset.
//   - Decode errors: the input bytes are invalid in the configured
//     charset. They are reported as *DecodeError and carry ErrMalformed.
//
// Notes:
//   - Decode errors are sticky: after a Writer reports one, every later
//     Write returns the same error.
//   - Counts first, semantics second: a failing call still reports how
//     many bytes it accepted before the failure.

// ErrMalformed means the input contained a byte sequence that is invalid
// in the configured charset or maps to no character. It is never returned
// directly; match it with errors.Is against a *DecodeError.
var ErrMalformed = errors.New("textio: malformed input")

// ErrUnknownCharset means a charset name could not be resolved to a
// supported encoding. It is reported at construction time only.
var ErrUnknownCharset = errors.New("textio: unknown charset")

// DecodeError reports the position and cause of a decoding failure.
//
// Offset is the number of input bytes the decoder had consumed when the
// failure was detected. For UTF-8 it is the exact start of the offending
// sequence; for other charsets the offending sequence ends at or before
// Offset.
type DecodeError struct {
	Charset string
	Offset  int64
	cause   error
}

func (e *DecodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("textio: decode %s at offset %d: %v", e.Charset, e.Offset, e.cause)
	}
	return fmt.Sprintf("textio: decode %s at offset %d: malformed or unmappable sequence", e.Charset, e.Offset)
}

// Is reports ErrMalformed so that errors.Is(err, ErrMalformed) matches any
// *DecodeError regardless of its underlying cause.
func (e *DecodeError) Is(target error) bool { return target == ErrMalformed }

// Unwrap returns the underlying decoder error, if one exists. Substituting
// decoders signal through the replacement character rather than an error,
// so Unwrap may return nil.
func (e *DecodeError) Unwrap() error { return e.cause }
