// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultBufferSize is the staging capacity used by constructors when the
// caller passes a size <= 0.
const DefaultBufferSize = 16 << 10

// replacement is the UTF-8 encoding of U+FFFD. Substituting decoders emit
// it for input they cannot represent; the decode loops treat it as the
// failure signal.
var replacement = []byte("�")

// Lookup resolves an IANA charset name or alias to its encoding. Matching
// is case-insensitive and ignores surrounding space.
//
// Names that are registered but carry no usable implementation resolve to
// ErrUnknownCharset, the same as names that are not registered at all.
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return enc, nil
}

// newDecodeTransformer selects the transformer decoding enc to UTF-8 and
// reports whether its output must be scanned for the replacement character.
//
// UTF-8 input is validated rather than decoded: the validator reports the
// exact offset of the first invalid byte and passes a U+FFFD already
// present in the source through as data. Every other encoding decodes
// through a transformer that substitutes U+FFFD instead of failing, so for
// those the replacement character is reserved as the failure signal and a
// source U+FFFD is reported as malformed too.
func newDecodeTransformer(enc encoding.Encoding) (transform.Transformer, bool) {
	if enc == nil || enc == unicode.UTF8 {
		return encoding.UTF8Validator, false
	}
	return enc.NewDecoder(), true
}

// encodingName resolves a display name for error reporting.
func encodingName(enc encoding.Encoding) string {
	if enc == nil || enc == unicode.UTF8 {
		return "UTF-8"
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil {
		return name
	}
	return fmt.Sprintf("%v", enc)
}
