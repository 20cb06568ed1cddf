// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/transform"
)

// Decode streams src through a decode of the named charset into dst and
// reports the number of UTF-8 bytes written.
//
// It is the streaming form of DecodeBytes: characters decoded before a
// failure are written to dst before the error is returned, source and dst
// errors pass through unchanged, and an unresolvable charset name fails
// before any byte is read.
func Decode(dst io.Writer, src io.Reader, charset string) (int64, error) {
	r, err := NewReaderCharset(src, charset)
	if err != nil {
		return 0, err
	}
	return r.WriteTo(dst)
}

// DecodeBytes decodes b in the named charset and returns the UTF-8 text.
//
// On a decode failure it returns the characters decoded before the
// offending sequence together with a *DecodeError.
func DecodeBytes(b []byte, charset string) ([]byte, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	dec, scan := newDecodeTransformer(enc)
	out, n, terr := transform.Bytes(dec, b)
	if terr != nil {
		return out, &DecodeError{Charset: encodingName(enc), Offset: int64(n), cause: terr}
	}
	if scan {
		if k := bytes.Index(out, replacement); k >= 0 {
			return out[:k], &DecodeError{Charset: encodingName(enc), Offset: int64(n)}
		}
	}
	return out, nil
}

// DecodeString decodes s, taken as raw bytes in the named charset, and
// returns the UTF-8 text. Failure semantics match DecodeBytes.
func DecodeString(s string, charset string) (string, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return "", err
	}
	dec, scan := newDecodeTransformer(enc)
	out, n, terr := transform.String(dec, s)
	if terr != nil {
		return out, &DecodeError{Charset: encodingName(enc), Offset: int64(n), cause: terr}
	}
	if scan {
		if k := strings.Index(out, "�"); k >= 0 {
			return out[:k], &DecodeError{Charset: encodingName(enc), Offset: int64(n)}
		}
	}
	return out, nil
}
