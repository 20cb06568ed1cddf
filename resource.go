// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"errors"
	"io"
	"io/fs"

	"golang.org/x/text/encoding"
)

// OpenText opens name in fsys and returns a ReadCloser serving its content
// decoded from the named charset as UTF-8 text.
//
// The charset resolves first: an unresolvable name reports
// ErrUnknownCharset before fsys is touched. Open errors pass through
// unchanged. Closing the returned ReadCloser closes the underlying file.
func OpenText(fsys fs.FS, name, charset string) (io.ReadCloser, error) {
	return OpenTextFallback(fsys, name, charset, nil)
}

// OpenTextFallback is like OpenText but consults fallback when name does
// not exist in fsys. fallback receives the name and supplies a replacement
// source, which is closed on Close when it implements io.Closer; a
// fallback error is returned unchanged. With a nil fallback, or for open
// errors other than fs.ErrNotExist, the error from fsys goes to the
// caller untouched.
func OpenTextFallback(fsys fs.FS, name, charset string, fallback func(name string) (io.Reader, error)) (io.ReadCloser, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	f, err := fsys.Open(name)
	if err != nil {
		if fallback == nil || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		alt, ferr := fallback(name)
		if ferr != nil {
			return nil, ferr
		}
		return newTextFile(alt, enc), nil
	}
	return newTextFile(f, enc), nil
}

// textFile pairs a decoding Reader with the closer of its source.
type textFile struct {
	*Reader
	c io.Closer
}

func newTextFile(src io.Reader, enc encoding.Encoding) *textFile {
	tf := &textFile{Reader: NewReaderEncoding(src, enc)}
	if c, ok := src.(io.Closer); ok {
		tf.c = c
	}
	return tf
}

func (t *textFile) Close() error {
	if t.c == nil {
		return nil
	}
	return t.c.Close()
}
