// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxConsecutiveEmptyReads bounds (0, nil) reads from the source before
// Reader gives up with io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// Reader adapts a byte source into a character source. Bytes read from the
// underlying io.Reader are decoded incrementally in the configured charset
// and served as UTF-8 text.
//
// Unlike Writer, a Reader sees the end of its input: at EOF the decode is
// finalized, so a truncated trailing sequence is reported as a *DecodeError
// rather than silently dropped. Characters decoded before an offending
// sequence are served before the error. Source errors are returned
// unchanged once the bytes read before them have been decoded and served.
//
// Reader is not safe for concurrent use.
type Reader struct {
	src      io.Reader
	dec      transform.Transformer
	charset  string
	in       []byte // staged input window in[in0:in1]
	out      []byte // decoded window out[out0:out1], served to callers
	in0, in1 int
	out0     int
	out1     int
	offset   int64 // input bytes consumed by the decoder
	rerr     error // pending source error, delivered after staged bytes decode
	err      error // terminal result once done
	scan     bool  // decoder substitutes; reserve U+FFFD as failure signal
	done     bool
}

// NewReader returns a Reader decoding UTF-8 from src with the default
// staging capacity.
func NewReader(src io.Reader) *Reader { return NewReaderSize(src, DefaultBufferSize) }

// NewReaderSize is like NewReader with an explicit staging capacity in
// bytes. A size <= 0 selects DefaultBufferSize.
func NewReaderSize(src io.Reader, size int) *Reader {
	return NewReaderEncodingSize(src, nil, size)
}

// NewReaderCharset returns a Reader decoding the named charset from src.
// The name is resolved once, here; an unresolvable name reports
// ErrUnknownCharset and no Reader is constructed.
func NewReaderCharset(src io.Reader, charset string) (*Reader, error) {
	return NewReaderCharsetSize(src, charset, DefaultBufferSize)
}

// NewReaderCharsetSize is like NewReaderCharset with an explicit staging
// capacity in bytes.
func NewReaderCharsetSize(src io.Reader, charset string, size int) (*Reader, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	return NewReaderEncodingSize(src, enc, size), nil
}

// NewReaderEncoding returns a Reader decoding enc from src. A nil enc
// selects UTF-8.
func NewReaderEncoding(src io.Reader, enc encoding.Encoding) *Reader {
	return NewReaderEncodingSize(src, enc, DefaultBufferSize)
}

// NewReaderEncodingSize is like NewReaderEncoding with an explicit staging
// capacity in bytes. A size <= 0 selects DefaultBufferSize. The character
// staging area is never smaller than utf8.UTFMax so that a single decoded
// rune always fits.
func NewReaderEncodingSize(src io.Reader, enc encoding.Encoding, size int) *Reader {
	if size <= 0 {
		size = DefaultBufferSize
	}
	dec, scan := newDecodeTransformer(enc)
	return &Reader{
		src:     src,
		dec:     dec,
		scan:    scan,
		charset: encodingName(enc),
		in:      make([]byte, size),
		out:     make([]byte, max(size, utf8.UTFMax)),
	}
}

// NewReaderBOM returns a Reader that honors a leading byte order mark:
// a UTF-8, UTF-16LE, or UTF-16BE BOM selects the matching decoding and is
// consumed; without a BOM the input decodes as UTF-8. Decode failures
// report charset UTF-8, the no-BOM fallback.
//
// The BOM-selected UTF-16 decodings substitute U+FFFD, so under
// NewReaderBOM the replacement character is reserved as the failure signal
// for the whole stream.
func NewReaderBOM(src io.Reader) *Reader {
	r := NewReaderSize(src, DefaultBufferSize)
	r.dec = unicode.BOMOverride(r.dec)
	r.scan = true
	return r
}

// Read serves decoded characters as UTF-8 bytes. It implements io.Reader.
//
// At the end of the stream Read returns io.EOF; a truncated trailing
// sequence or malformed input is reported as a *DecodeError after the
// characters decoded before it have been served. Source errors are
// returned unchanged. Read returns io.ErrShortBuffer if a single encoded
// sequence is longer than the staging capacity.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		if r.out0 == r.out1 && r.done {
			return 0, r.err
		}
		return 0, nil
	}
	for r.out0 == r.out1 {
		if r.done {
			return 0, r.err
		}
		r.fill()
	}
	n := copy(p, r.out[r.out0:r.out1])
	r.out0 += n
	return n, nil
}

// ReadRune serves the next decoded character and its width in UTF-8 bytes.
// It implements io.RuneReader.
//
// Like bufio.Reader.ReadRune, if the current position does not begin a
// valid rune, which can happen only after a Read consumed part of one,
// ReadRune consumes one byte and returns utf8.RuneError with size 1.
func (r *Reader) ReadRune() (rune, int, error) {
	for r.out0 == r.out1 {
		if r.done {
			return 0, 0, r.err
		}
		r.fill()
	}
	if c := r.out[r.out0]; c < utf8.RuneSelf {
		r.out0++
		return rune(c), 1, nil
	}
	ch, size := utf8.DecodeRune(r.out[r.out0:r.out1])
	r.out0 += size
	return ch, size, nil
}

// WriteTo decodes the rest of the stream into dst. It implements
// io.WriterTo: EOF is absorbed and every other error is returned after the
// characters decoded before it have been written.
func (r *Reader) WriteTo(dst io.Writer) (int64, error) {
	var written int64
	for {
		for r.out0 == r.out1 {
			if r.done {
				if r.err == io.EOF {
					return written, nil
				}
				return written, r.err
			}
			r.fill()
		}
		n, err := dst.Write(r.out[r.out0:r.out1])
		r.out0 += n
		written += int64(n)
		if err != nil {
			return written, err
		}
		if r.out0 != r.out1 {
			return written, io.ErrShortWrite
		}
	}
}

// fill decodes until at least one character is pending or the stream
// reaches a terminal state. It must only be entered with the decoded
// window drained.
func (r *Reader) fill() {
	emptyReads := 0
	for r.out0 == r.out1 && !r.done {
		if r.in0 != r.in1 || r.rerr != nil {
			atEOF := r.rerr == io.EOF
			nDst, nSrc, terr := r.dec.Transform(r.out, r.in[r.in0:r.in1], atEOF)
			r.in0 += nSrc
			r.offset += int64(nSrc)
			r.out0, r.out1 = 0, nDst

			if r.scan && nDst > 0 {
				if k := bytes.Index(r.out[:nDst], replacement); k >= 0 {
					r.out1 = k
					r.fail(&DecodeError{Charset: r.charset, Offset: r.offset})
					continue
				}
			}

			switch {
			case terr == nil:
				if r.in0 == r.in1 && r.rerr != nil {
					if atEOF {
						r.fail(io.EOF)
					} else {
						r.fail(r.rerr)
					}
				}
				continue
			case errors.Is(terr, transform.ErrShortDst):
				// serve the decoded window; the next fill resumes here
				continue
			case errors.Is(terr, transform.ErrShortSrc):
				switch {
				case atEOF:
					r.fail(&DecodeError{Charset: r.charset, Offset: r.offset, cause: io.ErrUnexpectedEOF})
					continue
				case r.rerr != nil:
					r.fail(r.rerr)
					continue
				case r.in1-r.in0 == len(r.in):
					r.fail(io.ErrShortBuffer)
					continue
				}
				// need more source bytes before the sequence can complete
			default:
				r.fail(&DecodeError{Charset: r.charset, Offset: r.offset, cause: terr})
				continue
			}
		}

		if r.in0 > 0 {
			r.in1 = copy(r.in, r.in[r.in0:r.in1])
			r.in0 = 0
		}
		n, err := r.src.Read(r.in[r.in1:])
		r.in1 += n
		switch {
		case err != nil:
			r.rerr = err
		case n == 0:
			emptyReads++
			if emptyReads >= maxConsecutiveEmptyReads {
				r.fail(io.ErrNoProgress)
			}
		default:
			emptyReads = 0
		}
	}
}

func (r *Reader) fail(err error) {
	r.done = true
	r.err = err
}
