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
	"golang.org/x/text/transform"
)

// Writer adapts a character sink into a byte sink. Bytes written to it are
// decoded incrementally in the configured charset and forwarded to the
// underlying CharWriter as UTF-8 text, flushing the sink after every decode
// pass.
//
// A multi-byte sequence may arrive split across any number of writes; its
// leading bytes stay staged until the sequence completes. Malformed or
// unmappable input aborts the write with a *DecodeError after the
// characters decoded before the offending sequence have been forwarded and
// flushed. A Writer that has reported an error returns the same error from
// every later call.
//
// Writer is not safe for concurrent use.
type Writer struct {
	sink    CharWriter
	dec     transform.Transformer
	charset string
	in      []byte // staged input, in[:n] holds bytes not yet decoded
	out     []byte // decode destination, drained to the sink every pass
	n       int
	offset  int64 // input bytes consumed by the decoder
	scan    bool  // decoder substitutes; reserve U+FFFD as failure signal
	err     error // sticky
}

// NewWriter returns a Writer decoding UTF-8 into sink with the default
// staging capacity.
func NewWriter(sink CharWriter) *Writer { return NewWriterSize(sink, DefaultBufferSize) }

// NewWriterSize is like NewWriter with an explicit staging capacity in
// bytes. A size <= 0 selects DefaultBufferSize.
func NewWriterSize(sink CharWriter, size int) *Writer {
	return NewWriterEncodingSize(sink, nil, size)
}

// NewWriterCharset returns a Writer decoding the named charset into sink.
// The name is resolved once, here; an unresolvable name reports
// ErrUnknownCharset and no Writer is constructed.
func NewWriterCharset(sink CharWriter, charset string) (*Writer, error) {
	return NewWriterCharsetSize(sink, charset, DefaultBufferSize)
}

// NewWriterCharsetSize is like NewWriterCharset with an explicit staging
// capacity in bytes.
func NewWriterCharsetSize(sink CharWriter, charset string, size int) (*Writer, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	return NewWriterEncodingSize(sink, enc, size), nil
}

// NewWriterEncoding returns a Writer decoding enc into sink. A nil enc
// selects UTF-8.
func NewWriterEncoding(sink CharWriter, enc encoding.Encoding) *Writer {
	return NewWriterEncodingSize(sink, enc, DefaultBufferSize)
}

// NewWriterEncodingSize is like NewWriterEncoding with an explicit staging
// capacity in bytes. A size <= 0 selects DefaultBufferSize. The character
// staging area is never smaller than utf8.UTFMax so that a single decoded
// rune always fits.
func NewWriterEncodingSize(sink CharWriter, enc encoding.Encoding, size int) *Writer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	dec, scan := newDecodeTransformer(enc)
	return &Writer{
		sink:    sink,
		dec:     dec,
		scan:    scan,
		charset: encodingName(enc),
		in:      make([]byte, size),
		out:     make([]byte, max(size, utf8.UTFMax)),
	}
}

// Write stages p, decodes every completed sequence, and forwards the
// decoded characters to the sink, flushing it after each pass. It reports
// the number of bytes of p accepted, which on failure includes the bytes
// staged when the failure was detected.
//
// Write returns io.ErrShortBuffer if a single encoded sequence is longer
// than the staging capacity and so could never complete. Sink errors are
// returned unchanged; decode failures are reported as *DecodeError.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	written := 0
	for len(p) > 0 {
		n := copy(w.in[w.n:], p)
		w.n += n
		p = p[n:]
		written += n
		if err := w.drain(); err != nil {
			w.err = err
			return written, err
		}
	}
	return written, nil
}

// WriteByte decodes the single byte c, staging it if it does not complete a
// sequence. It implements io.ByteWriter.
func (w *Writer) WriteByte(c byte) error {
	buf := [1]byte{c}
	_, err := w.Write(buf[:])
	return err
}

// ReadFrom decodes r into the sink until EOF or an error. It implements
// io.ReaderFrom, staging source bytes directly without an intermediate
// copy. EOF is absorbed; a (0, nil) read stops the transfer; any other
// source error is returned unchanged.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	if w.err != nil {
		return 0, w.err
	}
	var written int64
	for {
		if w.n == len(w.in) {
			if err := w.drain(); err != nil {
				w.err = err
				return written, err
			}
		}
		n, rerr := r.Read(w.in[w.n:])
		if n > 0 {
			w.n += n
			written += int64(n)
			if err := w.drain(); err != nil {
				w.err = err
				return written, err
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				return written, nil
			}
			return written, rerr
		}
		if n == 0 {
			return written, nil
		}
	}
}

// Close forwards to the sink. The decoder is not finalized: staged bytes of
// an incomplete trailing sequence remain undecoded and are discarded.
func (w *Writer) Close() error { return w.sink.Close() }

// Buffered returns the number of staged bytes still waiting for the rest of
// their sequence.
func (w *Writer) Buffered() int { return w.n }

// drain runs decode passes over the staged bytes until the decoder needs
// more input, forwarding to the sink and flushing after every pass. On
// return the staged window has been compacted to the undecodable tail.
func (w *Writer) drain() error {
	pos := 0
	for {
		nDst, nSrc, terr := w.dec.Transform(w.out, w.in[pos:w.n], false)
		pos += nSrc

		flushN := nDst
		bad := -1
		if w.scan && nDst > 0 {
			if k := bytes.Index(w.out[:nDst], replacement); k >= 0 {
				bad = k
				flushN = k
			}
		}
		if flushN > 0 {
			nw, err := w.sink.Write(w.out[:flushN])
			if err != nil {
				return err
			}
			if nw < flushN {
				return io.ErrShortWrite
			}
		}
		if err := w.sink.Flush(); err != nil {
			return err
		}
		if bad >= 0 {
			return &DecodeError{Charset: w.charset, Offset: w.offset + int64(pos)}
		}

		switch {
		case terr == nil:
			w.offset += int64(pos)
			w.n = 0
			return nil
		case errors.Is(terr, transform.ErrShortDst):
			// out is free again after the flush; decode the rest
			continue
		case errors.Is(terr, transform.ErrShortSrc):
			left := w.n - pos
			if pos == 0 && left == len(w.in) {
				return io.ErrShortBuffer
			}
			copy(w.in, w.in[pos:w.n])
			w.offset += int64(pos)
			w.n = left
			return nil
		default:
			return &DecodeError{Charset: w.charset, Offset: w.offset + int64(pos), cause: terr}
		}
	}
}
