// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import "io"

// TeeCharWriter returns a CharWriter that duplicates a character stream to
// primary and tee. Use it to mirror decoded text into a capture buffer or
// an audit log while it flows to its destination.
//
// Write goes to primary first: an error or short count from primary is
// returned immediately and tee never sees that batch. If writing to tee
// fails or is short, the error (or io.ErrShortWrite) is returned. Flush and
// Close are delivered to both sinks even when the first one fails; the
// first error wins.
func TeeCharWriter(primary, tee CharWriter) CharWriter {
	return teeCharWriter{w: primary, tee: tee}
}

type teeCharWriter struct {
	w   CharWriter
	tee CharWriter
}

func (t teeCharWriter) Write(p []byte) (n int, err error) {
	n, err = t.w.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	n2, err2 := t.tee.Write(p)
	if err2 != nil {
		return n2, err2
	}
	if n2 != len(p) {
		return n2, io.ErrShortWrite
	}
	return len(p), nil
}

func (t teeCharWriter) Flush() error {
	err := t.w.Flush()
	if ferr := t.tee.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (t teeCharWriter) Close() error {
	err := t.w.Close()
	if cerr := t.tee.Close(); err == nil {
		err = cerr
	}
	return err
}
