// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import "io"

// Flusher is implemented by sinks that stage output and can force it out.
//
// Flush must push everything accepted so far toward the final destination
// and return any error encountered. Flushing a sink with nothing staged
// must be a no-op.
type Flusher interface {
	Flush() error
}

// CharWriter is the character-plane sink behind a Writer. It accepts
// decoded text as UTF-8 bytes.
//
// Write must follow the io.Writer contract. Flush is called by Writer after
// every batch of decoded characters. Close follows the io.Closer contract;
// Writer forwards Close without flushing or finalizing the decoder, so the
// sink owns its own lifecycle.
type CharWriter interface {
	io.Writer
	Flusher
	io.Closer
}

// AsCharWriter adapts an arbitrary io.Writer into a CharWriter.
//
// If w already implements CharWriter it is returned unchanged. Otherwise
// Flush forwards to w when w implements Flusher and is a no-op when it does
// not; Close behaves the same way with io.Closer. This makes plain
// destinations such as bytes.Buffer or strings.Builder usable as sinks.
func AsCharWriter(w io.Writer) CharWriter {
	if cw, ok := w.(CharWriter); ok {
		return cw
	}
	return charWriter{w: w}
}

type charWriter struct {
	w io.Writer
}

func (c charWriter) Write(p []byte) (int, error) { return c.w.Write(p) }

func (c charWriter) Flush() error {
	if f, ok := c.w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

func (c charWriter) Close() error {
	if cl, ok := c.w.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
