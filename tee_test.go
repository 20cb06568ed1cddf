// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio_test

import (
	"errors"
	"io"
	"testing"

	"code.hybscloud.com/textio"
)

func TestTeeCharWriterDuplicates(t *testing.T) {
	primary, side := &sink{}, &sink{}
	tw := textio.TeeCharWriter(primary, side)

	if n, err := tw.Write([]byte("hi")); n != 2 || err != nil {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if err := tw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if primary.buf.String() != "hi" || side.buf.String() != "hi" {
		t.Fatalf("primary=%q side=%q", primary.buf.String(), side.buf.String())
	}
	if primary.flushes != 1 || side.flushes != 1 {
		t.Fatalf("flushes=%d/%d", primary.flushes, side.flushes)
	}
	if primary.closes != 1 || side.closes != 1 {
		t.Fatalf("closes=%d/%d", primary.closes, side.closes)
	}
}

func TestTeeCharWriterPrimaryError(t *testing.T) {
	boom := errors.New("boom")
	primary := &errSink{writeErr: boom}
	side := &sink{}
	tw := textio.TeeCharWriter(primary, side)

	if _, err := tw.Write([]byte("hi")); err != boom {
		t.Fatalf("want boom got %v", err)
	}
	if side.buf.Len() != 0 {
		t.Fatalf("tee saw the failed batch: %q", side.buf.String())
	}
}

func TestTeeCharWriterShortPrimary(t *testing.T) {
	primary := &shortSink{limit: 1}
	side := &sink{}
	tw := textio.TeeCharWriter(primary, side)

	if _, err := tw.Write([]byte("hi")); err != io.ErrShortWrite {
		t.Fatalf("want ErrShortWrite got %v", err)
	}
	if side.buf.Len() != 0 {
		t.Fatalf("tee saw the short batch")
	}
}

func TestTeeCharWriterTeeError(t *testing.T) {
	boom := errors.New("tee boom")
	primary := &sink{}
	side := &errSink{writeErr: boom}
	tw := textio.TeeCharWriter(primary, side)

	if _, err := tw.Write([]byte("hi")); err != boom {
		t.Fatalf("want boom got %v", err)
	}
	if primary.buf.String() != "hi" {
		t.Fatalf("primary=%q", primary.buf.String())
	}
}

func TestTeeCharWriterCloseBoth(t *testing.T) {
	boom := errors.New("close boom")
	primary := &errSink{closeErr: boom}
	side := &sink{}
	tw := textio.TeeCharWriter(primary, side)

	if err := tw.Close(); err != boom {
		t.Fatalf("want boom got %v", err)
	}
	if side.closes != 1 {
		t.Fatalf("tee not closed after primary failure")
	}
}

func TestWriterOverTee(t *testing.T) {
	primary, side := &sink{}, &sink{}
	w := textio.NewWriter(textio.TeeCharWriter(primary, side))

	if _, err := w.Write([]byte("héllo")); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if primary.buf.String() != "héllo" || side.buf.String() != "héllo" {
		t.Fatalf("primary=%q side=%q", primary.buf.String(), side.buf.String())
	}
}
