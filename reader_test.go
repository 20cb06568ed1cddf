// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding"

	"code.hybscloud.com/textio"
)

// oneByteReader feeds the underlying reader one byte at a time.
type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) { return 0, nil }

// failAfterWriter accepts limit bytes, then reports err.
type failAfterWriter struct {
	limit int
	err   error
	data  []byte
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit-len(w.data) {
		p = p[:w.limit-len(w.data)]
		w.data = append(w.data, p...)
		return len(p), w.err
	}
	w.data = append(w.data, p...)
	return len(p), nil
}

func TestReaderBasic(t *testing.T) {
	const text = "ascii, déjà vu, 日本語, 💖"
	r := textio.NewReader(strings.NewReader(text))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if string(got) != text {
		t.Fatalf("want %q got %q", text, got)
	}
}

func TestReaderChunkySource(t *testing.T) {
	const text = "héllo, 世界 💖"
	r := textio.NewReaderSize(oneByteReader{strings.NewReader(text)}, 8)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if string(got) != text {
		t.Fatalf("want %q got %q", text, got)
	}
}

func TestReaderSmallWindow(t *testing.T) {
	text := strings.Repeat("日本語テキスト💖", 9)
	r := textio.NewReaderSize(strings.NewReader(text), 7)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if string(got) != text {
		t.Fatalf("round trip mismatch")
	}
}

func TestReaderEmpty(t *testing.T) {
	r := textio.NewReader(strings.NewReader(""))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %q", got)
	}
}

func TestReaderMalformed(t *testing.T) {
	r := textio.NewReader(strings.NewReader("ab\xFFcd"))
	got, err := io.ReadAll(r)
	var de *textio.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("want *DecodeError got %v", err)
	}
	if de.Offset != 2 {
		t.Fatalf("offset=%d", de.Offset)
	}
	if string(got) != "ab" {
		t.Fatalf("want ab got %q", got)
	}

	// terminal: the same error again, no replacement output
	buf := make([]byte, 4)
	if n, again := r.Read(buf); n != 0 || !errors.Is(again, textio.ErrMalformed) {
		t.Fatalf("n=%d err=%v", n, again)
	}
}

func TestReaderTruncatedTail(t *testing.T) {
	r := textio.NewReader(strings.NewReader("h\xC3"))
	got, err := io.ReadAll(r)
	var de *textio.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("want *DecodeError got %v", err)
	}
	if de.Offset != 1 {
		t.Fatalf("offset=%d", de.Offset)
	}
	if !errors.Is(err, encoding.ErrInvalidUTF8) {
		t.Fatalf("want ErrInvalidUTF8 cause got %v", err)
	}
	if string(got) != "h" {
		t.Fatalf("want h got %q", got)
	}
}

func TestReaderSourceError(t *testing.T) {
	boom := errors.New("src boom")
	src := &scriptedReader{steps: []struct {
		b   []byte
		err error
	}{
		{b: []byte("ok")},
		{err: boom},
	}}
	r := textio.NewReader(src)
	got, err := io.ReadAll(r)
	if err != boom {
		t.Fatalf("want boom unchanged got %v", err)
	}
	if string(got) != "ok" {
		t.Fatalf("want ok got %q", got)
	}
}

func TestReaderSourceErrorAfterPartial(t *testing.T) {
	boom := errors.New("src boom")
	src := &scriptedReader{steps: []struct {
		b   []byte
		err error
	}{
		{b: []byte("a\xC3")},
		{err: boom},
	}}
	r := textio.NewReader(src)
	got, err := io.ReadAll(r)
	if err != boom {
		t.Fatalf("want boom unchanged got %v", err)
	}
	if string(got) != "a" {
		t.Fatalf("want a got %q", got)
	}
}

func TestReaderNoProgress(t *testing.T) {
	r := textio.NewReader(zeroReader{})
	_, err := io.ReadAll(r)
	if err != io.ErrNoProgress {
		t.Fatalf("want ErrNoProgress got %v", err)
	}
}

func TestReaderShortBuffer(t *testing.T) {
	r := textio.NewReaderSize(strings.NewReader("€"), 2)
	_, err := io.ReadAll(r)
	if err != io.ErrShortBuffer {
		t.Fatalf("want ErrShortBuffer got %v", err)
	}
}

func TestReaderZeroLenRead(t *testing.T) {
	r := textio.NewReader(strings.NewReader("x"))
	if n, err := r.Read(nil); n != 0 || err != nil {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if got, err := io.ReadAll(r); err != nil || string(got) != "x" {
		t.Fatalf("got=%q err=%v", got, err)
	}
	if n, err := r.Read(nil); n != 0 || err != io.EOF {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestReaderReadRune(t *testing.T) {
	r := textio.NewReader(strings.NewReader("aé💖わ"))
	want := []struct {
		ch   rune
		size int
	}{
		{'a', 1},
		{'é', 2},
		{'💖', 4},
		{'わ', 3},
	}
	for i, w := range want {
		ch, size, err := r.ReadRune()
		if err != nil {
			t.Fatalf("rune %d: %v", i, err)
		}
		if ch != w.ch || size != w.size {
			t.Fatalf("rune %d: got %q size %d", i, ch, size)
		}
	}
	if _, _, err := r.ReadRune(); err != io.EOF {
		t.Fatalf("want EOF got %v", err)
	}
}

func TestReaderCharset(t *testing.T) {
	src := strings.NewReader("\x82\xb1\x82\xf1\x82\xc9\x82\xbf\x82\xcd")
	r, err := textio.NewReaderCharsetSize(src, "Shift_JIS", 3)
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if string(got) != "こんにちは" {
		t.Fatalf("want こんにちは got %q", got)
	}

	if _, err := textio.NewReaderCharset(src, "wingdings"); !textio.IsUnknownCharset(err) {
		t.Fatalf("want ErrUnknownCharset got %v", err)
	}
}

func TestReaderBOM(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"utf8 bom", "\xEF\xBB\xBFhi", "hi"},
		{"utf16le bom", "\xFF\xFEh\x00i\x00", "hi"},
		{"utf16be bom", "\xFE\xFF\x00h\x00i", "hi"},
		{"no bom", "plain é", "plain é"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := textio.NewReaderBOM(strings.NewReader(tt.in))
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("unexpected err %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("want %q got %q", tt.want, got)
			}
		})
	}

	t.Run("no bom malformed", func(t *testing.T) {
		r := textio.NewReaderBOM(strings.NewReader("ok\xFF"))
		got, err := io.ReadAll(r)
		if !textio.IsDecode(err) {
			t.Fatalf("want decode error got %v", err)
		}
		if string(got) != "ok" {
			t.Fatalf("want ok got %q", got)
		}
	})
}

func TestReaderWriteTo(t *testing.T) {
	const text = "héllo, 世界"

	t.Run("full transfer", func(t *testing.T) {
		r := textio.NewReader(strings.NewReader(text))
		var dst bytes.Buffer
		n, err := r.WriteTo(&dst)
		if err != nil {
			t.Fatalf("unexpected err %v", err)
		}
		if n != int64(len(text)) {
			t.Fatalf("n=%d", n)
		}
		if dst.String() != text {
			t.Fatalf("want %q got %q", text, dst.String())
		}
	})

	t.Run("dst error", func(t *testing.T) {
		boom := errors.New("dst boom")
		r := textio.NewReader(strings.NewReader(text))
		dst := &failAfterWriter{limit: 3, err: boom}
		n, err := r.WriteTo(dst)
		if err != boom {
			t.Fatalf("want boom unchanged got %v", err)
		}
		if n != 3 {
			t.Fatalf("n=%d", n)
		}
	})

	t.Run("decode error after prefix", func(t *testing.T) {
		r := textio.NewReader(strings.NewReader("ab\xFF"))
		var dst bytes.Buffer
		n, err := r.WriteTo(&dst)
		if !textio.IsDecode(err) {
			t.Fatalf("want decode error got %v", err)
		}
		if n != 2 || dst.String() != "ab" {
			t.Fatalf("n=%d dst=%q", n, dst.String())
		}
	})
}
