// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

// CheckedCharWriter returns a CharWriter whose errors are mapped through
// check before being returned. check receives only non-nil errors and its
// result replaces the original; counts are reported unchanged.
//
// A typical check wraps foreign errors into a caller's domain error exactly
// once, returning err unchanged when it already matches. A nil check
// returns sink unchanged.
func CheckedCharWriter(sink CharWriter, check func(error) error) CharWriter {
	if check == nil {
		return sink
	}
	return checkedCharWriter{sink: sink, check: check}
}

type checkedCharWriter struct {
	sink  CharWriter
	check func(error) error
}

func (c checkedCharWriter) Write(p []byte) (int, error) {
	n, err := c.sink.Write(p)
	if err != nil {
		err = c.check(err)
	}
	return n, err
}

func (c checkedCharWriter) Flush() error {
	if err := c.sink.Flush(); err != nil {
		return c.check(err)
	}
	return nil
}

func (c checkedCharWriter) Close() error {
	if err := c.sink.Close(); err != nil {
		return c.check(err)
	}
	return nil
}
