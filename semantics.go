// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"errors"
)

// Outcome classifies an operation result based on textio's failure planes.
//
// OutcomeOK:     success.
// OutcomeConfig: construction failed; the charset name did not resolve.
// OutcomeDecode: the input bytes are invalid in the configured charset.
// OutcomeSink:   any other error, passed through from the sink or source.
type Outcome uint8

const (
	OutcomeSink Outcome = iota
	OutcomeOK
	OutcomeConfig
	OutcomeDecode
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeConfig:
		return "Config"
	case OutcomeDecode:
		return "Decode"
	default:
		return "Sink"
	}
}

// IsDecode reports whether err was produced by decoding rather than by the
// sink or source. It returns true for *DecodeError and wrappers (via
// errors.Is).
func IsDecode(err error) bool { return errors.Is(err, ErrMalformed) }

// IsUnknownCharset reports whether err means a charset name failed to
// resolve. It returns true for ErrUnknownCharset and wrappers (via
// errors.Is).
func IsUnknownCharset(err error) bool { return errors.Is(err, ErrUnknownCharset) }

// Classify maps err to an Outcome. Use when a compact switch is preferred.
//
// Note: classification depends solely on the error value the caller passes;
// sink errors that happen to wrap this package's sentinels classify as the
// sentinel's plane.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if IsUnknownCharset(err) {
		return OutcomeConfig
	}
	if IsDecode(err) {
		return OutcomeDecode
	}
	return OutcomeSink
}
