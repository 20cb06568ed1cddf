// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package textio adapts byte streams to character sinks and sources through
// incremental, strictly reporting charset decoding, while remaining fully
// compatible with Go's standard io interfaces and fast paths
// (WriterTo/ReaderFrom).
//
// Decoding semantics
//   - Report, never substitute: a byte sequence that is malformed in the
//     configured charset, or that maps to no character, aborts the operation
//     with a *DecodeError. No replacement character is forwarded in its place.
//   - Deliver before failing: characters decoded strictly before the
//     offending sequence are forwarded to the sink (and the sink flushed)
//     before the error is reported.
//   - Flush eagerly: Writer forwards decoded characters and flushes the sink
//     on every write, so a crash or abort loses at most the bytes of one
//     incomplete sequence.
//
// Errors from the sink or source are propagated unchanged; only errors
// produced by decoding itself are wrapped in *DecodeError. Classify maps any
// error from this package to a compact Outcome switch.
//
// Charsets are resolved once, at construction, via their IANA names (see
// Lookup). An unknown name fails construction with ErrUnknownCharset; writes
// and reads never fail on charset resolution.
//
// Note: Writer.ReadFrom treats a (0, nil) read as "stop now" and returns
// (written, nil) to avoid hidden spinning inside a helper.
package textio
