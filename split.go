// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"iter"
	"regexp"
)

// Split divides s around matches of re. The limit controls how often the
// pattern is applied, following the convention of limit-aware splitters
// rather than regexp.Split:
//
//   - limit > 0: split at most limit-1 times; the final element holds the
//     unsplit remainder.
//   - limit == 0: split without bound, then drop trailing empty elements.
//   - limit < 0: split without bound, keeping trailing empty elements.
//
// A zero-width match at the start of s produces no leading empty element.
// If re matches nowhere, the result is s as its single element.
func Split(s string, re *regexp.Regexp, limit int) []string {
	if limit == 1 {
		return []string{s}
	}
	var parts []string
	pos := 0
	for _, m := range re.FindAllStringIndex(s, -1) {
		if limit > 0 && len(parts) == limit-1 {
			break
		}
		if m[0] == 0 && m[1] == 0 {
			continue
		}
		parts = append(parts, s[pos:m[0]])
		pos = m[1]
	}
	if pos == 0 {
		return []string{s}
	}
	parts = append(parts, s[pos:])
	if limit == 0 {
		for len(parts) > 0 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
	}
	return parts
}

// SplitSeq returns an iterator over the substrings of s around matches of
// re, equivalent to Split(s, re, -1) without building the slice. Iteration
// stops early when yield reports false.
func SplitSeq(s string, re *regexp.Regexp) iter.Seq[string] {
	return func(yield func(string) bool) {
		pos := 0
		for _, m := range re.FindAllStringIndex(s, -1) {
			if m[0] == 0 && m[1] == 0 {
				continue
			}
			if !yield(s[pos:m[0]]) {
				return
			}
			pos = m[1]
		}
		if pos == 0 {
			yield(s)
			return
		}
		yield(s[pos:])
	}
}
