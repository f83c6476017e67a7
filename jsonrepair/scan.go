//
// Tencent is pleased to support the open source community by making trpc-jsonrepair available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-jsonrepair is licensed under the Apache License Version 2.0.
//
//

package jsonrepair

import (
	"regexp"
	"strings"
)

// span marks a string literal in the buffer, inclusive of both quote bytes.
// For an unterminated string the span extends to the last byte of the buffer.
type span struct {
	start int
	end   int
}

// stringRanges computes the spans of double-quoted string literals using
// JSON escape rules. The scan is approximate on malformed input: quotes
// toggle state, a backslash escapes the following byte.
func stringRanges(s string) []span {
	var ranges []span
	inString := false
	escaped := false
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c != '"' {
			continue
		}
		if inString {
			ranges = append(ranges, span{start: start, end: i})
			inString = false
			start = -1
		} else {
			inString = true
			start = i
		}
	}
	if inString && start >= 0 {
		ranges = append(ranges, span{start: start, end: len(s) - 1})
	}
	return ranges
}

// insideString reports whether index i falls inside one of the string spans.
// The opening quote itself counts as outside so that rewrites anchored on a
// quoted token (for example a quoted object key) may still fire.
func insideString(ranges []span, i int) bool {
	for _, r := range ranges {
		if i > r.start && i <= r.end {
			return true
		}
	}
	return false
}

// replaceOutsideStrings applies a regexp rewrite to every match that does not
// start inside a string literal and returns the result with the number of
// rewrites performed. repl follows regexp.Expand template syntax.
func replaceOutsideStrings(s string, re *regexp.Regexp, repl string) (string, int) {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, 0
	}
	ranges := stringRanges(s)
	var b strings.Builder
	last := 0
	n := 0
	for _, m := range matches {
		if insideString(ranges, m[0]) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.Write(re.ExpandString(nil, repl, s, m))
		last = m[1]
		n++
	}
	if n == 0 {
		return s, 0
	}
	b.WriteString(s[last:])
	return b.String(), n
}

// quoteState tracks whether a byte-by-byte scan is inside a string literal.
type quoteState struct {
	inString bool
	escaped  bool
}

// step consumes one byte and reports whether it belongs to a string literal,
// counting the enclosing quotes as part of the string.
func (q *quoteState) step(c byte) bool {
	if q.escaped {
		q.escaped = false
		return true
	}
	if q.inString {
		switch c {
		case '\\':
			q.escaped = true
		case '"':
			q.inString = false
		}
		return true
	}
	if c == '"' {
		q.inString = true
		return true
	}
	return false
}

// insertBeforeLastWhitespace inserts text into out just before any trailing
// whitespace, so that a repaired separator lands next to the preceding token.
func insertBeforeLastWhitespace(out []byte, text string) []byte {
	i := len(out)
	for i > 0 && isWhitespaceByte(out[i-1]) {
		i--
	}
	res := make([]byte, 0, len(out)+len(text))
	res = append(res, out[:i]...)
	res = append(res, text...)
	res = append(res, out[i:]...)
	return res
}

func isWhitespaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
