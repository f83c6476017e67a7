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
	"fmt"
	"regexp"
)

var reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)

// RemoveTrailingCommas deletes commas that are followed, ignoring whitespace,
// by a closing brace or bracket.
func RemoveTrailingCommas(s string) (string, []string) {
	out := s
	total := 0
	for round := 0; round < maxRewriteRounds; round++ {
		next, n := replaceOutsideStrings(out, reTrailingComma, "${1}")
		if n == 0 || next == out {
			break
		}
		out = next
		total += n
	}
	if out == s {
		return s, nil
	}
	return out, []string{fmt.Sprintf("removed %d trailing comma(s)", total)}
}

// InsertMissingCommas inserts a comma between two adjacent value-like tokens.
// Adjacency is decided by lightweight lookahead on character classes: the
// previous significant byte must end a value (closing quote, digit, closing
// bracket or literal letter) and the current byte must start one. Tokens
// separated only by whitespace qualify; bracket-to-bracket and
// quote-to-quote adjacency qualifies even without whitespace. The pass is
// deliberately scoped to the common malformed shapes ("a" "b", 1 2, } {)
// rather than full grammar tracking.
func InsertMissingCommas(s string) (string, []string) {
	out := make([]byte, 0, len(s)+8)
	inString := false
	escaped := false
	prev := byte(0)   // last significant byte outside string literals
	sawSpace := false // whitespace seen since prev
	inserted := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
				prev = '"'
				sawSpace = false
			}
			continue
		}
		if isWhitespaceByte(c) {
			out = append(out, c)
			sawSpace = true
			continue
		}
		if needsCommaBetween(prev, c, sawSpace) {
			out = insertBeforeLastWhitespace(out, ",")
			inserted++
		}
		out = append(out, c)
		if c == '"' {
			inString = true
			escaped = false
			prev = 0
		} else {
			prev = c
		}
		sawSpace = false
	}
	if inserted == 0 {
		return s, nil
	}
	return string(out), []string{fmt.Sprintf("inserted %d missing comma(s)", inserted)}
}

// needsCommaBetween reports whether a comma must separate the token ending
// with prev from the token starting with next.
func needsCommaBetween(prev, next byte, sawSpace bool) bool {
	if !endsValue(prev) {
		return false
	}
	// Closer-to-opener and string-to-string adjacency needs no whitespace.
	if (prev == '}' || prev == ']') && (next == '{' || next == '[') {
		return true
	}
	if prev == '"' && next == '"' {
		return true
	}
	return sawSpace && startsValue(next)
}

// endsValue reports whether c can be the final byte of a JSON value token.
// '"' here means a closing quote.
func endsValue(c byte) bool {
	return c == '"' || c == '}' || c == ']' || isDigitByte(c) || isLetterByte(c)
}

// startsValue reports whether c can begin a JSON value token.
func startsValue(c byte) bool {
	return c == '"' || c == '{' || c == '[' || c == '-' || isDigitByte(c) || isLetterByte(c)
}
