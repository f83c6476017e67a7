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
	"strings"
)

var (
	reUnquotedKey  = regexp.MustCompile(`([{\[,\n]\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*:)`)
	reMissingValue = regexp.MustCompile(`("(?:[^"\\]|\\.)*")(\s*:\s*)([,}\]])`)
)

// maxRewriteRounds bounds the fixpoint loops of the regexp-based passes.
const maxRewriteRounds = 10

// QuoteUnquotedKeys wraps bare identifier object keys in double quotes.
// A bare key is a letter/digit/underscore identifier that follows an opening
// brace, bracket, comma or newline and is immediately followed by a colon.
func QuoteUnquotedKeys(s string) (string, []string) {
	out := s
	total := 0
	for round := 0; round < maxRewriteRounds; round++ {
		next, n := replaceOutsideStrings(out, reUnquotedKey, `${1}"${2}"${3}`)
		if n == 0 || next == out {
			break
		}
		out = next
		total += n
	}
	if out == s {
		return s, nil
	}
	return out, []string{fmt.Sprintf("quoted %d bare object key(s)", total)}
}

// FillMissingValues inserts the literal null into a key slot whose colon is
// followed directly by a comma or closing bracket.
func FillMissingValues(s string) (string, []string) {
	out, n := replaceOutsideStrings(s, reMissingValue, "${1}${2}null${3}")
	if n == 0 || out == s {
		return s, nil
	}
	return out, []string{fmt.Sprintf("filled %d missing value(s) with null", n)}
}

// EscapeControlCharacters escapes raw control characters inside string
// literals. Newlines are left alone so that line-oriented repairs keep
// working; this is a deliberately conservative pass, not a full re-lexer.
func EscapeControlCharacters(s string) (string, []string) {
	var b strings.Builder
	b.Grow(len(s))
	var q quoteState
	escaped := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		inString := q.step(c)
		if inString && c != '"' && c != '\n' && c < 0x20 {
			b.WriteString(escapeControlCharacter(c))
			escaped++
			continue
		}
		b.WriteByte(c)
	}
	if escaped == 0 {
		return s, nil
	}
	return b.String(), []string{fmt.Sprintf("escaped %d raw control character(s) in strings", escaped)}
}

// escapeControlCharacter returns the escaped representation of a control
// character.
func escapeControlCharacter(c byte) string {
	switch c {
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	default:
		return fmt.Sprintf(`\u%04x`, c)
	}
}
