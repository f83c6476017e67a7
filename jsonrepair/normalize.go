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
	reBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reLineComment  = regexp.MustCompile(`//[^\n]*`)
	reTrueLiteral  = regexp.MustCompile(`(?i)\btrue\b`)
	reFalseLiteral = regexp.MustCompile(`(?i)\bfalse\b`)
	reNullLiteral  = regexp.MustCompile(`(?i)\bnull\b`)
)

// StripComments removes // line comments and /* */ block comments that occur
// outside string literals.
func StripComments(s string) (string, []string) {
	var diags []string
	out, blocks := replaceOutsideStrings(s, reBlockComment, "")
	out, lines := replaceOutsideStrings(out, reLineComment, "")
	if n := blocks + lines; n > 0 && out != s {
		diags = append(diags, fmt.Sprintf("removed %d comment(s)", n))
	}
	return out, diags
}

// NormalizeLiterals rewrites case variants of true, false and null to their
// canonical lowercase spellings when they appear as standalone unquoted tokens.
func NormalizeLiterals(s string) (string, []string) {
	out := s
	out, _ = replaceOutsideStrings(out, reTrueLiteral, "true")
	out, _ = replaceOutsideStrings(out, reFalseLiteral, "false")
	out, _ = replaceOutsideStrings(out, reNullLiteral, "null")
	if out == s {
		return s, nil
	}
	return out, []string{"normalized literal casing to lowercase"}
}

// NormalizeQuotes maps typographic and full-width quote characters outside
// string literals to their ASCII counterparts. Double-quote lookalikes become
// '"' and single-quote lookalikes become '\''.
func NormalizeQuotes(s string) (string, []string) {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	lookalikeString := false
	escaped := false
	replaced := 0
	for _, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
				b.WriteRune(r)
			case r == '\\':
				escaped = true
				b.WriteRune(r)
			case r == '"' && !lookalikeString:
				inString = false
				b.WriteRune(r)
			case isDoubleQuoteLookalike(r) && lookalikeString:
				// Close a string that was opened by a lookalike quote.
				inString = false
				b.WriteByte('"')
				replaced++
			default:
				b.WriteRune(r)
			}
			continue
		}
		switch {
		case isDoubleQuoteLookalike(r):
			b.WriteByte('"')
			inString = true
			lookalikeString = true
			replaced++
		case r == '‘' || r == '’':
			b.WriteByte('\'')
			replaced++
		case r == '"':
			inString = true
			lookalikeString = false
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	if replaced == 0 {
		return s, nil
	}
	return b.String(), []string{fmt.Sprintf("normalized %d non-ASCII quote character(s)", replaced)}
}

// isDoubleQuoteLookalike reports whether r is a typographic or full-width
// variant of the ASCII double quote.
func isDoubleQuoteLookalike(r rune) bool {
	switch r {
	case '“', '”', '„', '‟', '＂':
		return true
	default:
		return false
	}
}
