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
)

// bracketFrame is one open container on the balancing stack: the opener byte
// ('{' or '[') and the buffer offset where it was seen.
type bracketFrame struct {
	opener byte
	offset int
}

func closerFor(opener byte) byte {
	if opener == '{' {
		return '}'
	}
	return ']'
}

func openerFor(closer byte) byte {
	if closer == '}' {
		return '{'
	}
	return '['
}

func bracketName(opener byte) string {
	if opener == '{' {
		return "object"
	}
	return "array"
}

// BalanceBrackets repairs unbalanced braces and brackets with a string-aware
// stack scan. A closer matching the top frame pops it. A mismatched closer is
// reconciled locally: when a deeper frame matches, the closers for the frames
// above it are inserted just before it (misplaced-bracket repair); when no
// frame matches, the stray closer is discarded. Frames left open at the end
// of the scan are closed innermost-first.
func BalanceBrackets(s string) (string, []string) {
	var diags []string
	var stack []bracketFrame
	var q quoteState
	out := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if q.step(c) {
			out = append(out, c)
			continue
		}
		switch c {
		case '{', '[':
			stack = append(stack, bracketFrame{opener: c, offset: i})
			out = append(out, c)
		case '}', ']':
			stack, out, diags = reconcileCloser(stack, out, diags, c, i)
		default:
			out = append(out, c)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		closer := closerFor(top.opener)
		out = append(out, closer)
		diags = append(diags, fmt.Sprintf("appended missing '%c' for %s opened at offset %d",
			closer, bracketName(top.opener), top.offset))
	}
	return string(out), diags
}

// reconcileCloser handles one closing bracket seen outside a string.
func reconcileCloser(stack []bracketFrame, out []byte, diags []string, c byte, pos int) ([]bracketFrame, []byte, []string) {
	want := openerFor(c)
	if n := len(stack); n > 0 && stack[n-1].opener == want {
		return stack[:n-1], append(out, c), diags
	}
	// Look for a deeper frame this closer could belong to.
	match := -1
	for j := len(stack) - 1; j >= 0; j-- {
		if stack[j].opener == want {
			match = j
			break
		}
	}
	if match < 0 {
		diags = append(diags, fmt.Sprintf("removed stray '%c' at offset %d", c, pos))
		return stack, out, diags
	}
	// Close the mismatched frames above the match before emitting the closer.
	for j := len(stack) - 1; j > match; j-- {
		closer := closerFor(stack[j].opener)
		out = insertBeforeLastWhitespace(out, string(closer))
		diags = append(diags, fmt.Sprintf("inserted '%c' before '%c' at offset %d to close %s opened at offset %d",
			closer, c, pos, bracketName(stack[j].opener), stack[j].offset))
	}
	return stack[:match], append(out, c), diags
}

// CleanExtraBrackets removes closing brackets that have no matching opener to
// their left outside of string literals. It is the final sweep after the
// balancing and error-driven steps; on balanced input it is a no-op.
func CleanExtraBrackets(s string) (string, []string) {
	var diags []string
	var stack []byte
	var q quoteState
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if q.step(c) {
			out = append(out, c)
			continue
		}
		switch c {
		case '{', '[':
			stack = append(stack, c)
			out = append(out, c)
		case '}', ']':
			if n := len(stack); n > 0 && stack[n-1] == openerFor(c) {
				stack = stack[:n-1]
				out = append(out, c)
			} else {
				diags = append(diags, fmt.Sprintf("removed unmatched '%c' at offset %d", c, i))
			}
		default:
			out = append(out, c)
		}
	}
	if len(diags) == 0 {
		return s, nil
	}
	return string(out), diags
}

// BalanceBracketsNear is the error-driven variant of BalanceBrackets. Given a
// parser-reported failure offset it restricts the correction to the bracket
// nearest that offset: the closer for the innermost frame still open at the
// offset is inserted right after the last structural closer preceding the
// offset. Stray closers left behind are swept afterwards. When the prefix has
// no open frame the buffer is returned unchanged.
func BalanceBracketsNear(s string, offset int) (string, []string) {
	if offset < 0 || offset > len(s) {
		offset = len(s)
	}
	var stack []bracketFrame
	var q quoteState
	lastClose := -1
	for i := 0; i < offset; i++ {
		c := s[i]
		if q.step(c) {
			continue
		}
		switch c {
		case '{', '[':
			stack = append(stack, bracketFrame{opener: c, offset: i})
		case '}', ']':
			if n := len(stack); n > 0 && stack[n-1].opener == openerFor(c) {
				stack = stack[:n-1]
			}
			lastClose = i
		}
	}
	if len(stack) == 0 || lastClose < 0 {
		return s, nil
	}
	top := stack[len(stack)-1]
	closer := closerFor(top.opener)
	repaired := s[:lastClose+1] + string(closer) + s[lastClose+1:]
	diags := []string{fmt.Sprintf("inserted '%c' at offset %d to close %s opened at offset %d (parse error near offset %d)",
		closer, lastClose+1, bracketName(top.opener), top.offset, offset)}
	swept, sweepDiags := CleanExtraBrackets(repaired)
	if swept != repaired {
		repaired = swept
		diags = append(diags, sweepDiags...)
	}
	return repaired, diags
}
