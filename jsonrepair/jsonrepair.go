//
// Tencent is pleased to support the open source community by making trpc-jsonrepair available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-jsonrepair is licensed under the Apache License Version 2.0.
//
//

// Package jsonrepair repairs syntactically malformed JSON-like text into
// valid JSON. The repair is a bounded sequence of string-aware rewrite
// passes interleaved with parse attempts; the parser's own error location
// drives a targeted second-chance correction between passes. Every rewrite
// component is also exposed as an independently invocable pure function so
// callers can assemble a partial pipeline.
package jsonrepair

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Outcome is the tagged result of one parse attempt.
type Outcome struct {
	Valid   bool   // Valid reports whether the text parsed.
	Value   any    // Value is the decoded document when Valid.
	Pretty  string // Pretty is the indented rendering when Valid.
	Message string // Message is the parser error when not Valid.
	Offset  int    // Offset is the byte offset of the failure, -1 when the parser gave none.
}

// Err returns the parse failure as an error, or nil when the outcome is valid.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	return &Error{Message: o.Message, Position: o.Offset}
}

// Result is the terminal output of one repair call.
type Result struct {
	Success     bool     // Success reports whether the repaired text parses.
	Input       string   // Input is the original text.
	Repaired    string   // Repaired is the final buffer after all passes.
	Outcome     Outcome  // Outcome is the last parse attempt.
	Diagnostics []string // Diagnostics describes every rewrite that changed the buffer, in order.
}

// TryParse attempts to parse text with the standard JSON parser. It is
// exposed so callers can cheaply check already-valid input before paying for
// a repair attempt.
func TryParse(text string) Outcome {
	data := []byte(text)
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		out := Outcome{Message: err.Error(), Offset: -1}
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			out.Offset = int(syn.Offset)
		}
		return out
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		// Unreachable for text json.Unmarshal accepted; keep the probe value.
		value = probe
	}
	return Outcome{Valid: true, Value: value, Pretty: prettyPrint(data)}
}

// prettyPrint renders valid JSON with two-space indentation, preserving
// number spellings and key order.
func prettyPrint(data []byte) string {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return string(data)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return compact.String()
	}
	return out.String()
}

// Repair rewrites raw into valid JSON when it can. Each pass applies the
// rewrite components in a fixed order and then consults the parse oracle; on
// failure the reported offset keys a targeted bracket correction before the
// next pass. The pass bound guarantees termination, not success.
func Repair(raw string, opt ...Option) *Result {
	opts := newOptions(opt...)
	var diags []string
	s := normalizeLineEndings(raw, &diags)
	parseFailed := false
	var outcome Outcome
	for pass := 1; pass <= opts.maxPasses; pass++ {
		s = applyRewrites(s, parseFailed, &diags)
		outcome = TryParse(s)
		if outcome.Valid {
			return &Result{Success: true, Input: raw, Repaired: s, Outcome: outcome, Diagnostics: diags}
		}
		parseFailed = true
		if pass == opts.maxPasses {
			break
		}
		s = applyErrorDrivenRepair(s, outcome, &diags)
	}
	return &Result{Success: false, Input: raw, Repaired: s, Outcome: outcome, Diagnostics: diags}
}

// applyRewrites runs one full pass of the rewrite components in their fixed
// order. The unclosed-string repairer is a fallback: it only runs once a
// parse attempt has failed.
func applyRewrites(s string, parseFailed bool, diags *[]string) string {
	s = apply(s, NormalizeQuotes, diags)
	s = apply(s, StripComments, diags)
	s = apply(s, NormalizeLiterals, diags)
	s = apply(s, QuoteUnquotedKeys, diags)
	s = apply(s, FillMissingValues, diags)
	s = apply(s, EscapeControlCharacters, diags)
	s = apply(s, InsertMissingCommas, diags)
	s = apply(s, RemoveTrailingCommas, diags)
	s = apply(s, BalanceBrackets, diags)
	s = apply(s, ResolveDuplicateKeys, diags)
	if parseFailed {
		s = apply(s, CloseUnclosedStrings, diags)
	}
	return s
}

// applyErrorDrivenRepair runs the targeted bracket correction keyed on the
// failure offset, followed by a light cleanup of any separators it exposed.
func applyErrorDrivenRepair(s string, outcome Outcome, diags *[]string) string {
	if outcome.Offset < 0 {
		return s
	}
	repaired, d := BalanceBracketsNear(s, outcome.Offset)
	if repaired == s {
		return s
	}
	*diags = append(*diags, d...)
	return apply(repaired, RemoveTrailingCommas, diags)
}

// apply runs one rewrite component, recording its diagnostics only when the
// buffer actually changed.
func apply(s string, fn func(string) (string, []string), diags *[]string) string {
	out, d := fn(s)
	if out == s {
		return s
	}
	*diags = append(*diags, d...)
	return out
}

// normalizeLineEndings rewrites CRLF and bare CR line endings to LF.
func normalizeLineEndings(s string, diags *[]string) string {
	out := strings.ReplaceAll(s, "\r\n", "\n")
	out = strings.ReplaceAll(out, "\r", "\n")
	if out != s {
		*diags = append(*diags, "normalized line endings to LF")
	}
	return out
}
