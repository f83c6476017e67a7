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
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStringRanges_ComputesSpans verifies string literal spans honor escapes
// and unterminated strings.
func TestStringRanges_ComputesSpans(t *testing.T) {
	tests := []struct {
		input string
		want  []span
	}{
		{input: `{"a": 1}`, want: []span{{start: 1, end: 3}}},
		{input: `{"a": "b\"c"}`, want: []span{{start: 1, end: 3}, {start: 6, end: 11}}},
		{input: `"open`, want: []span{{start: 0, end: 4}}},
		{input: `[1, 2]`, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, stringRanges(tt.input))
		})
	}
}

// TestInsideString_TreatsOpeningQuoteAsOutside verifies rewrites anchored on
// a quoted token may fire while string interiors stay protected.
func TestInsideString_TreatsOpeningQuoteAsOutside(t *testing.T) {
	ranges := stringRanges(`{"ab": 1}`)
	require.False(t, insideString(ranges, 1)) // opening quote
	require.True(t, insideString(ranges, 2))  // interior
	require.True(t, insideString(ranges, 4))  // closing quote
	require.False(t, insideString(ranges, 5)) // colon
}

// TestReplaceOutsideStrings_SkipsStringInteriors verifies matches inside
// string literals are left alone.
func TestReplaceOutsideStrings_SkipsStringInteriors(t *testing.T) {
	re := regexp.MustCompile(`,`)
	out, n := replaceOutsideStrings(`["a,b", 1, 2]`, re, ";")
	require.Equal(t, `["a,b"; 1; 2]`, out)
	require.Equal(t, 2, n)

	out, n = replaceOutsideStrings(`"a,b"`, re, ";")
	require.Equal(t, `"a,b"`, out)
	require.Zero(t, n)
}

// TestQuoteState_TracksStringsAndEscapes verifies the shared scan primitive.
func TestQuoteState_TracksStringsAndEscapes(t *testing.T) {
	var q quoteState
	input := `a"b\"c"d`
	protected := make([]bool, len(input))
	for i := 0; i < len(input); i++ {
		protected[i] = q.step(input[i])
	}
	require.Equal(t, []bool{false, true, true, true, true, true, true, false}, protected)
}

// TestInsertBeforeLastWhitespace verifies separators land next to the
// preceding token.
func TestInsertBeforeLastWhitespace(t *testing.T) {
	require.Equal(t, "a, \n", string(insertBeforeLastWhitespace([]byte("a \n"), ",")))
	require.Equal(t, "a,", string(insertBeforeLastWhitespace([]byte("a"), ",")))
	require.Equal(t, ",", string(insertBeforeLastWhitespace([]byte(""), ",")))
}
