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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "line comment",
			input: "{\"a\": 1 // note\n}",
			want:  "{\"a\": 1 \n}",
		},
		{
			name:  "block comment",
			input: `{/* note */"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "multiline block comment",
			input: "{\"a\": 1/* spans\nlines */}",
			want:  `{"a": 1}`,
		},
		{
			name:  "slashes inside string preserved",
			input: `{"url": "http://example.com"}`,
			want:  `{"url": "http://example.com"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := StripComments(tt.input)
			require.Equal(t, tt.want, got)
			if got != tt.input {
				require.NotEmpty(t, diags)
			} else {
				require.Empty(t, diags)
			}
		})
	}
}

func TestNormalizeLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "capitalized variants",
			input: `{"a": True, "b": FALSE, "c": NULL}`,
			want:  `{"a": true, "b": false, "c": null}`,
		},
		{
			name:  "mixed case",
			input: `[TrUe, nUlL]`,
			want:  `[true, null]`,
		},
		{
			name:  "inside string preserved",
			input: `{"a": "True story"}`,
			want:  `{"a": "True story"}`,
		},
		{
			name:  "identifier prefix untouched",
			input: `{"a": Truex}`,
			want:  `{"a": Truex}`,
		},
		{
			name:  "already canonical",
			input: `{"a": true}`,
			want:  `{"a": true}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := NormalizeLiterals(tt.input)
			require.Equal(t, tt.want, got)
			if got == tt.input {
				require.Empty(t, diags)
			}
		})
	}
}

func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "typographic double quotes",
			input: `{“a”: “b”}`,
			want:  `{"a": "b"}`,
		},
		{
			name:  "full width quotes",
			input: `{＂a＂: 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "single quote lookalikes",
			input: `{‘a’: 1}`,
			want:  `{'a': 1}`,
		},
		{
			name:  "lookalikes inside ascii string preserved",
			input: `{"a": "say “hi”"}`,
			want:  `{"a": "say “hi”"}`,
		},
		{
			name:  "plain ascii untouched",
			input: `{"a": "b"}`,
			want:  `{"a": "b"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := NormalizeQuotes(tt.input)
			require.Equal(t, tt.want, got)
			if got == tt.input {
				require.Empty(t, diags)
			} else {
				require.Len(t, diags, 1)
			}
		})
	}
}
