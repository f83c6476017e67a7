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

func TestRemoveTrailingCommas(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "array",
			input: `[1,2,3,]`,
			want:  `[1,2,3]`,
		},
		{
			name:  "object",
			input: `{"a": 1,}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "comma before newline and closer",
			input: "{\"a\": 1,\n}",
			want:  "{\"a\": 1\n}",
		},
		{
			name:  "nested",
			input: `{"a": [1,], "b": {"c": 2,},}`,
			want:  `{"a": [1], "b": {"c": 2}}`,
		},
		{
			name:  "comma inside string preserved",
			input: `{"a": "x,]"}`,
			want:  `{"a": "x,]"}`,
		},
		{
			name:  "separating comma preserved",
			input: `[1, 2]`,
			want:  `[1, 2]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := RemoveTrailingCommas(tt.input)
			require.Equal(t, tt.want, got)
			if got == tt.input {
				require.Empty(t, diags)
			} else {
				require.Len(t, diags, 1)
			}
		})
	}
}

func TestInsertMissingCommas(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "between object members",
			input: `{"a":1 "b":2}`,
			want:  `{"a":1, "b":2}`,
		},
		{
			name:  "between numbers",
			input: `[1 2 3]`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "between strings with space",
			input: `["a" "b"]`,
			want:  `["a", "b"]`,
		},
		{
			name:  "between strings without space",
			input: `["a""b"]`,
			want:  `["a","b"]`,
		},
		{
			name:  "between adjacent objects",
			input: `[{"a":1}{"b":2}]`,
			want:  `[{"a":1},{"b":2}]`,
		},
		{
			name:  "between objects across newline",
			input: "[{\"a\":1}\n{\"b\":2}]",
			want:  "[{\"a\":1},\n{\"b\":2}]",
		},
		{
			name:  "negative number after value",
			input: `[1 -2]`,
			want:  `[1, -2]`,
		},
		{
			name:  "valid document untouched",
			input: `{"a": [1, 2], "b": {"c": true}}`,
			want:  `{"a": [1, 2], "b": {"c": true}}`,
		},
		{
			name:  "spaces inside string preserved",
			input: `{"a": "x y z"}`,
			want:  `{"a": "x y z"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := InsertMissingCommas(tt.input)
			require.Equal(t, tt.want, got)
			if got == tt.input {
				require.Empty(t, diags)
			} else {
				require.Len(t, diags, 1)
			}
		})
	}
}
