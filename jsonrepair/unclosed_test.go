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

func TestCloseUnclosedStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "closed before trailing comma",
			input: `{"a": "hello,`,
			want:  `{"a": "hello",`,
		},
		{
			name:  "closed before closing brace",
			input: `{"a": "hello}`,
			want:  `{"a": "hello"}`,
		},
		{
			name:  "closed at end of line",
			input: `{"a": "hello`,
			want:  `{"a": "hello"`,
		},
		{
			name:  "only the broken line is touched",
			input: "{\"a\": \"b,\n\"c\": 1}",
			want:  "{\"a\": \"b\",\n\"c\": 1}",
		},
		{
			name:  "escaped quotes do not count",
			input: `{"a": "say \"hi\""}`,
			want:  `{"a": "say \"hi\""}`,
		},
		{
			name:  "balanced quotes untouched",
			input: `{"a": "b"}`,
			want:  `{"a": "b"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := CloseUnclosedStrings(tt.input)
			require.Equal(t, tt.want, got)
			if got == tt.input {
				require.Empty(t, diags)
			} else {
				require.NotEmpty(t, diags)
			}
		})
	}
}
