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
	"strings"
)

// CloseUnclosedStrings repairs strings left unterminated on a single line.
// A line with an odd number of unescaped double quotes is assumed to contain
// an unterminated string; the closing quote is inserted immediately before
// the first structural character (',', '}' or ']') after the opening quote,
// or at the end of the line when none follows. The pass is deliberately
// line-local: it is a bounded fallback, not a re-lex of the document.
func CloseUnclosedStrings(s string) (string, []string) {
	var diags []string
	lines := strings.Split(s, "\n")
	for n, line := range lines {
		openPos := -1
		inString := false
		escaped := false
		for i := 0; i < len(line); i++ {
			c := line[i]
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == '"' {
				if inString {
					inString = false
					openPos = -1
				} else {
					inString = true
					openPos = i
				}
			}
		}
		if !inString || openPos < 0 {
			continue
		}
		insertAt := len(line)
		for j := openPos + 1; j < len(line); j++ {
			if c := line[j]; c == ',' || c == '}' || c == ']' {
				insertAt = j
				break
			}
		}
		lines[n] = line[:insertAt] + `"` + line[insertAt:]
		diags = append(diags, fmt.Sprintf("line %d: closed unterminated string", n+1))
	}
	if len(diags) == 0 {
		return s, nil
	}
	return strings.Join(lines, "\n"), diags
}
