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
	"sort"
	"strings"
)

// objectScope tracks the members of one object while scanning for duplicate
// keys. members maps a key to the span of its most recent "key": value pair.
type objectScope struct {
	object    bool
	members   map[string]span
	expectKey bool
	keyName   string
	keyStart  int
	inMember  bool
}

// ResolveDuplicateKeys removes the earlier of two members with the same key
// at the same nesting level of one object, keeping the later occurrence
// (last-value-wins). Member boundaries are found with a string-aware scan,
// not a full parse, so the pass also works on text that is not yet valid.
func ResolveDuplicateKeys(s string) (string, []string) {
	var diags []string
	var dead []span
	var stack []*objectScope
	commit := func(scope *objectScope, end int) {
		if !scope.inMember {
			return
		}
		scope.inMember = false
		if prev, ok := scope.members[scope.keyName]; ok {
			dead = append(dead, prev)
			diags = append(diags, fmt.Sprintf("removed duplicate key %q (kept later value)", scope.keyName))
		}
		scope.members[scope.keyName] = span{start: scope.keyStart, end: end}
	}
	top := func() *objectScope {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '"' {
			content, next := scanStringLiteral(s, i)
			scope := top()
			if scope != nil && scope.object && scope.expectKey && nextSignificantByte(s, next) == ':' {
				scope.keyName = content
				scope.keyStart = i
				scope.inMember = true
				scope.expectKey = false
			}
			i = next
			continue
		}
		switch c {
		case '{':
			stack = append(stack, &objectScope{object: true, members: map[string]span{}, expectKey: true})
		case '[':
			stack = append(stack, &objectScope{})
		case ',':
			if scope := top(); scope != nil && scope.object {
				// Include the separating comma in the member span.
				commit(scope, i+1)
				scope.expectKey = true
			}
		case '}':
			if scope := top(); scope != nil && scope.object {
				commit(scope, i)
				stack = stack[:len(stack)-1]
			}
		case ']':
			if scope := top(); scope != nil && !scope.object {
				stack = stack[:len(stack)-1]
			}
		}
		i++
	}
	for _, scope := range stack {
		if scope.object {
			commit(scope, len(s))
		}
	}
	if len(dead) == 0 {
		return s, nil
	}
	return deleteSpans(s, dead), diags
}

// scanStringLiteral consumes the string literal starting at the quote at
// position i and returns its raw content and the index just past the closing
// quote (or len(s) when unterminated).
func scanStringLiteral(s string, i int) (string, int) {
	j := i + 1
	escaped := false
	for j < len(s) {
		c := s[j]
		if escaped {
			escaped = false
		} else if c == '\\' {
			escaped = true
		} else if c == '"' {
			return s[i+1 : j], j + 1
		}
		j++
	}
	return s[i+1:], len(s)
}

// nextSignificantByte returns the first non-whitespace byte at or after i, or
// zero at end of input.
func nextSignificantByte(s string, i int) byte {
	for ; i < len(s); i++ {
		if !isWhitespaceByte(s[i]) {
			return s[i]
		}
	}
	return 0
}

// deleteSpans removes the given byte spans from s, merging overlaps.
func deleteSpans(s string, spans []span) string {
	sort.Slice(spans, func(a, b int) bool { return spans[a].start < spans[b].start })
	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for _, sp := range spans {
		if sp.start < pos {
			if sp.end > pos {
				pos = sp.end
			}
			continue
		}
		b.WriteString(s[pos:sp.start])
		pos = sp.end
	}
	if pos < len(s) {
		b.WriteString(s[pos:])
	}
	return b.String()
}
