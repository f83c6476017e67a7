//
// Tencent is pleased to support the open source community by making trpc-jsonrepair available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-jsonrepair is licensed under the Apache License Version 2.0.
//
//

package jsonrepair

import "fmt"

// Error represents a JSON parse failure with position information.
type Error struct {
	Message  string // Message is the parser error message.
	Position int    // Position is the byte offset of the failure, -1 when unknown.
}

// Error returns the error message and position.
func (e *Error) Error() string {
	if e.Position < 0 {
		return e.Message
	}
	return fmt.Sprintf("%s at position %d", e.Message, e.Position)
}
