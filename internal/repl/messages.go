// ============================================================================
// inside - front end for a small expression language
// ============================================================================
//
// Package:     repl
// Description: Message and history types for the REPL
// Author:      dipakw
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"time"
)

// Item is one evaluated REPL entry
type Item struct {
	Name     string
	Source   string
	Output   string
	OK       bool
	Duration time.Duration
}

// Message types for tea.Cmd async operations

// recordedMsg is sent when a run was written to the journal
type recordedMsg struct {
	id  string
	err error
}
