// ============================================================================
// inside - front end for a small expression language
// ============================================================================
//
// Package:     render
// Description: Terminal styles shared by the CLI and the REPL
// Author:      dipakw
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	CaretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	GutterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	LocationStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	OKStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
