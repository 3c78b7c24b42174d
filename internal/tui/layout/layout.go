// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinimumWidth is the minimum terminal width required
	MinimumWidth = 40
	// MinimumHeight is the minimum terminal height required
	MinimumHeight = 10
)

// LayoutInfo contains all the information needed to render a layout
type LayoutInfo struct {
	HelpItems []HelpItem
	// Centered places content in the middle of the content area.
	Centered bool
}

// Dimensions represents the available space for content
type Dimensions struct {
	Width  int
	Height int
	Valid  bool
	Error  string
}

// ValidateSpace checks if the terminal has enough space to render properly
func ValidateSpace(width, height int) Dimensions {
	dims := Dimensions{Width: width, Height: height, Valid: true}

	switch {
	case width < MinimumWidth:
		dims.Valid = false
		dims.Error = fmt.Sprintf("Terminal too narrow (%d cols). Minimum: %d cols", width, MinimumWidth)
	case height < MinimumHeight:
		dims.Valid = false
		dims.Error = fmt.Sprintf("Terminal too short (%d lines). Minimum: %d lines", height, MinimumHeight)
	}

	return dims
}

// RenderLayout combines content and the help footer. Screens have no header.
// Returns an error view if the terminal is too small.
func RenderLayout(content string, info LayoutInfo, width, height int) string {
	dims := ValidateSpace(width, height)
	if !dims.Valid {
		return renderSpaceError(dims.Error, width, height)
	}

	footer := RenderFooter(info.HelpItems, width)

	contentHeight := height - blockHeight(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	hAlign, vAlign := lipgloss.Left, lipgloss.Top
	if info.Centered {
		hAlign, vAlign = lipgloss.Center, lipgloss.Center
	}

	// MaxHeight is the ceiling, Height the box size.
	styledContent := lipgloss.NewStyle().
		Width(width).
		MaxHeight(contentHeight).
		Height(contentHeight).
		Align(hAlign, vAlign).
		Render(content)

	if footer == "" {
		return styledContent
	}
	return lipgloss.JoinVertical(lipgloss.Left, styledContent, footer)
}

// GetContentArea calculates the available width and height for content
func GetContentArea(info LayoutInfo, totalWidth, totalHeight int) Dimensions {
	dims := ValidateSpace(totalWidth, totalHeight)
	if !dims.Valid {
		return dims
	}

	contentHeight := totalHeight - blockHeight(RenderFooter(info.HelpItems, totalWidth))
	if contentHeight < 1 {
		contentHeight = 1
	}

	return Dimensions{Width: totalWidth, Height: contentHeight, Valid: true}
}

// Overlay draws a modal box centered over the full screen, replacing the
// screen content. Used for blocking notices.
func Overlay(box string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func blockHeight(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}

// renderSpaceError renders an error message when terminal is too small
func renderSpaceError(message string, width, height int) string {
	errorStyle := ErrorStyle.
		Align(lipgloss.Center, lipgloss.Center).
		Width(width).
		Height(height)

	lines := []string{
		"⚠ Terminal Too Small ⚠",
		"",
		message,
		"",
		fmt.Sprintf("Current: %dx%d", width, height),
		fmt.Sprintf("Minimum: %dx%d", MinimumWidth, MinimumHeight),
		"",
		"Please resize your terminal",
	}

	return errorStyle.Render(strings.Join(lines, "\n"))
}
