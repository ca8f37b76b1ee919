// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/fatih/color"

// Shared color printers for the text renderer.
var (
	colorRed   = color.New(color.FgRed)
	colorFaint = color.New(color.Faint)
	colorBold  = color.New(color.Bold)
	colorCyan  = color.New(color.FgCyan)
)

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// colorWarning highlights values that flag a failed anonymization.
func colorWarning(val string) string {
	return colorRed.Sprint(val)
}

// colorMuted dims informational text such as the disabled marker.
func colorMuted(val string) string {
	return colorFaint.Sprint(val)
}

// colorDetail colors the descriptive columns of the input view.
func colorDetail(val string) string {
	if val == "" {
		return val
	}
	return colorCyan.Sprint(val)
}
