// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// It returns nil for empty content.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x, y := CenterOffset(content, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CenterOffset returns the top-left cell that centers content on the screen.
// Content larger than the screen is pinned to the origin.
func CenterOffset(content string, screenWidth int, screenHeight int) (int, int) {
	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 2
	return max(x, 0), max(y, 0)
}

// ModalWidth picks a modal width from the screen width, clamped to
// [ModalMinWidth, ModalMaxWidth] and never wider than the screen.
func ModalWidth(screenWidth int) int {
	width := min(max(screenWidth*ModalWidthNumerator/ModalWidthDivisor, ModalMinWidth), ModalMaxWidth)
	return min(width, screenWidth)
}
