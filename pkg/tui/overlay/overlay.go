// Package overlay draws a modal view on top of a background view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Placement controls overlay alignment. Positions follow lipgloss: 0 is
// left/top, 0.5 is centered and 1 is right/bottom. Margins apply to the
// edge the overlay is aligned to.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Centered places the overlay in the middle of the screen.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// Compose overlays foreground atop a width x height background. The
// background is flattened to plain text and rendered with backdrop so the
// overlay reads as modal while the content behind it stays visible.
func Compose(background string, width, height int, foreground string, placement Placement, backdrop lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return foreground
	}
	bgLines := normalizeBackground(background, width, height)
	if foreground == "" {
		return render(bgLines, backdrop)
	}

	fgLines := strings.Split(foreground, "\n")
	overlayWidth := 0
	for _, line := range fgLines {
		if w := lipgloss.Width(line); w > overlayWidth {
			overlayWidth = w
		}
	}
	overlayWidth = min(overlayWidth, width)
	overlayHeight := min(len(fgLines), height)

	offsetX := offset(width, overlayWidth, placement.Horizontal, placement.MarginX)
	offsetY := offset(height, overlayHeight, placement.Vertical, placement.MarginY)

	out := make([]string, len(bgLines))
	for y, line := range bgLines {
		row := y - offsetY
		if row < 0 || row >= overlayHeight {
			out[y] = backdrop.Render(line)
			continue
		}
		prefix := sliceWidth(line, 0, offsetX)
		suffix := sliceWidth(line, offsetX+overlayWidth, width)
		out[y] = backdrop.Render(prefix) + padToWidth(fgLines[row], overlayWidth) + backdrop.Render(suffix)
	}
	return strings.Join(out, "\n")
}

func render(lines []string, style lipgloss.Style) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = style.Render(l)
	}
	return strings.Join(out, "\n")
}

func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(Plain(view), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

// padToWidth truncates or space pads s to exactly width cells.
func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate.String(s, uint(width))
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// sliceWidth returns the cells [start, end) of a plain string.
func sliceWidth(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if start >= end {
		return ""
	}
	var b strings.Builder
	seen := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		next := seen + rw
		if next <= start {
			seen = next
			continue
		}
		if next > end {
			break
		}
		b.WriteRune(r)
		seen = next
	}
	return b.String()
}

func offset(total, size int, pos lipgloss.Position, margin int) int {
	free := total - size
	if free <= 0 {
		return 0
	}
	o := int(float64(free) * float64(pos))
	switch pos {
	case lipgloss.Left:
		o += margin
	case lipgloss.Right:
		o -= margin
	}
	return max(0, min(o, free))
}

// Plain strips ANSI escape sequences from s.
func Plain(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			inSeq = true
			continue
		}
		if inSeq {
			if ansi.IsTerminator(r) {
				inSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
