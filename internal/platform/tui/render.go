// Package tui is the terminal side of the arcade: a preview sink that draws
// the panel with lipgloss, the game picker and the score table.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/core"
)

const (
	litCell = "██"
	offCell = "··"
)

// RenderFrame draws a wiring-order frame as rows of the physical panel.
// Runs of equal color share one style to keep escape sequences short.
func RenderFrame(r *lipgloss.Renderer, grid core.Grid, frame []core.Color) string {
	offStyle := r.NewStyle().Foreground(lipgloss.Color("236"))

	var sb strings.Builder
	sb.Grow(grid.W*grid.H*len(litCell) + grid.H)

	at := func(x, y int) core.Color {
		if i := grid.Index(x, y); i >= 0 && i < len(frame) {
			return frame[i]
		}
		return core.Off
	}

	var run strings.Builder
	for y := 0; y < grid.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < grid.W {
			start := at(x, y)
			run.Reset()
			for x < grid.W && at(x, y) == start {
				if start.IsOff() {
					run.WriteString(offCell)
				} else {
					run.WriteString(litCell)
				}
				x++
			}
			if start.IsOff() {
				sb.WriteString(offStyle.Render(run.String()))
				continue
			}
			sb.WriteString(r.NewStyle().Foreground(lipgloss.Color(start.String())).Render(run.String()))
		}
	}
	return sb.String()
}
