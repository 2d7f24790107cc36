package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// Preview is a display sink that redraws the panel in the terminal.
type Preview struct {
	w        io.Writer
	grid     core.Grid
	renderer *lipgloss.Renderer
	frames   int
}

// NewPreview creates a preview writing to w.
func NewPreview(w io.Writer, grid core.Grid) *Preview {
	return &Preview{
		w:        w,
		grid:     grid,
		renderer: lipgloss.NewRenderer(w),
	}
}

// CheckTerminal fails when fd is a terminal too small to show the grid.
// Non-terminals always pass.
func CheckTerminal(fd int, grid core.Grid) error {
	if !term.IsTerminal(fd) {
		return nil
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("tui: terminal size: %w", err)
	}
	if needW, needH := grid.W*len([]rune(litCell)), grid.H+1; w < needW || h < needH {
		return fmt.Errorf("%w: terminal is %dx%d, preview needs %dx%d", config.ErrInvalidConfig, w, h, needW, needH)
	}
	return nil
}

// Flush implements engine.Sink.
func (p *Preview) Flush(frame []core.Color) error {
	prefix := cursorHome
	if p.frames == 0 {
		prefix = clearScreen + cursorHome
	}
	p.frames++
	_, err := io.WriteString(p.w, prefix+RenderFrame(p.renderer, p.grid, frame)+"\n")
	return err
}
