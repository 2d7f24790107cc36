package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/games/slideshow"
	"github.com/vovakirdan/led-arcade/internal/platform/tui"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites [name]",
	Short: "List or preview slideshow sprites",
	Long: `List the sprites the slideshow can show, including those loaded from
slideshow.sprites_dir. With a name, draw that sprite in the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSprites,
}

func runSprites(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sprites, err := slideshow.LoadSprites(cfg.Slideshow.SpritesDir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		for _, s := range sprites {
			if strings.EqualFold(s.Name, args[0]) {
				fb := core.NewFrameBuffer(core.NewGrid(s.Width, s.Height))
				for y := 0; y < s.Height; y++ {
					for x := 0; x < s.Width; x++ {
						fb.Set(x, y, s.At(x, y))
					}
				}
				fmt.Fprint(out, tui.RenderFrame(lipgloss.NewRenderer(os.Stdout), fb.Grid(), fb.Pixels()))
				return nil
			}
		}
		return fmt.Errorf("unknown sprite %q", args[0])
	}

	inRotation := make(map[string]bool)
	for _, s := range slideshow.Rotation(sprites) {
		inRotation[s.Name] = true
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tROTATION")
	for _, s := range sprites {
		rot := "no"
		if inRotation[s.Name] {
			rot = "yes"
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%s\n", s.Name, s.Width, s.Height, rot)
	}
	return w.Flush()
}
