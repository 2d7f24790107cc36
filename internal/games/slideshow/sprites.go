package slideshow

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

//go:embed sprites/*.yaml
var builtin embed.FS

// Transparent is the symbol for an unlit pixel.
const Transparent = '.'

// Sprite is a decoded image. Pixels are row-major; Off is transparent.
type Sprite struct {
	Name   string
	Width  int
	Height int
	Pixels []core.Color
}

// At returns the pixel at (x, y), or Off outside the sprite.
func (s Sprite) At(x, y int) core.Color {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return core.Off
	}
	return s.Pixels[y*s.Width+x]
}

// Small reports whether the sprite is an animation frame kept out of rotation.
func (s Sprite) Small() bool {
	return strings.HasSuffix(s.Name, "_small")
}

// yamlPack is the on-disk sprite pack format.
type yamlPack struct {
	Palette map[string]string `yaml:"palette"`
	Sprites []yamlSprite      `yaml:"sprites"`
}

type yamlSprite struct {
	Name    string            `yaml:"name"`
	Rows    []string          `yaml:"rows"`
	Palette map[string]string `yaml:"palette,omitempty"` // overrides the pack palette
}

// ParsePack decodes a YAML sprite pack.
func ParsePack(data []byte) ([]Sprite, error) {
	var pack yamlPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	base, err := parsePalette(pack.Palette)
	if err != nil {
		return nil, err
	}

	sprites := make([]Sprite, 0, len(pack.Sprites))
	for _, ys := range pack.Sprites {
		if ys.Name == "" {
			return nil, errors.New("sprite without a name")
		}
		if len(ys.Rows) == 0 {
			return nil, fmt.Errorf("sprite %q has no rows", ys.Name)
		}

		palette := base
		if len(ys.Palette) > 0 {
			extra, err := parsePalette(ys.Palette)
			if err != nil {
				return nil, fmt.Errorf("sprite %q: %w", ys.Name, err)
			}
			palette = make(map[rune]core.Color, len(base)+len(extra))
			for k, v := range base {
				palette[k] = v
			}
			for k, v := range extra {
				palette[k] = v
			}
		}

		sprites = append(sprites, decodeSprite(ys.Name, ys.Rows, palette))
	}
	return sprites, nil
}

func parsePalette(raw map[string]string) (map[rune]core.Color, error) {
	palette := make(map[rune]core.Color, len(raw))
	for sym, hex := range raw {
		r := []rune(sym)
		if len(r) != 1 {
			return nil, fmt.Errorf("palette symbol %q must be one character", sym)
		}
		if r[0] == Transparent {
			continue
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", sym, err)
		}
		red, green, blue := c.RGB255()
		palette[r[0]] = core.RGB(red, green, blue)
	}
	return palette, nil
}

func decodeSprite(name string, rows []string, palette map[rune]core.Color) Sprite {
	width := 0
	for _, row := range rows {
		width = core.Max(width, len([]rune(row)))
	}

	s := Sprite{
		Name:   name,
		Width:  width,
		Height: len(rows),
		Pixels: make([]core.Color, width*len(rows)),
	}
	for y, row := range rows {
		for x, sym := range []rune(row) {
			if c, ok := palette[sym]; ok {
				s.Pixels[y*width+x] = c
			}
		}
	}
	return s
}

// Builtin returns the embedded sprites in pack order.
func Builtin() ([]Sprite, error) {
	var sprites []Sprite
	err := fs.WalkDir(builtin, "sprites", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := builtin.ReadFile(path)
		if err != nil {
			return err
		}
		pack, err := ParsePack(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		sprites = append(sprites, pack...)
		return nil
	})
	return sprites, err
}

// LoadSprites returns the built-in sprites merged with every pack found
// under dir. A sprite from dir replaces a built-in one with the same name;
// new names are appended sorted. An empty dir loads only the built-ins.
func LoadSprites(dir string) ([]Sprite, error) {
	sprites, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return sprites, nil
	}

	root := config.ExpandHome(dir)
	var extra []Sprite
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", path, err)
		}
		pack, err := ParsePack(data)
		if err != nil {
			return fmt.Errorf("parsing file %s: %w", path, err)
		}
		extra = append(extra, pack...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: sprites_dir %s: %w", config.ErrInvalidConfig, dir, err)
	}

	sort.SliceStable(extra, func(i, j int) bool {
		return extra[i].Name < extra[j].Name
	})

	index := make(map[string]int, len(sprites))
	for i, s := range sprites {
		index[s.Name] = i
	}
	for _, s := range extra {
		if i, ok := index[s.Name]; ok {
			sprites[i] = s
			continue
		}
		index[s.Name] = len(sprites)
		sprites = append(sprites, s)
	}
	return sprites, nil
}

// Rotation drops animation frames. If nothing is left it keeps everything.
func Rotation(sprites []Sprite) []Sprite {
	out := make([]Sprite, 0, len(sprites))
	for _, s := range sprites {
		if !s.Small() {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return sprites
	}
	return out
}
