package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/games/invaders"
	"github.com/vovakirdan/led-arcade/internal/games/pong"
	"github.com/vovakirdan/led-arcade/internal/games/slideshow"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// Variant is the game the engine drives. Exactly one of the pointers is set,
// selected by kind.
type Variant struct {
	kind      registry.Kind
	pong      *pong.Game
	invaders  *invaders.Game
	slideshow *slideshow.Show
}

// PongVariant wraps a Pong game.
func PongVariant(g *pong.Game) Variant {
	return Variant{kind: registry.KindPong, pong: g}
}

// InvadersVariant wraps an Invaders game.
func InvadersVariant(g *invaders.Game) Variant {
	return Variant{kind: registry.KindInvaders, invaders: g}
}

// SlideshowVariant wraps a slideshow.
func SlideshowVariant(s *slideshow.Show) Variant {
	return Variant{kind: registry.KindSlideshow, slideshow: s}
}

// NewVariant builds the game for kind from the loaded configuration.
func NewVariant(kind registry.Kind, cfg config.Config) (Variant, error) {
	switch kind {
	case registry.KindPong:
		return PongVariant(pong.New(cfg.Pong)), nil
	case registry.KindInvaders:
		return InvadersVariant(invaders.New(cfg.Invaders)), nil
	case registry.KindSlideshow:
		sprites, err := slideshow.LoadSprites(cfg.Slideshow.SpritesDir)
		if err != nil {
			return Variant{}, err
		}
		return SlideshowVariant(slideshow.New(cfg.Slideshow, sprites)), nil
	}
	return Variant{}, fmt.Errorf("%w: kind %d", registry.ErrUnknownGame, kind)
}

// Kind returns which game this is.
func (v Variant) Kind() registry.Kind {
	return v.kind
}

func (v Variant) valid() bool {
	switch v.kind {
	case registry.KindPong:
		return v.pong != nil
	case registry.KindInvaders:
		return v.invaders != nil
	case registry.KindSlideshow:
		return v.slideshow != nil
	}
	return false
}

func (v Variant) reset(rt core.RuntimeConfig) {
	switch v.kind {
	case registry.KindPong:
		v.pong.Reset(rt)
	case registry.KindInvaders:
		v.invaders.Reset(rt)
	case registry.KindSlideshow:
		v.slideshow.Reset(rt)
	}
}

func (v Variant) update(dt time.Duration) {
	switch v.kind {
	case registry.KindPong:
		v.pong.Update(dt)
	case registry.KindInvaders:
		v.invaders.Update(dt)
	case registry.KindSlideshow:
		v.slideshow.Update(dt)
	}
}

func (v Variant) render(fb *core.FrameBuffer) {
	switch v.kind {
	case registry.KindPong:
		v.pong.Render(fb)
	case registry.KindInvaders:
		v.invaders.Render(fb)
	case registry.KindSlideshow:
		v.slideshow.Render(fb)
	}
}

func (v Variant) state() core.GameState {
	switch v.kind {
	case registry.KindPong:
		return v.pong.State()
	case registry.KindInvaders:
		return v.invaders.State()
	case registry.KindSlideshow:
		return v.slideshow.State()
	}
	return core.GameState{}
}
