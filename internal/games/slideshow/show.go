// Package slideshow cycles pixel-art sprites with transition effects.
package slideshow

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

// Phase is the sequencer phase.
type Phase int

const (
	PhaseHolding Phase = iota
	PhaseTransition
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseHolding:
		return "holding"
	case PhaseTransition:
		return "transition"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// cycleEffects is the rotation used by the cycle transition.
var cycleEffects = []string{
	config.TransitionFade,
	config.TransitionWipeRight,
	config.TransitionWipeDown,
	config.TransitionDissolve,
}

// Show sequences sprites: hold one, transition to the next, repeat.
type Show struct {
	cfg     config.SlideshowConfig
	sprites []Sprite
	grid    core.Grid
	rng     *rand.Rand

	order []int // rotation order into sprites
	rank  []int // dissolve order per row-major pixel, reshuffled per transition

	pos    int // position in order of the sprite shown or being revealed
	from   int
	to     int
	phase  Phase
	held   time.Duration
	step   int
	effect string
	cycle  int

	passes int
	shown  int
}

// New creates a show over the rotation of sprites. Call Reset before the first Update.
func New(cfg config.SlideshowConfig, sprites []Sprite) *Show {
	return &Show{cfg: cfg, sprites: Rotation(sprites)}
}

// Reset rewinds to the first sprite. Buffers are allocated here only.
func (s *Show) Reset(rt core.RuntimeConfig) {
	s.grid = rt.Grid
	s.rng = rand.New(rand.NewSource(rt.Seed))

	s.order = make([]int, len(s.sprites))
	for i := range s.order {
		s.order[i] = i
	}
	if s.cfg.Shuffle {
		s.rng.Shuffle(len(s.order), func(i, j int) {
			s.order[i], s.order[j] = s.order[j], s.order[i]
		})
	}

	s.rank = make([]int, s.grid.Len())
	for i := range s.rank {
		s.rank[i] = i
	}

	s.pos = 0
	s.from, s.to = 0, 0
	if len(s.order) > 0 {
		s.from, s.to = s.order[0], s.order[0]
	}
	s.phase = PhaseHolding
	s.held = 0
	s.step = 0
	s.effect = config.TransitionNone
	s.cycle = 0
	s.passes = 0
	s.shown = 0
	if len(s.sprites) > 0 {
		s.shown = 1
	}
}

// Update advances the hold timer or the running transition by one tick.
func (s *Show) Update(dt time.Duration) {
	switch s.phase {
	case PhaseHolding:
		if len(s.sprites) == 0 {
			return
		}
		s.held += dt
		if s.held >= s.cfg.Hold {
			s.advance()
		}
	case PhaseTransition:
		s.step++
		if s.step >= s.cfg.Steps {
			s.settle()
		}
	}
}

// advance starts the move to the next sprite in the rotation.
func (s *Show) advance() {
	next := s.pos + 1
	if next >= len(s.order) {
		s.passes++
		if s.cfg.Loops > 0 && s.passes >= s.cfg.Loops {
			s.phase = PhaseDone
			return
		}
		next = 0
		if s.cfg.Shuffle {
			s.reshuffle()
		}
	}

	s.from = s.order[s.pos]
	s.pos = next
	s.to = s.order[next]
	s.effect = s.nextEffect()

	if s.effect == config.TransitionNone || s.cfg.Steps <= 0 {
		s.settle()
		return
	}
	if s.effect == config.TransitionDissolve {
		s.rng.Shuffle(len(s.rank), func(i, j int) {
			s.rank[i], s.rank[j] = s.rank[j], s.rank[i]
		})
	}
	s.phase = PhaseTransition
	s.step = 0
}

func (s *Show) settle() {
	s.from = s.to
	s.phase = PhaseHolding
	s.held = 0
	s.step = 0
	s.shown++
}

// reshuffle draws a new order that does not repeat the sprite on screen.
func (s *Show) reshuffle() {
	current := s.order[s.pos]
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	if n := len(s.order); n > 1 && s.order[0] == current {
		s.order[0], s.order[n-1] = s.order[n-1], s.order[0]
	}
}

func (s *Show) nextEffect() string {
	if s.cfg.Transition != config.TransitionCycle {
		return s.cfg.Transition
	}
	e := cycleEffects[s.cycle%len(cycleEffects)]
	s.cycle++
	return e
}

// Render draws the current sprite, or the blend of two during a transition.
func (s *Show) Render(fb *core.FrameBuffer) {
	if len(s.sprites) == 0 {
		return
	}
	if s.phase != PhaseTransition {
		s.draw(fb, s.sprites[s.to])
		return
	}

	from, to := s.sprites[s.from], s.sprites[s.to]
	w, h := s.grid.W, s.grid.H
	steps := s.cfg.Steps

	switch s.effect {
	case config.TransitionFade:
		half := core.Max(1, steps/2)
		if s.step < half {
			s.drawScaled(fb, from, uint8(255*(half-s.step)/half))
		} else {
			s.drawScaled(fb, to, uint8(255*(s.step-half)/core.Max(1, steps-half)))
		}
	case config.TransitionWipeRight:
		edge := w * s.step / steps
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if x < edge {
					fb.Set(x, y, to.At(x, y))
				} else {
					fb.Set(x, y, from.At(x, y))
				}
			}
		}
	case config.TransitionWipeDown:
		edge := h * s.step / steps
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if y < edge {
					fb.Set(x, y, to.At(x, y))
				} else {
					fb.Set(x, y, from.At(x, y))
				}
			}
		}
	case config.TransitionDissolve:
		revealed := len(s.rank) * s.step / steps
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if s.rank[y*w+x] < revealed {
					fb.Set(x, y, to.At(x, y))
				} else {
					fb.Set(x, y, from.At(x, y))
				}
			}
		}
	default:
		s.draw(fb, to)
	}
}

func (s *Show) draw(fb *core.FrameBuffer, sp Sprite) {
	s.drawScaled(fb, sp, 255)
}

func (s *Show) drawScaled(fb *core.FrameBuffer, sp Sprite, level uint8) {
	for y := 0; y < sp.Height; y++ {
		for x := 0; x < sp.Width; x++ {
			if c := sp.At(x, y); !c.IsOff() {
				fb.Set(x, y, c.Scale(level))
			}
		}
	}
}

// State reports the phase. A show has no score and ends only when Loops is set.
func (s *Show) State() core.GameState {
	return core.GameState{
		GameOver: s.phase == PhaseDone,
		Won:      s.phase == PhaseDone,
		Phase:    s.phase.String(),
	}
}

// Phase returns the current phase.
func (s *Show) Phase() Phase {
	return s.phase
}

// Current returns the sprite on screen, or the one being revealed.
func (s *Show) Current() Sprite {
	if len(s.sprites) == 0 {
		return Sprite{}
	}
	return s.sprites[s.to]
}

// Shown counts sprites that have been fully displayed, the first included.
func (s *Show) Shown() int {
	return s.shown
}

// Sprites returns the rotation.
func (s *Show) Sprites() []Sprite {
	return s.sprites
}
