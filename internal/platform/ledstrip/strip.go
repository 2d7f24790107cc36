// Package ledstrip drives a serpentine NeoPixel panel through periph.io.
// Frames arrive in wiring order, so the strip only packs channel bytes.
package ledstrip

import (
	"errors"
	"fmt"
	"io"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// ErrFrameSize is returned when a frame does not match the strip length.
var ErrFrameSize = errors.New("ledstrip: frame size mismatch")

// device is the part of nrzled.Dev and screen.Dev the strip uses.
type device interface {
	io.Writer
	Halt() error
}

// Strip is a display sink for an addressable LED chain.
type Strip struct {
	dev      device
	port     spi.PortCloser // nil when not on SPI
	pixels   int
	channels int
	buf      []byte
}

// Open initializes the host drivers and claims an SPI port. An empty port
// name picks the first one registered.
func Open(port string, pixels, channels, freqKHz int) (*Strip, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("ledstrip: host init: %w", err)
	}
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("ledstrip: open spi port %q: %w", port, err)
	}
	s, err := New(p, pixels, channels, physic.Frequency(freqKHz)*physic.KiloHertz)
	if err != nil {
		p.Close()
		return nil, err
	}
	s.port = p
	return s, nil
}

// New wraps an already opened SPI port.
func New(p spi.Port, pixels, channels int, freq physic.Frequency) (*Strip, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("ledstrip: unsupported channel count %d", channels)
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: pixels,
		Channels:  channels,
		Freq:      freq,
	})
	if err != nil {
		return nil, fmt.Errorf("ledstrip: nrzled: %w", err)
	}
	return newStrip(d, pixels, channels), nil
}

// NewScreen emulates the strip as a row of colored blocks on stdout.
func NewScreen(pixels int) *Strip {
	return newStrip(screen.New(pixels), pixels, 3)
}

func newStrip(d device, pixels, channels int) *Strip {
	return &Strip{
		dev:      d,
		pixels:   pixels,
		channels: channels,
		buf:      make([]byte, pixels*channels),
	}
}

// Flush implements engine.Sink.
func (s *Strip) Flush(frame []core.Color) error {
	if len(frame) != s.pixels {
		return fmt.Errorf("%w: got %d, strip has %d", ErrFrameSize, len(frame), s.pixels)
	}
	Pack(s.buf, frame, s.channels)
	if _, err := s.dev.Write(s.buf); err != nil {
		return fmt.Errorf("ledstrip: write: %w", err)
	}
	return nil
}

// Close turns every LED off and releases the port.
func (s *Strip) Close() error {
	err := s.dev.Halt()
	if s.port != nil {
		err = errors.Join(err, s.port.Close())
	}
	return err
}

// Pack writes frame into dst as R,G,B[,W] bytes. dst must hold len(frame)*channels bytes.
func Pack(dst []byte, frame []core.Color, channels int) {
	for i, c := range frame {
		o := i * channels
		dst[o] = c.R
		dst[o+1] = c.G
		dst[o+2] = c.B
		if channels == 4 {
			dst[o+3] = c.W
		}
	}
}
