// Package registry is the catalog of games the arcade can run.
// The set is closed: every kind is known at compile time and the engine
// dispatches on it with a switch.
package registry

import (
	"errors"
	"fmt"
)

// ErrUnknownGame is returned when an id does not name a catalog entry.
var ErrUnknownGame = errors.New("registry: unknown game")

// Kind identifies one of the built-in games.
type Kind int

const (
	KindPong Kind = iota
	KindInvaders
	KindSlideshow
)

// GameInfo contains metadata about a catalog entry.
type GameInfo struct {
	Kind        Kind
	ID          string
	Title       string
	Description string
}

var catalog = []GameInfo{
	{
		Kind:        KindPong,
		ID:          "pong",
		Title:       "Pong",
		Description: "Two autonomous paddles rally until one side reaches the winning score",
	},
	{
		Kind:        KindInvaders,
		ID:          "invaders",
		Title:       "Invaders",
		Description: "An autopilot ship defends against a descending formation",
	},
	{
		Kind:        KindSlideshow,
		ID:          "slideshow",
		Title:       "Pixel Art",
		Description: "Cycles 16x16 sprites with fade, wipe and dissolve transitions",
	},
}

// List returns every game in catalog order.
func List() []GameInfo {
	out := make([]GameInfo, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves a game id.
func Lookup(id string) (GameInfo, error) {
	for _, g := range catalog {
		if g.ID == id {
			return g, nil
		}
	}
	return GameInfo{}, fmt.Errorf("%w %q", ErrUnknownGame, id)
}

// Exists checks if a game with the given ID is in the catalog.
func Exists(id string) bool {
	_, err := Lookup(id)
	return err == nil
}

// Info returns the catalog entry for a kind.
func (k Kind) Info() GameInfo {
	for _, g := range catalog {
		if g.Kind == k {
			return g
		}
	}
	return GameInfo{Kind: k, ID: "unknown", Title: "Unknown"}
}

// String returns the game id.
func (k Kind) String() string {
	return k.Info().ID
}
