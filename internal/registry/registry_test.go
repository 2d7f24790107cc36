package registry

import (
	"errors"
	"testing"
)

func TestListIsClosedSet(t *testing.T) {
	games := List()
	if len(games) != 3 {
		t.Fatalf("List() returned %d games, expected 3", len(games))
	}

	want := []Kind{KindPong, KindInvaders, KindSlideshow}
	for i, g := range games {
		if g.Kind != want[i] {
			t.Errorf("List()[%d].Kind = %v, expected %v", i, g.Kind, want[i])
		}
	}

	// Mutating the returned slice must not touch the catalog.
	games[0].ID = "changed"
	if List()[0].ID != "pong" {
		t.Error("List() exposed the catalog")
	}
}

func TestLookup(t *testing.T) {
	g, err := Lookup("invaders")
	if err != nil {
		t.Fatalf("Lookup(invaders): %v", err)
	}
	if g.Kind != KindInvaders {
		t.Errorf("Kind = %v, expected invaders", g.Kind)
	}

	_, err = Lookup("tetris")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Lookup(tetris) error = %v, expected ErrUnknownGame", err)
	}
	if Exists("tetris") {
		t.Error("Exists(tetris) should be false")
	}
}

func TestKindString(t *testing.T) {
	if KindSlideshow.String() != "slideshow" {
		t.Errorf("String() = %q", KindSlideshow.String())
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("String() for unknown kind = %q", Kind(42).String())
	}
}
