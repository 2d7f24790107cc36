package core

import "testing"

type shot struct{ x, y int }

func TestArenaCapacity(t *testing.T) {
	a := NewArena[shot](3)

	for i := 0; i < 10; i++ {
		a.Spawn(shot{x: i})
		if a.Len() > 3 {
			t.Fatalf("Len() = %d after %d spawns, cap is 3", a.Len(), i+1)
		}
	}
	if !a.Full() {
		t.Error("arena should be full")
	}
	if _, ok := a.Spawn(shot{}); ok {
		t.Error("Spawn into a full arena should be refused")
	}
}

func TestArenaDespawnReusesSlot(t *testing.T) {
	a := NewArena[shot](2)
	first, _ := a.Spawn(shot{x: 1})
	a.Spawn(shot{x: 2})

	a.Despawn(first)
	a.Despawn(first) // double free is a no-op
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", a.Len())
	}

	slot, ok := a.Spawn(shot{x: 3})
	if !ok || slot != first {
		t.Errorf("Spawn() = (%d, %v), expected reuse of slot %d", slot, ok, first)
	}
	if s, ok := a.Get(slot); !ok || s.x != 3 {
		t.Errorf("Get(%d) = %+v, %v", slot, s, ok)
	}
}

func TestArenaAllSkipsFreeSlots(t *testing.T) {
	a := NewArena[shot](4)
	for i := range 4 {
		a.Spawn(shot{x: i})
	}
	a.Despawn(1)

	var xs []int
	for slot, s := range a.All() {
		xs = append(xs, s.x)
		if slot == 2 {
			a.Despawn(slot)
		}
	}
	if len(xs) != 3 || xs[0] != 0 || xs[1] != 2 || xs[2] != 3 {
		t.Errorf("All() visited %v, expected [0 2 3]", xs)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", a.Len())
	}

	a.Reset()
	if a.Len() != 0 || a.Cap() != 4 {
		t.Errorf("after Reset: Len=%d Cap=%d", a.Len(), a.Cap())
	}
}
