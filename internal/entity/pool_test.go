package entity

import (
	"reflect"
	"testing"

	"electro-shoot/internal/component"
	"electro-shoot/internal/types"
)

func TestPoolKeepsInsertionOrder(t *testing.T) {
	p := NewPool[string]()
	a := p.Insert("a")
	b := p.Insert("b")
	c := p.Insert("c")

	if !p.Remove(b) {
		t.Fatal("Remove(b) = false")
	}
	if p.Remove(b) {
		t.Error("second Remove(b) = true")
	}
	d := p.Insert("d")

	var got []string
	p.Each(func(_ types.EntityID, v *string) { got = append(got, *v) })
	if want := []string{"a", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if d == b || d == a || d == c {
		t.Error("ID reused")
	}
}

func TestPoolRetain(t *testing.T) {
	p := NewPool[int]()
	for i := 0; i < 6; i++ {
		p.Insert(i)
	}

	var visited []int
	p.Retain(func(_ types.EntityID, v *int) bool {
		visited = append(visited, *v)
		return *v%2 == 0
	})

	if want := []int{0, 1, 2, 3, 4, 5}; !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
	if p.Len() != 3 {
		t.Errorf("Len = %d, want 3", p.Len())
	}
	for _, id := range p.IDs() {
		v, _ := p.Get(id)
		if *v%2 != 0 {
			t.Errorf("odd value %d survived", *v)
		}
	}
}

func TestPoolSnapshotSurvivesRemoval(t *testing.T) {
	p := NewPool[int]()
	for i := 0; i < 4; i++ {
		p.Insert(i)
	}
	seen := 0
	for _, id := range p.IDs() {
		if _, ok := p.Get(id); ok {
			seen++
		}
		p.Remove(id)
	}
	if seen != 4 || p.Len() != 0 {
		t.Errorf("seen %d, remaining %d", seen, p.Len())
	}
}

func TestPointersStayValid(t *testing.T) {
	p := NewPool[int]()
	id := p.Insert(1)
	ptr, _ := p.Get(id)
	for i := 0; i < 100; i++ {
		p.Insert(i)
	}
	*ptr = 42
	v, _ := p.Get(id)
	if *v != 42 {
		t.Errorf("value = %d, want 42", *v)
	}
}

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	w.GameTime = 3
	w.Particles.Insert(component.Particle{Lifetime: 1})
	w.Clear()
	if w.GameTime != 0 || w.Particles.Len() != 0 || w.Enemies.Len() != 0 || w.Projectiles.Len() != 0 {
		t.Error("world not cleared")
	}
}
