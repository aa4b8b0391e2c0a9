package utils

import "testing"

func TestPRNGIsReproducible(t *testing.T) {
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) || a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(5)

	if got := s.ChooseWeighted(nil); got != -1 {
		t.Errorf("empty weights = %d, want -1", got)
	}
	if got := s.ChooseWeighted([]int{0, -2}); got != -1 {
		t.Errorf("no positive weight = %d, want -1", got)
	}

	counts := make([]int, 3)
	for i := 0; i < 1000; i++ {
		counts[s.ChooseWeighted([]int{1, 0, 3})]++
	}
	if counts[1] != 0 {
		t.Errorf("zero-weight entry picked %d times", counts[1])
	}
	if counts[2] <= counts[0] {
		t.Errorf("heavier entry picked less often: %v", counts)
	}
}

func TestRange(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		if v := s.Range(0.5, 1.5); v < 0.5 || v >= 1.5 {
			t.Fatalf("Range = %v, outside [0.5, 1.5)", v)
		}
	}
}
