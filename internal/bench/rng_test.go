package bench

import "testing"

func TestParsePattern(t *testing.T) {
	for _, s := range []string{"sequential", "uniform", "hotspot"} {
		p, err := ParsePattern(s)
		if err != nil || string(p) != s {
			t.Errorf("ParsePattern(%q) = %q, %v", s, p, err)
		}
	}
	if _, err := ParsePattern("Uniform"); err == nil {
		t.Errorf("pattern names should be case sensitive")
	}
}

func TestSequentialWraps(t *testing.T) {
	src := Sequential.Source(0)
	for k, exp := range []int{0, 1, 2, 0, 1, 2, 0} {
		if got := src.Intn(3); got != exp {
			t.Errorf("draw %d: got %d != exp %d", k, got, exp)
		}
	}
}

func TestSourcesStayInRange(t *testing.T) {
	for _, p := range []Pattern{Sequential, Uniform, Hotspot} {
		src := p.Source(DefaultSeed)
		for _, n := range []int{1, 2, 10, 1000} {
			for k := 0; k < 5000; k++ {
				if i := src.Intn(n); i < 0 || i >= n {
					t.Fatalf("%s: index %d outside [0, %d)", p, i, n)
				}
			}
		}
	}
}

func TestSeededSourcesRepeat(t *testing.T) {
	for _, p := range []Pattern{Uniform, Hotspot} {
		a, b := p.Source(17), p.Source(17)
		for k := 0; k < 100; k++ {
			if x, y := a.Intn(500), b.Intn(500); x != y {
				t.Fatalf("%s: draw %d differs for the same seed: %d != %d", p, k, x, y)
			}
		}
	}
}
