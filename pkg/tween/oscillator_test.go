package tween_test

import (
	"testing"

	"github.com/ib-77/tween3/pkg/tween"
	"github.com/ib-77/tween3/pkg/tween/ease"
)

func TestOscillatorAlternates(t *testing.T) {
	t.Parallel()
	o := tween.New(ease.Linear(0, 2, 2)).Oscillator()

	steps := []struct {
		value int
		dir   tween.Direction
	}{
		{1, tween.Rising},
		{2, tween.Falling}, // flips on the completing step
		{1, tween.Falling},
		{0, tween.Rising},
		{1, tween.Rising},
		{2, tween.Falling},
	}

	if d := o.Direction(); d != tween.Rising {
		t.Fatalf("expected initial direction rising, got %v", d)
	}
	for i, s := range steps {
		if v := o.Update(1); v != s.value {
			t.Fatalf("step %d: expected value %d, got %v", i, s.value, v)
		}
		if d := o.Direction(); d != s.dir {
			t.Fatalf("step %d: expected direction %v, got %v", i, s.dir, d)
		}
	}
}

func TestFixedOscillatorAlternates(t *testing.T) {
	t.Parallel()
	o := tween.NewFixed(ease.Linear(0, 2, 2), 1).Oscillator()

	want := []int{1, 2, 1, 0, 1, 2, 1, 0}
	for i, w := range want {
		if v := o.Next(); v != w {
			t.Fatalf("pull %d: expected %d, got %v", i, w, v)
		}
	}
}

func TestOscillatorWithExplicitFalling(t *testing.T) {
	t.Parallel()
	rising := tween.NewFixed(ease.Linear(0, 3, 3), 1)
	falling := tween.NewFixed(ease.Linear(3, 0, 3), 1)
	o := rising.OscillatorWith(falling)

	want := []int{1, 2, 3, 2, 1, 0, 1, 2, 3}
	for i, w := range want {
		if v := o.Next(); v != w {
			t.Fatalf("pull %d: expected %d, got %v", i, w, v)
		}
	}
}

func TestOscillatorResetsCompletedTweener(t *testing.T) {
	t.Parallel()
	inner := tween.New(ease.Linear(0, 2, 2))
	inner.Update(5)

	o := inner.Oscillator()
	if d := o.Direction(); d != tween.Rising {
		t.Fatalf("expected rising after construction, got %v", d)
	}
	if v := o.Update(1); v != 1 {
		t.Fatalf("expected a fresh rising cycle to start at 1, got %v", v)
	}
}

func TestDirectionString(t *testing.T) {
	t.Parallel()
	if s := tween.Rising.String(); s != "rising" {
		t.Fatalf("expected rising, got %q", s)
	}
	if s := tween.Falling.String(); s != "falling" {
		t.Fatalf("expected falling, got %q", s)
	}
}
