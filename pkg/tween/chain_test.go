package tween_test

import (
	"testing"

	"github.com/ib-77/tween3/pkg/tween"
	"github.com/ib-77/tween3/pkg/tween/ease"
)

func TestChainBoundarySteps(t *testing.T) {
	t.Parallel()
	c := tween.NewChain[int, int](ease.Linear(0, 10, 5), ease.Linear(10, 0, 5))

	v, ok := c.Update(5)
	if !ok || v != 10 {
		t.Fatalf("expected end of first member (10, true), got (%v, %v)", v, ok)
	}

	v, ok = c.Update(5)
	if !ok || v != 0 {
		t.Fatalf("expected end of second member (0, true), got (%v, %v)", v, ok)
	}

	if _, ok = c.Update(5); ok {
		t.Fatalf("expected exhaustion after the last member")
	}
}

func TestChainCarriesOvershoot(t *testing.T) {
	t.Parallel()
	c := tween.NewChain[int, int](ease.Linear(0, 10, 5), ease.Linear(10, 0, 5))

	// 7 = 5 through the first member, 2 into the second
	v, ok := c.Update(7)
	if !ok || v != 6 {
		t.Fatalf("expected (6, true) two ticks into the second member, got (%v, %v)", v, ok)
	}
}

func TestChainSpanningDeltaMatchesStepwise(t *testing.T) {
	t.Parallel()
	spanning := tween.NewChain[int, int](ease.Linear(0, 10, 5), ease.Linear(10, 20, 5), ease.Linear(20, 30, 5))
	stepwise := tween.NewChain[int, int](ease.Linear(0, 10, 5), ease.Linear(10, 20, 5), ease.Linear(20, 30, 5))

	sv, sok := spanning.Update(13)

	var wv int
	var wok bool
	for _, d := range []int{5, 5, 3} {
		wv, wok = stepwise.Update(d)
	}

	if !sok || !wok || sv != wv {
		t.Fatalf("spanning delta (%v, %v) disagrees with stepwise (%v, %v)", sv, sok, wv, wok)
	}
}

func TestChainHugeDeltaFusesOnce(t *testing.T) {
	t.Parallel()
	c := tween.NewChain[int, int](ease.Linear(0, 10, 5), ease.Linear(10, 0, 5))

	v, ok := c.Update(100)
	if !ok || v != 0 {
		t.Fatalf("expected the chain's final value (0, true), got (%v, %v)", v, ok)
	}
	if _, ok = c.Update(1); ok {
		t.Fatalf("expected exhaustion after the fuse tripped")
	}
}

func TestChainDuration(t *testing.T) {
	t.Parallel()
	c := tween.NewChain[int, int](ease.Linear(0, 10, 5), ease.QuadIn(10, 0, 7), ease.Linear(0, 1, 3))

	if d := c.Duration(); d != 15 {
		t.Fatalf("expected total duration 15, got %v", d)
	}
}

func TestChainEmptyPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected NewChain with no members to panic")
		}
	}()
	tween.NewChain[int, int]()
}

func TestJoinRunsAsOneTween(t *testing.T) {
	t.Parallel()
	j := tween.Join[int, int](ease.Linear(0, 10, 5), ease.Linear(10, 0, 5))

	if d := j.Duration(); d != 10 {
		t.Fatalf("expected duration 10, got %v", d)
	}
	if v := j.Run(2); v != 4 {
		t.Fatalf("expected 4 two ticks in, got %v", v)
	}
	if v := j.Run(7); v != 6 {
		t.Fatalf("expected 6 two ticks into the second member, got %v", v)
	}
	if v := j.FinalValue(); v != 0 {
		t.Fatalf("expected final value 0, got %v", v)
	}
}

func TestJoinedSequenceLoops(t *testing.T) {
	t.Parallel()
	j := tween.Join[int, int](ease.Linear(0, 10, 5), ease.Linear(10, 0, 5))
	l := tween.NewFixed(j, 5).Looper()

	want := []int{10, 0, 10, 0}
	for i, w := range want {
		if v := l.Next(); v != w {
			t.Fatalf("pull %d: expected %d, got %v", i, w, v)
		}
	}
}

func TestJoinEmptyPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Join with no members to panic")
		}
	}()
	tween.Join[int, int]()
}
