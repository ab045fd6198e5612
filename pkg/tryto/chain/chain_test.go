package chain

import (
	"errors"
	"testing"

	"github.com/ib-77/tryto/pkg/tryto"
)

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue(7).Result()
	if !out.IsOk() || out.Value() != 7 {
		t.Fatalf("expected ok with 7, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	c := Start(tryto.Err[int](err))

	called := false
	c = c.Then(func(v int) tryto.Outcome[int] {
		called = true
		return tryto.Ok(v + 1)
	})

	out := c.Result()
	if out.IsOk() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial outcome is a failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	out := FromValue(3).
		Then(func(v int) tryto.Outcome[int] { return tryto.Ok(v * 2) }).
		Result()

	if !out.IsOk() || out.Value() != 6 {
		t.Fatalf("expected ok with 6, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	out := FromValue(10).
		ThenTry(func(v int) (int, error) { return 0, errors.New("try-error") }).
		Result()

	if out.IsOk() || out.Err() == nil || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
}

func TestThenTry_PanicRecovered(t *testing.T) {
	t.Parallel()
	out := FromValue(10).
		ThenTry(func(v int) (int, error) { panic("step blew up") }).
		Result()

	if out.IsOk() || !errors.Is(out.Err(), tryto.ErrPanic) {
		t.Fatalf("expected ErrPanic failure, got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	out := FromValue(4).
		Map(func(v int) int { return v * v }).
		Result()

	if !out.IsOk() || out.Value() != 16 {
		t.Fatalf("expected ok with 16, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	var seen int
	FromValue(2).Ensure(func(v int) { seen = v }, nil)
	if seen != 2 {
		t.Fatalf("onSuccess side effect must run, got: %v", seen)
	}

	var failed error
	Start(tryto.Err[int](errors.New("e"))).Ensure(nil, func(err error) { failed = err })
	if failed == nil || failed.Error() != "e" {
		t.Fatalf("onFailure side effect must run, got: %v", failed)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	v := FromValue(2).
		ThenTry(func(v int) (int, error) { return 0, errors.New("e") }).
		Finally(
			func(v int) int { return v },
			func(error) int { return -1 },
		)

	if v != -1 {
		t.Fatalf("expected failure branch -1, got: %v", v)
	}
}
