package auto

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/tryto/pkg/tryto"
)

func TestTry_SyncHandlerSettlesImmediately(t *testing.T) {
	t.Parallel()
	d := Try(func() (any, error) { return 1, nil }, nil)

	if !d.Settled() {
		t.Fatalf("plain-value handlers must yield a settled result")
	}
	v, err := d.Await(context.Background())
	if err != nil || v != 1 {
		t.Fatalf("expected 1, got: val=%v, err=%v", v, err)
	}
}

func TestTry_SyncFailure(t *testing.T) {
	t.Parallel()
	var got error
	d := Try(func() (any, error) { return nil, errors.New("x") }, func(err error) any {
		got = err
		return nil
	})

	if !d.Settled() {
		t.Fatalf("sync failure must yield a settled result")
	}
	v, err := d.Await(context.Background())
	if err != nil || v != nil {
		t.Fatalf("failure must resolve to nil, got: val=%v, err=%v", v, err)
	}
	if got == nil || got.Error() != "x" {
		t.Fatalf("callback must see 'x', got: %v", got)
	}
}

func TestTry_DeferredHandlerSwitchesMode(t *testing.T) {
	t.Parallel()
	inner := tryto.NewDeferred[any]()

	d := Try(func() (any, error) { return inner, nil }, nil)
	if d.Settled() {
		t.Fatalf("deferred-returning handlers must not settle up front")
	}

	inner.Resolve("later")
	v, err := d.Await(context.Background())
	if err != nil || v != "later" {
		t.Fatalf("expected 'later', got: val=%v, err=%v", v, err)
	}
}

func TestTry_HandlerPanic(t *testing.T) {
	t.Parallel()
	var got error
	d := Try(func() (any, error) { panic("raw") }, func(err error) any {
		got = err
		return nil
	})

	v, err := d.Await(context.Background())
	if err != nil || v != nil {
		t.Fatalf("failure must resolve to nil, got: val=%v, err=%v", v, err)
	}
	if !errors.Is(got, tryto.ErrPanic) {
		t.Fatalf("callback must see ErrPanic, got: %v", got)
	}
}

func TestCatch_BothModes(t *testing.T) {
	t.Parallel()
	o, err := Catch(func() (any, error) { return 5, nil }).Await(context.Background())
	if err != nil || !o.IsOk() || o.Value() != 5 {
		t.Fatalf("expected ok outcome with 5, got: ok=%v, val=%v, err=%v", o.IsOk(), o.Value(), err)
	}

	inner := tryto.Rejected[any](errors.New("y"))
	o, err = Catch(func() (any, error) { return inner, nil }).Await(context.Background())
	if err != nil || o.IsOk() || o.Err() == nil || o.Err().Error() != "y" {
		t.Fatalf("expected failed outcome 'y', got: ok=%v, err=%v awaitErr=%v", o.IsOk(), o.Err(), err)
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()
	v, err := From(7, nil).Await(context.Background())
	if err != nil || v != 7 {
		t.Fatalf("expected 7, got: val=%v, err=%v", v, err)
	}

	var got error
	From(tryto.Rejected[any](errors.New("z")), func(err error) any {
		got = err
		return nil
	}).Await(context.Background())
	if got == nil || got.Error() != "z" {
		t.Fatalf("callback must see 'z', got: %v", got)
	}
}

func TestDeprecatedAliases(t *testing.T) {
	t.Parallel()
	v, err := TryTo(func() (any, error) { return 2, nil }, nil).Await(context.Background())
	if err != nil || v != 2 {
		t.Fatalf("TryTo must behave like Try, got: val=%v, err=%v", v, err)
	}

	o, err := CatchTo(func() (any, error) { return nil, errors.New("old") }).Await(context.Background())
	if err != nil || o.IsOk() || o.Err().Error() != "old" {
		t.Fatalf("CatchTo must behave like Catch, got: ok=%v, err=%v", o.IsOk(), o.Err())
	}
}
