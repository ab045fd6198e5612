package tryto

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the structured result of a wrapped computation. Exactly one of
// value/err is meaningful: Ok and Err are the only constructors, so the two
// fields are mutually exclusive by construction.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsOk() bool {
	return o.ok
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
