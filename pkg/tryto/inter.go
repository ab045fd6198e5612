package tryto

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the computation failed
	Err() error
	// IsOk returns true if the computation succeeded
	IsOk() bool
}

// Thenable is the continuation-chaining capability that marks a value as
// deferred-like. OnSettled schedules fn to run once the value settles; it
// receives the boxed success value or the rejection error.
type Thenable interface {
	OnSettled(fn func(value any, err error))
}

// OnError consumes a captured error. The return value is discarded unless
// it is a Thenable, in which case the asynchronous wrappers wait for it to
// settle before producing their own result.
type OnError func(err error) any
