// Package modes selects a concrete wrapper by mode tag. SelectTry and
// SelectCatch are pure lookups: no handler runs at selection time, and an
// unknown tag fails fast with ErrUnsupportedMode.
//
// Both modes share one deferred-returning signature so the selected
// function has a single shape: the sync variant runs the handler inline
// and its Deferred is settled on return, the async variant launches the
// handler on its own goroutine via tryto.Go.
package modes
