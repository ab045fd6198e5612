package tryto

// IsDeferred reports whether v is deferred-like: non-nil and exposing the
// Thenable continuation surface. It never fails; absence of the capability
// yields false.
func IsDeferred(v any) bool {
	if IsNil(v) {
		return false
	}
	_, ok := v.(Thenable)
	return ok
}
