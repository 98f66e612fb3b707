// payload.go — typed access to the opaque diagnostic payload.
package structerr

// PayloadAs returns e's payload as T. It reports false when e is nil, the
// payload is absent, or its dynamic type is not exactly T.
func PayloadAs[T any](e *Error) (T, bool) {
	var zero T
	if e == nil || e.payload == nil {
		return zero, false
	}
	v, ok := e.payload.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
