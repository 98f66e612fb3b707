// predicates.go — classification helpers over arbitrary values and errors.
//
// Scope:
//   - IsError / IsStructured answer "what is this value" for any input and
//     never panic.
//   - The chain helpers (As, LevelOf, TypeOf, IsSilent, PublicText) use
//     errors.As so they see through fmt.Errorf("%w") and errors.Join.
package structerr

import (
	"errors"
	"reflect"
)

// IsError reports whether v is an error holding a usable value. Typed nils,
// such as a nil *MyErr stored in an error interface, do not count.
func IsError(v any) bool {
	err, ok := v.(error)
	return ok && !isNilError(err)
}

// isNilError reports whether err is nil or wraps a nil pointer, map, slice,
// func, chan or interface.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	if se, ok := err.(*Error); ok {
		return se == nil
	}
	rv := reflect.ValueOf(err)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsStructured reports whether v itself is a non-nil *Error. Wrapped values do
// not count; use As to search a chain.
func IsStructured(v any) bool {
	e, ok := v.(*Error)
	return ok && e != nil
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// LevelOf returns the level of the first *Error in err's chain, or LevelError
// when there is none.
func LevelOf(err error) Level {
	if e, ok := As(err); ok {
		return e.level
	}
	return LevelError
}

// TypeOf returns the type of the first *Error in err's chain, or TypeUnknown.
func TypeOf(err error) Type {
	if e, ok := As(err); ok {
		return e.typ
	}
	return TypeUnknown
}

// IsSilent reports whether the first *Error in err's chain asks for no user
// notification. Plain errors are never silent.
func IsSilent(err error) bool {
	e, ok := As(err)
	return ok && e.silent
}

// PublicText returns the end-user-safe text of the first *Error in err's
// chain: the public subject, else the public message, else "".
func PublicText(err error) string {
	e, ok := As(err)
	if !ok {
		return ""
	}
	if e.publicSubject != "" {
		return e.publicSubject
	}
	return e.publicMessage
}
