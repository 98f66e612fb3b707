// codes.go — severity and origin vocabulary for structured errors.
//
// Intent:
//   - Level (severity) and Type (origin) are orthogonal classifications.
//   - Both are stringly-typed; the string values are the stable vocabulary that
//     handlers and UI layers switch on and that travels through serialization.
//   - Unknown values are never rejected at construction; text unmarshaling is
//     the only strict entry point.
package structerr

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Level classifies how serious an error is.
type Level string

const (
	LevelFatal Level = "fatal"
	LevelError Level = "error"
	LevelWarn  Level = "warning"
)

// Type classifies where an error originated.
type Type string

const (
	TypeServer         Type = "server" // internal apis and server errors
	TypeAuth           Type = "auth"
	TypeUnknown        Type = "unknown"
	TypeUI             Type = "ui"
	TypeInput          Type = "input"          // unexpected or invalid user input
	TypeAPIBadResponse Type = "apiBadResponse" // unexpected response structure
	TypeAPI            Type = "api"            // third-party api
)

// Ordered listings. Unexported to avoid exposing mutable slice identity.
var (
	allLevels = []Level{LevelFatal, LevelError, LevelWarn}

	allTypes = []Type{
		TypeServer,
		TypeAuth,
		TypeUnknown,
		TypeUI,
		TypeInput,
		TypeAPIBadResponse,
		TypeAPI,
	}
)

// Levels returns a defensive copy of the known levels, most severe first.
func Levels() []Level {
	out := make([]Level, len(allLevels))
	copy(out, allLevels)
	return out
}

// Types returns a defensive copy of the known types in a stable order.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// String returns the wire value of l.
func (l Level) String() string { return string(l) }

// IsValid reports whether l is one of the known levels.
func (l Level) IsValid() bool {
	switch l {
	case LevelFatal, LevelError, LevelWarn:
		return true
	default:
		return false
	}
}

// Zerolog maps l onto the zerolog level its entries are written at.
// Unknown levels are written as errors.
func (l Level) Zerolog() zerolog.Level {
	switch l {
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// MarshalText encodes l as its wire value.
func (l Level) MarshalText() ([]byte, error) { return []byte(l), nil }

// UnmarshalText accepts only known levels; others yield a *ParseError.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// String returns the wire value of t.
func (t Type) String() string { return string(t) }

// IsValid reports whether t is one of the known types.
func (t Type) IsValid() bool {
	switch t {
	case TypeServer, TypeAuth, TypeUnknown, TypeUI, TypeInput, TypeAPIBadResponse, TypeAPI:
		return true
	default:
		return false
	}
}

// MarshalText encodes t as its wire value.
func (t Type) MarshalText() ([]byte, error) { return []byte(t), nil }

// UnmarshalText accepts only known types; others yield a *ParseError.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseError reports a value outside the known vocabulary.
type ParseError struct {
	Kind  string // "level" or "type"
	Value string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("structerr: unknown %s %q", e.Kind, e.Value)
}

// ParseLevel returns the Level spelled s. Matching is exact.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", &ParseError{Kind: "level", Value: s}
	}
	return l, nil
}

// ParseType returns the Type spelled s. Matching is exact.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", &ParseError{Kind: "type", Value: s}
	}
	return t, nil
}
