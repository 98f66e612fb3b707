// error.go — the structured error value and its read surface.
//
// An *Error augments a cause (any value: an error, a string, or something
// else entirely) with classification metadata that the rest of an
// application's reporting pipeline switches on:
//   - Level and Type classify severity and origin.
//   - PublicMessage / PublicSubject carry end-user-safe text.
//   - Silent asks presenters to suppress notification.
//   - Logger names where the entry SHOULD be written; nothing is logged here.
//
// Interop:
//   - Unwrap exposes the cause when it is an error, so errors.Is/As traverse it.
//   - Fields are unexported; callers read through getters and change state only
//     through Amend and MarkHandled.
package structerr

const (
	// DefaultMessage is used when neither the options nor the cause provide text.
	DefaultMessage = "Unknown error encountered."

	// DefaultName is reported when the cause does not advertise a name.
	DefaultName = "Error"
)

// Namer is implemented by errors that advertise a name. Go errors carry no
// name by default; *Error implements Namer so names survive re-wrapping.
type Namer interface {
	Name() string
}

// Error is the structured error. Always use it as *Error.
//
// An *Error is owned by whoever holds it. Amend and MarkHandled mutate in
// place and are meant for sequential annotation as the error travels up the
// call stack; they are not safe for concurrent use.
type Error struct {
	msg  string
	name string

	id              string
	isUserTriggered bool
	level           Level
	typ             Type
	logger          Logger
	payload         any
	publicMessage   string
	publicSubject   string
	silent          bool

	original  any
	isHandled bool
	stk       Stack
}

// Error returns the resolved message. It never returns an empty string for a
// constructed value.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.msg
}

// Unwrap returns the original cause when it is an error, nil otherwise.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.original.(error); ok {
		return err
	}
	return nil
}

// Getters are nil-safe. A nil *Error reads as zero values, except Name, Level
// and Type, which report their defaults.

// Message returns the resolved message, the same text as Error.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.msg
}

// Name returns the cause's name, or DefaultName.
func (e *Error) Name() string {
	if e == nil {
		return DefaultName
	}
	return e.name
}

// ID returns the call-site slug, if any.
func (e *Error) ID() string {
	if e == nil {
		return ""
	}
	return e.id
}

// IsUserTriggered reports whether a direct user interaction raised the error.
func (e *Error) IsUserTriggered() bool {
	return e != nil && e.isUserTriggered
}

// Level returns the severity; LevelError on a nil receiver.
func (e *Error) Level() Level {
	if e == nil {
		return LevelError
	}
	return e.level
}

// Type returns the origin; TypeUnknown on a nil receiver.
func (e *Error) Type() Type {
	if e == nil {
		return TypeUnknown
	}
	return e.typ
}

// Logger returns where the error's entry belongs.
func (e *Error) Logger() Logger {
	if e == nil {
		return nil
	}
	return e.logger
}

// Payload returns the opaque diagnostic data, if any.
func (e *Error) Payload() any {
	if e == nil {
		return nil
	}
	return e.payload
}

// PublicMessage returns the end-user-safe message, if any.
func (e *Error) PublicMessage() string {
	if e == nil {
		return ""
	}
	return e.publicMessage
}

// PublicSubject returns the end-user-safe subject, if any.
func (e *Error) PublicSubject() string {
	if e == nil {
		return ""
	}
	return e.publicSubject
}

// Silent reports whether presenters should skip user notification.
func (e *Error) Silent() bool {
	return e != nil && e.silent
}

// Original returns the raw cause passed to New, without coercion. It may be nil.
func (e *Error) Original() any {
	if e == nil {
		return nil
	}
	return e.original
}

// IsHandled reports whether a handler has already processed this error.
func (e *Error) IsHandled() bool {
	return e != nil && e.isHandled
}

// MarkHandled records that a handler processed this error. It is the only way
// IsHandled becomes true.
func (e *Error) MarkHandled() {
	if e == nil {
		return
	}
	e.isHandled = true
}

// Stack returns the frames captured at construction, most recent first.
func (e *Error) Stack() Stack {
	if e == nil {
		return nil
	}
	return e.stk
}

// Interface conformance guards.
var (
	_ error = (*Error)(nil)
	_ Namer = (*Error)(nil)
)
