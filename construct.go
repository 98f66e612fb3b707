// construct.go — constructors and the in-place option merge.
//
// Construction never fails: every field has a default, the message falls back
// to DefaultMessage, and the name falls back to DefaultName. Nothing is logged.
//
// Stacks are captured on every construction and start at the caller of the
// public constructor (the constructor's own frames are skipped).
package structerr

import "fmt"

// New builds an *Error around original, which may be nil, an error, a string,
// or any other value. Options are merged over the defaults: level error, type
// unknown, not user triggered, not silent, and DefaultLogger.
//
// The message is the first non-empty of: public subject, public message, the
// cause's Error() text (errors) or the cause itself (strings), DefaultMessage.
// The name comes from the cause when it is an error implementing Namer and is
// never taken from options. IsHandled starts false.
func New(original any, opts ...Option) *Error {
	return build(original, 1, opts)
}

// Newf builds an *Error whose cause is the formatted string.
func Newf(format string, args ...any) *Error {
	return build(fmt.Sprintf(format, args...), 1, nil)
}

// Amend merges opts onto e in place and returns e for chaining. Only supplied
// fields change; message, name, original cause, stack and the handled flag are
// never touched. Values are not validated. A nil receiver is a no-op.
func (e *Error) Amend(opts ...Option) *Error {
	if e == nil || len(opts) == 0 {
		return e
	}
	o := collect(opts)
	o.applyTo(e)
	return e
}

// build is the shared constructor. skip counts the frames above build that
// belong to the public constructor and must not appear in the stack.
func build(original any, skip int, opts []Option) *Error {
	o := collect(opts)

	e := &Error{
		level:  LevelError,
		typ:    TypeUnknown,
		logger: DefaultLogger(),
	}
	o.applyTo(e)

	e.msg = resolveMessage(original, &o)
	e.name = resolveName(original)
	e.original = original
	e.isHandled = false
	e.stk = captureStackDefault(skip + 1) // +1 for build
	return e
}

func resolveMessage(original any, o *options) string {
	if o.publicSubject != "" {
		return o.publicSubject
	}
	if o.publicMessage != "" {
		return o.publicMessage
	}
	switch v := original.(type) {
	case error:
		if isNilError(v) {
			break
		}
		if msg := errorText(v); msg != "" {
			return msg
		}
	case string:
		if v != "" {
			return v
		}
	}
	return DefaultMessage
}

func resolveName(original any) string {
	err, ok := original.(error)
	if !ok || isNilError(err) {
		return DefaultName
	}
	n, ok := err.(Namer)
	if !ok {
		return DefaultName
	}
	if name := namerText(n); name != "" {
		return name
	}
	return DefaultName
}

// errorText calls err.Error() and reports "" if it panics.
func errorText(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()
	return err.Error()
}

func namerText(n Namer) (name string) {
	defer func() {
		if recover() != nil {
			name = ""
		}
	}()
	return n.Name()
}
