// doc.go — package documentation for xgx-structerr
//
// Package structerr provides a single structured error type that carries
// classification metadata alongside a cause: severity (Level), origin (Type),
// end-user-safe text, a silent flag, an opaque payload, a handled flag, and the
// Logger the error's entry belongs to. It is a pure data contract: handlers,
// presenters and loggers live elsewhere and read these fields.
//
// # Construction
//
// New accepts any cause (nil, an error, a string, anything) and a list of
// options merged over documented defaults:
//
//	err := structerr.New(resp.Err,
//	    structerr.WithID("billing.fetch-invoice"),
//	    structerr.WithType(structerr.TypeAPI),
//	    structerr.WithPayload(map[string]any{"code": 502}),
//	)
//
// Defaults: LevelError, TypeUnknown, not user triggered, not silent, and
// DefaultLogger. The message is resolved once, in priority order:
//
//	+---+------------------------------------------+
//	| 1 | public subject (WithPublicSubject)       |
//	| 2 | public message (WithPublicMessage)       |
//	| 3 | cause.Error() when the cause is an error |
//	| 4 | the cause itself when it is a string     |
//	| 5 | DefaultMessage                           |
//	+---+------------------------------------------+
//
// Empty strings fall through to the next row. The name is the cause's Name()
// when the cause is an error implementing Namer, otherwise DefaultName;
// options cannot change it.
//
// # Progressive annotation
//
// Amend merges more options onto an existing error in place, so each layer
// can add what it knows while the error travels up:
//
//	if se, ok := structerr.As(err); ok {
//	    se.Amend(structerr.WithUserTriggered(true), structerr.WithLevel(structerr.LevelWarn))
//	}
//
// Amend never touches the message, name, cause, stack or handled flag. It
// mutates the receiver; do not share an *Error across goroutines while
// amending it.
//
// # Handling
//
// A handler calls MarkHandled once it has processed an error. Logger() names
// the destination for the entry; Level.Zerolog maps severity onto zerolog, and
// *Error implements zerolog.LogObjectMarshaler.
//
// # Formatting
//
//   - %v, %s → message
//   - %q     → quoted message
//   - %+v    → name, level, type, id, public text, flags, payload, cause, stack
//
// # Interop
//
// Unwrap exposes the cause when it is an error, so errors.Is and errors.As
// see through an *Error. As, LevelOf, TypeOf, IsSilent and PublicText search a
// chain; IsError and IsStructured classify a single value.
package structerr
