// logger.go — the logging capability an *Error points at.
//
// The package never writes log entries on its own. It stores a Logger on each
// error (the namespaced default unless WithLogger overrides it) so whoever
// handles the error knows where the entry belongs.
package structerr

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Namespace tags entries written through the default logger.
const Namespace = "EH"

// Logger accepts severity-tagged entries. kv holds alternating key/value
// pairs; a non-string key drops the pair.
type Logger interface {
	Log(level Level, msg string, kv ...any)
}

type zerologLogger struct {
	zl zerolog.Logger
}

// NewLogger returns a Logger writing JSON lines to w through zerolog, with a
// timestamp and a "namespace" field on every entry. An empty namespace omits
// the field.
func NewLogger(w io.Writer, namespace string) Logger {
	ctx := zerolog.New(w).With().Timestamp()
	if namespace != "" {
		ctx = ctx.Str("namespace", namespace)
	}
	return &zerologLogger{zl: ctx.Logger()}
}

// NewZerologLogger adapts an existing zerolog.Logger.
func NewZerologLogger(zl zerolog.Logger) Logger {
	return &zerologLogger{zl: zl}
}

// NopLogger returns a Logger that discards every entry.
func NopLogger() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

var defaultLogger = sync.OnceValue(func() Logger {
	return NewLogger(os.Stderr, Namespace)
})

// DefaultLogger returns the logger errors carry when none is supplied. It
// writes to stderr under Namespace and is built once.
func DefaultLogger() Logger { return defaultLogger() }

// Log writes one entry. LevelFatal is recorded at zerolog's fatal level
// without exiting the process.
func (l *zerologLogger) Log(level Level, msg string, kv ...any) {
	ev := l.zl.WithLevel(level.Zerolog())
	if ev == nil {
		return
	}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		var val any
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		switch v := val.(type) {
		case *Error:
			ev = ev.Object(key, v)
		case error:
			ev = ev.AnErr(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	ev.Msg(msg)
}

// MarshalZerologObject lets an *Error be attached to any zerolog entry, e.g.
// log.Error().Object("err", e).Send().
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	if e == nil {
		return
	}
	ev.Str("level", string(e.level)).
		Str("type", string(e.typ)).
		Str("name", e.name).
		Str("message", e.msg)
	if e.id != "" {
		ev.Str("id", e.id)
	}
	if e.publicSubject != "" {
		ev.Str("public_subject", e.publicSubject)
	}
	if e.publicMessage != "" {
		ev.Str("public_message", e.publicMessage)
	}
	ev.Bool("silent", e.silent).
		Bool("user_triggered", e.isUserTriggered).
		Bool("handled", e.isHandled)
	if e.payload != nil {
		ev.Interface("payload", e.payload)
	}
	switch cause := e.original.(type) {
	case nil:
	case *Error:
		ev.Object("cause", cause)
	case error:
		ev.AnErr("cause", cause)
	default:
		ev.Interface("cause", cause)
	}
}

var _ zerolog.LogObjectMarshaler = (*Error)(nil)
