// options.go — functional options shared by New and Amend.
//
// Every option sets exactly one field and records that it was supplied, so
// the same list can be replayed as a shallow merge over defaults (New) or
// over an existing value (Amend). There is deliberately no option for the
// message, name, original cause or handled flag.
package structerr

// Option configures an Error during New or Amend.
type Option func(*options)

// field bits mark which options were supplied.
type field uint16

const (
	fieldID field = 1 << iota
	fieldUserTriggered
	fieldLevel
	fieldType
	fieldLogger
	fieldPayload
	fieldPublicMessage
	fieldPublicSubject
	fieldSilent
)

type options struct {
	set field

	id              string
	isUserTriggered bool
	level           Level
	typ             Type
	logger          Logger
	payload         any
	publicMessage   string
	publicSubject   string
	silent          bool
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o *options) has(f field) bool { return o.set&f != 0 }

// applyTo copies every supplied field onto e and leaves the rest untouched.
func (o *options) applyTo(e *Error) {
	if o.has(fieldID) {
		e.id = o.id
	}
	if o.has(fieldUserTriggered) {
		e.isUserTriggered = o.isUserTriggered
	}
	if o.has(fieldLevel) {
		e.level = o.level
	}
	if o.has(fieldType) {
		e.typ = o.typ
	}
	if o.has(fieldLogger) {
		e.logger = o.logger
	}
	if o.has(fieldPayload) {
		e.payload = o.payload
	}
	if o.has(fieldPublicMessage) {
		e.publicMessage = o.publicMessage
	}
	if o.has(fieldPublicSubject) {
		e.publicSubject = o.publicSubject
	}
	if o.has(fieldSilent) {
		e.silent = o.silent
	}
}

// WithID sets the slug identifying the call site that raised the error.
func WithID(id string) Option {
	return func(o *options) { o.id = id; o.set |= fieldID }
}

// WithUserTriggered marks the error as raised from a direct user interaction.
func WithUserTriggered(v bool) Option {
	return func(o *options) { o.isUserTriggered = v; o.set |= fieldUserTriggered }
}

// WithLevel sets the severity.
func WithLevel(l Level) Option {
	return func(o *options) { o.level = l; o.set |= fieldLevel }
}

// WithType sets the origin classification.
func WithType(t Type) Option {
	return func(o *options) { o.typ = t; o.set |= fieldType }
}

// WithLogger overrides the default logger. A nil logger is stored as given.
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l; o.set |= fieldLogger }
}

// WithPayload attaches arbitrary diagnostic data. The value is stored as is.
func WithPayload(v any) Option {
	return func(o *options) { o.payload = v; o.set |= fieldPayload }
}

// WithPublicMessage sets end-user-safe text shown instead of the raw message.
func WithPublicMessage(msg string) Option {
	return func(o *options) { o.publicMessage = msg; o.set |= fieldPublicMessage }
}

// WithPublicSubject sets an end-user-safe subject. It wins over the public
// message when New resolves the message.
func WithPublicSubject(subject string) Option {
	return func(o *options) { o.publicSubject = subject; o.set |= fieldPublicSubject }
}

// WithSilent asks presentation layers not to notify the user.
func WithSilent(v bool) Option {
	return func(o *options) { o.silent = v; o.set |= fieldSilent }
}
