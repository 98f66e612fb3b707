// format.go — fmt.Formatter for *Error.
//
//   %s, %v   → the message (Error()).
//   %q       → quoted message.
//   %+v      → verbose, multi-line:
//                name=<name> level=<level> type=<type> [id=<id>] msg="<message>"
//                public: subject="<s>" message="<m>"
//                flags: silent user_triggered handled
//                payload: <%+v of payload>
//                cause: <%+v of original>
//                stack:
//                  funcA file.go:123
package structerr

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter; see the verb table above.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e != nil {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *Error) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "name=%s level=%s type=%s", e.name, e.level, e.typ)
	if e.id != "" {
		_, _ = fmt.Fprintf(w, " id=%s", e.id)
	}
	_, _ = fmt.Fprintf(w, " msg=%q", e.msg)

	if e.publicSubject != "" || e.publicMessage != "" {
		_, _ = fmt.Fprintf(w, "\npublic: subject=%q message=%q", e.publicSubject, e.publicMessage)
	}

	if e.silent || e.isUserTriggered || e.isHandled {
		_, _ = io.WriteString(w, "\nflags:")
		if e.silent {
			_, _ = io.WriteString(w, " silent")
		}
		if e.isUserTriggered {
			_, _ = io.WriteString(w, " user_triggered")
		}
		if e.isHandled {
			_, _ = io.WriteString(w, " handled")
		}
	}

	if e.payload != nil {
		_, _ = fmt.Fprintf(w, "\npayload: %+v", e.payload)
	}

	// Recurse with %+v so nested *Error causes render verbosely too.
	if e.original != nil {
		_, _ = fmt.Fprintf(w, "\ncause: %+v", e.original)
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s", fr)
		}
	}
}
