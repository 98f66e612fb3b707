// stack.go — construction-site stack capture.
//
// Uses runtime.Callers + runtime.CallersFrames so inlined frames resolve
// correctly. Depth is bounded; capture happens once per construction.
package structerr

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is a single resolved call site.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified, e.g. pkg.(*T).Method
}

func (f Frame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}

// Stack is a list of frames, most recent call first.
type Stack []Frame

// String renders one frame per line.
func (s Stack) String() string {
	var sb strings.Builder
	for i, f := range s {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.String())
	}
	return sb.String()
}

const defaultMaxDepth = 64

// captureStackDefault captures up to defaultMaxDepth frames. With skip == 0
// the first frame is the function that called captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip+1, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames. With skip == 0 the first frame
// is the function that called captureStack.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +2 skips runtime.Callers and captureStack.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
