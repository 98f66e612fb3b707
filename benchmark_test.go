package structerr

import (
	"errors"
	"io"
	"testing"
)

func BenchmarkNew(b *testing.B) {
	cause := errors.New("boom")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(cause, WithType(TypeServer))
	}
}

func BenchmarkAmend(b *testing.B) {
	e := New("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Amend(WithLevel(LevelWarn), WithPayload(i))
	}
}

func BenchmarkLog(b *testing.B) {
	lg := NewLogger(io.Discard, Namespace)
	e := New(errors.New("boom"), WithType(TypeAPI))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lg.Log(e.Level(), "request failed", "err", e, "attempt", i)
	}
}
