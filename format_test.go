package structerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}

func TestFormat_Concise(t *testing.T) {
	t.Parallel()

	e := New(errors.New("net down"), WithType(TypeAPI))

	assert.Equal(t, "net down", fmt.Sprintf("%v", e))
	assert.Equal(t, "net down", fmt.Sprintf("%s", e))
	assert.Equal(t, `"net down"`, fmt.Sprintf("%q", e))

	var nilErr *Error
	assert.Equal(t, "<nil>", fmt.Sprintf("%v", nilErr))
	assert.Equal(t, "<nil>", fmt.Sprintf("%+v", nilErr))
}

func TestFormat_Verbose(t *testing.T) {
	t.Parallel()

	e := New(errors.New("net down"),
		WithID("billing.fetch"),
		WithType(TypeAPI),
		WithLevel(LevelWarn),
		WithPublicMessage("Billing is unavailable"),
		WithSilent(true),
		WithUserTriggered(true),
		WithPayload(map[string]int{"code": 502}),
	)
	e.MarkHandled()

	got := fmt.Sprintf("%+v", e)

	assert.True(t, containsInOrder(got,
		"name=Error level=warning type=api id=billing.fetch",
		`msg="Billing is unavailable"`,
		"\npublic: subject=\"\" message=\"Billing is unavailable\"",
		"\nflags: silent user_triggered handled",
		"\npayload: map[code:502]",
		"\ncause: net down",
		"\nstack:",
		"TestFormat_Verbose",
	), got)
}

func TestFormat_VerboseOmitsEmptySections(t *testing.T) {
	t.Parallel()

	got := fmt.Sprintf("%+v", New(nil))

	assert.True(t, strings.HasPrefix(got, `name=Error level=error type=unknown msg="Unknown error encountered."`), got)
	for _, absent := range []string{" id=", "\npublic:", "\nflags:", "\npayload:", "\ncause:"} {
		assert.NotContains(t, got, absent)
	}
	assert.Contains(t, got, "\nstack:")
}

func TestFormat_VerboseRecursesIntoCause(t *testing.T) {
	t.Parallel()

	inner := New("disk full", WithType(TypeServer))
	outer := New(inner, WithType(TypeUI))

	got := fmt.Sprintf("%+v", outer)
	assert.True(t, containsInOrder(got,
		"type=ui",
		"\ncause: name=Error level=error type=server",
		`msg="disk full"`,
		"\ncause: disk full",
	), got)
}
