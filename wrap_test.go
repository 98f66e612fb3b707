package structerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, From(nil))
	assert.Nil(t, From(nil, WithLevel(LevelFatal)))
}

func TestFrom_PlainError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	e := From(cause, WithType(TypeServer))

	require.NotNil(t, e)
	assert.Equal(t, "connection reset", e.Error())
	assert.Equal(t, TypeServer, e.Type())
	assert.Same(t, cause, e.Original())
	assert.ErrorIs(t, e, cause)

	require.NotEmpty(t, e.Stack())
	assert.True(t, strings.HasSuffix(e.Stack()[0].Function, "TestFrom_PlainError"), e.Stack()[0].Function)
}

func TestFrom_ReusesStructuredErrorInChain(t *testing.T) {
	t.Parallel()

	se := New("x", WithLevel(LevelWarn))
	wrapped := fmt.Errorf("layer: %w", se)

	got := From(wrapped, WithSilent(true))

	assert.Same(t, se, got)
	assert.True(t, se.Silent())
	assert.Equal(t, LevelWarn, se.Level())
}

func TestFrom_DropsOuterWrapperText(t *testing.T) {
	t.Parallel()

	se := New("disk full")
	wrapped := fmt.Errorf("save profile: %w", se)

	got := From(wrapped)

	assert.Equal(t, "disk full", got.Error())
	assert.NotContains(t, got.Error(), "save profile")
	assert.Equal(t, "save profile: disk full", wrapped.Error())
}

func TestFrom_NoOptionsReturnsSameValue(t *testing.T) {
	t.Parallel()

	se := New("x")
	before := *se

	assert.Same(t, se, From(se))
	assert.Equal(t, before, *se)
}
