package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minifsm/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("transition", slog.String("name", "start"), slog.Int("n", 2))
	require.Equal(t, "transition", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "name", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestMachineAttrs(t *testing.T) {
	type state string

	id := logger.MachineID("m-1")
	assert.Equal(t, "machine_id", id.Key)
	assert.Equal(t, "m-1", id.Value.String())

	tr := logger.Transition("start")
	assert.Equal(t, "transition", tr.Key)
	assert.Equal(t, "start", tr.Value.String())

	st := logger.State("from", state("idle"))
	assert.Equal(t, "from", st.Key)
	assert.Equal(t, slog.KindString, st.Value.Kind())
	assert.Equal(t, "idle", st.Value.String())

	c := logger.Component("fsmrun")
	assert.Equal(t, "component", c.Key)
	assert.Equal(t, "fsmrun", c.Value.String())
}
