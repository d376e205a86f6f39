package core

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTime struct{ now float64 }

func (f *fakeTime) read() float64 { return f.now }

func TestFrameClockFirstTickIsZero(t *testing.T) {
	src := &fakeTime{now: 12.5}
	c := NewFrameClock(src.read, 0)

	assert.Equal(t, float32(0), c.Tick())
	assert.Equal(t, float32(12.5), c.Time())
}

func TestFrameClockDelta(t *testing.T) {
	src := &fakeTime{}
	c := NewFrameClock(src.read, 0.25)
	c.Tick()

	src.now = 0.125
	assert.Equal(t, float32(0.125), c.Tick())
	assert.Equal(t, float32(0.125), c.Delta())

	src.now = 10
	assert.Equal(t, float32(0.25), c.Tick(), "stall is capped")

	src.now = 9
	assert.Equal(t, float32(0), c.Tick(), "time going backwards")
}

func TestFrameClockUncapped(t *testing.T) {
	src := &fakeTime{}
	c := NewFrameClock(src.read, 0)
	c.Tick()
	src.now = 3
	assert.Equal(t, float32(3), c.Tick())
}

func TestTypedErrors(t *testing.T) {
	ioErr := error(&IOError{Path: "a.frag", Err: fs.ErrNotExist})
	assert.ErrorIs(t, ioErr, fs.ErrNotExist)
	assert.Contains(t, ioErr.Error(), "a.frag")

	assetErr := error(&AssetLoadError{Path: "m.fbx", Err: ErrUnsupportedFormat})
	assert.ErrorIs(t, assetErr, ErrUnsupportedFormat)

	var ce *CompileError
	err := error(&CompileError{Stage: "fragment", Path: "toon.frag", Log: "0:12: syntax error"})
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "fragment shader toon.frag: compile failed: 0:12: syntax error", err.Error())

	assert.Equal(t, "program link failed: missing main", (&LinkError{Log: "missing main"}).Error())
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)
	require.NoError(t, ConfigureLogging("test", "warn"))

	LogInfo("hidden %d", 1)
	LogWarn("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "test")

	assert.Error(t, ConfigureLogging("test", "loud"))
	require.NoError(t, ConfigureLogging("", "info"))
}
