package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TK_DEBUG", "")
	assert.False(t, DebugEnabled())

	t.Setenv("TK_DEBUG", "1")
	assert.True(t, DebugEnabled())
}

func TestNewDebugLogger_DisabledReturnsNop(t *testing.T) {
	t.Setenv("TK_DEBUG", "")

	logger := NewDebugLogger()
	assert.Equal(t, Nop(), logger)
}

func TestWriterLogger_Debugf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)

	logger.Debugf("created task %s", "task_1")

	assert.Equal(t, "created task task_1\n", buf.String())
}

func TestNop_DiscardsOutput(t *testing.T) {
	// Must not panic with or without arguments.
	logger := Nop()
	logger.Debugf("ignored")
	logger.Debugf("ignored %d", 42)
}
