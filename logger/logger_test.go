package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Levels are tagged", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("carved")
		l.Warning("slow lock")
		l.Error("save failed")

		out := buf.String()
		assert.Contains(t, out, "[MAZE]")
		assert.Contains(t, out, "[INFO]"+LogColorReset+" carved")
		assert.Contains(t, out, "[WARNING]"+LogColorReset+" slow lock")
		assert.Contains(t, out, "[ERROR]"+LogColorReset+" save failed")
	})

	t.Run("Empty prefix", func(t *testing.T) {
		l, err := New("", ColorCyan, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)
		assert.Nil(t, l)
	})
}
