package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDefaultLoggerIsUsable(t *testing.T) {
	assert.NotPanics(t, func() {
		Log.Info("noop logger", zap.String("k", "v"))
	})
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("release") })

	SetLevel("debug")
	assert.Equal(t, zap.DebugLevel, Level())

	SetLevel("release")
	assert.Equal(t, zap.InfoLevel, Level())
}
