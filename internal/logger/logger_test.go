package logger_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/logger"
)

func restore(t *testing.T) {
	original := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInit(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	lvl := logger.Init(&buf, "debug")

	assert.Equal(t, zerolog.DebugLevel, lvl)
	log.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestInit_UnknownLevel(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	lvl := logger.Init(&buf, "chatty")

	assert.Equal(t, zerolog.InfoLevel, lvl)
	assert.Contains(t, buf.String(), "Unknown log level")
	log.Debug().Msg("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestOpen(t *testing.T) {
	w, closeFn, err := logger.Open("", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "todos.log")
	w, closeFn, err = logger.Open(path, io.Discard)
	require.NoError(t, err)
	_, err = io.WriteString(w, "line\n")
	require.NoError(t, err)
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(b))
}
