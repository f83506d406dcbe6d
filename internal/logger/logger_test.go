package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKV(t *testing.T) {
	t.Run("no pairs", func(t *testing.T) {
		assert.Equal(t, "hello", formatKV("hello", nil))
	})

	t.Run("even pairs", func(t *testing.T) {
		out := formatKV("request", []interface{}{"method", "GET", "status", 200})
		assert.Equal(t, "request method=GET status=200", out)
	})

	t.Run("dangling key", func(t *testing.T) {
		out := formatKV("oops", []interface{}{"key"})
		assert.Equal(t, "oops key", out)
	})
}

func TestInfoWritesToBuffer(t *testing.T) {
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", 0)

	Info("member registered", "gym", "GYM001")

	assert.True(t, strings.HasPrefix(buf.String(), "INFO: "))
	assert.Contains(t, buf.String(), "member registered gym=GYM001")
}
