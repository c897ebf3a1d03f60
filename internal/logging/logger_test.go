package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	for level, expected := range map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"DEBUG":   logrus.DebugLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"info":    logrus.InfoLevel,
		"trace":   logrus.TraceLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"":        logrus.InfoLevel,
		"bogus":   logrus.InfoLevel,
	} {
		assert.Equal(t, expected, GetLevel(level), level)
	}
}

func TestSetup_Stdout(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	buf := &bytes.Buffer{}
	Setup(LoggerSetupParams{
		LogLevel:      "debug",
		LogFormatJSON: true,
		Stdout:        buf,
	})

	logrus.Debugf("hello %s", "there")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.Contains(t, buf.String(), `"msg":"hello there"`)
}

func TestSetup_FileAndStdout(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	buf := &bytes.Buffer{}
	logFile := filepath.Join(t.TempDir(), "postclient")
	Setup(LoggerSetupParams{
		LogFileName: logFile,
		LogToStdout: true,
		LogLevel:    "info",
		Stdout:      buf,
	})

	logrus.Infoln("to both")
	logrus.Debugln("filtered out")

	fileContent, err := os.ReadFile(logFile + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(fileContent), "to both")
	assert.NotContains(t, string(fileContent), "filtered out")
	assert.Contains(t, buf.String(), "to both")
}

func TestSentryHook_Levels(t *testing.T) {
	levels := []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel}
	hook := NewSentryHook(levels)
	assert.Equal(t, levels, hook.Levels())
}

func TestSentryLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.FatalLevel))
	assert.Equal(t, sentry.LevelError, sentryLevel(logrus.ErrorLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelInfo, sentryLevel(logrus.InfoLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(logrus.TraceLevel))
}
