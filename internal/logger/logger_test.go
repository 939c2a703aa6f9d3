package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects logger output to a buffer for testing.
// Returns the buffer and a cleanup function to restore original output.
func captureOutput() (*bytes.Buffer, func()) {
	buf := new(bytes.Buffer)

	mu.Lock()
	originalOutput := output
	originalColor := useColor
	output = buf
	useColor = false // Disable colors for easier testing
	mu.Unlock()

	reconfigure()

	cleanup := func() {
		mu.Lock()
		output = originalOutput
		useColor = originalColor
		mu.Unlock()
		reconfigure()
	}

	return buf, cleanup
}

func TestLevelFiltering(t *testing.T) {
	t.Run("DebugLevelShowsAllMessages", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("DEBUG")

		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")

		output := buf.String()
		assert.Contains(t, output, "debug message")
		assert.Contains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("InfoLevelFiltersDebug", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("INFO")

		Debug("debug message")
		Info("info message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.Contains(t, output, "info message")
	})

	t.Run("ErrorLevelShowsOnlyErrors", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("ERROR")

		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.NotContains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("InvalidLevelIgnored", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("INFO")
		SetLevel("VERBOSE") // no such level, stays at INFO

		Debug("debug message")
		Info("info message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.Contains(t, output, "info message")
	})
}

func TestStructuredFields(t *testing.T) {
	buf, cleanup := captureOutput()
	defer cleanup()

	SetLevel("INFO")
	SetFormat("text")

	Info("survey created", SurveyID("s-1"), GroupID("g-1"), Status(201))

	output := buf.String()
	assert.Contains(t, output, "survey_id=s-1")
	assert.Contains(t, output, "group_id=g-1")
	assert.Contains(t, output, "status=201")
}

func TestJSONFormat(t *testing.T) {
	buf, cleanup := captureOutput()
	defer cleanup()

	SetLevel("INFO")
	SetFormat("json")
	defer SetFormat("text")

	Info("request completed", Method("GET"), Route("/v1/surveys"), DurationMs(1.5))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "request completed", record["msg"])
	assert.Equal(t, "GET", record[KeyMethod])
	assert.Equal(t, "/v1/surveys", record[KeyRoute])
	assert.Equal(t, 1.5, record[KeyDurationMs])
}

func TestErr(t *testing.T) {
	t.Run("NilErrorDropped", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("INFO")
		Info("no failure", Err(nil))

		assert.NotContains(t, buf.String(), "error=")
	})

	t.Run("ErrorRendered", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("INFO")
		Info("failure", Err(errors.New("boom")))

		assert.Contains(t, buf.String(), "error=boom")
	})
}

func TestContextLogging(t *testing.T) {
	t.Run("ContextFieldsPrepended", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("INFO")

		lc := NewLogContext("PUT", "10.0.0.1:4242").
			WithRequestID("req-1").
			WithRoute("/v1/surveys/{surveyId}").
			WithPrincipal("user-1", "group-1")
		ctx := WithContext(context.Background(), lc)

		InfoCtx(ctx, "survey updated", SurveyID("s-1"))

		output := buf.String()
		assert.Contains(t, output, "request_id=req-1")
		assert.Contains(t, output, "method=PUT")
		assert.Contains(t, output, "route=/v1/surveys/{surveyId}")
		assert.Contains(t, output, "remote_addr=10.0.0.1:4242")
		assert.Contains(t, output, "user_id=user-1")
		assert.Contains(t, output, "group_id=group-1")
		assert.Contains(t, output, "survey_id=s-1")
	})

	t.Run("NoContextNoExtraFields", func(t *testing.T) {
		buf, cleanup := captureOutput()
		defer cleanup()

		SetLevel("INFO")
		InfoCtx(context.Background(), "plain message")

		output := buf.String()
		assert.Contains(t, output, "plain message")
		assert.NotContains(t, output, "request_id=")
	})

	t.Run("CloneDoesNotAliasOriginal", func(t *testing.T) {
		lc := NewLogContext("GET", "10.0.0.1:4242")
		clone := lc.WithPrincipal("user-1", "group-1")

		assert.Empty(t, lc.UserID)
		assert.Equal(t, "user-1", clone.UserID)
		assert.Equal(t, lc.RemoteAddr, clone.RemoteAddr)
	})

	t.Run("NilContextSafe", func(t *testing.T) {
		var lc *LogContext
		assert.Nil(t, lc.Clone())
		assert.Nil(t, lc.WithRoute("/v1/surveys"))
		assert.Zero(t, lc.DurationMs())
		assert.Nil(t, FromContext(nil))
	})
}

func TestInit(t *testing.T) {
	t.Run("FileOutput", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "surveyd.log")

		require.NoError(t, Init(Config{Level: "INFO", Format: "text", Output: path}))
		defer func() {
			// Restore stdout output for subsequent tests
			require.NoError(t, Init(Config{Output: "stdout"}))
		}()

		Info("written to file")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "written to file")
	})

	t.Run("BadFilePath", func(t *testing.T) {
		err := Init(Config{Output: "/nonexistent-dir/surveyd.log"})
		assert.Error(t, err)
	})
}

func TestWith(t *testing.T) {
	buf, cleanup := captureOutput()
	defer cleanup()

	SetLevel("INFO")

	l := With(KeyComponent, "store")
	l.Info("migration complete")

	output := buf.String()
	assert.Contains(t, output, "component=store")
	assert.Contains(t, output, "migration complete")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestTextHandlerFormatting(t *testing.T) {
	buf, cleanup := captureOutput()
	defer cleanup()

	SetLevel("INFO")
	SetFormat("text")

	Info("formatted", Count(3), DurationMs(0.25))

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "["), "expected timestamp prefix, got %q", line)
	assert.Contains(t, line, "count=3")
	assert.Contains(t, line, "duration_ms=0.250")
}
