package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	// MaxSize is in MB; 1 is the smallest lumberjack allows.
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}

	require.NoError(t, InitWithFileConfig("debug", cfg, false))
	defer Sync()

	// Each JSON line is well over 200 bytes, so this exceeds 1MB.
	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("frame %d: %s", i, longMessage)
	}
	Sync()

	_, err := os.Stat(logFile)
	assert.NoError(t, err, "main log file should exist")

	files, err := os.ReadDir(tempDir)
	require.NoError(t, err)

	var logFiles []string
	for _, f := range files {
		if strings.HasPrefix(f.Name(), "test") && strings.Contains(f.Name(), ".log") {
			logFiles = append(logFiles, f.Name())
		}
	}
	t.Logf("Found %d log files: %v", len(logFiles), logFiles)
	assert.GreaterOrEqual(t, len(logFiles), 2, "expected rotation")

	for _, name := range logFiles {
		if name != "test.log" {
			// Rotated files look like test-YYYY-MM-DDTHH-MM-SS.SSS.log
			assert.Contains(t, name, "-20")
		}
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			cfg := FileConfig{Path: logFile, MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 1}
			require.NoError(t, InitWithFileConfig(tt.level, cfg, false))

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)
			logContent := string(content)

			for _, exp := range tt.expected {
				assert.Contains(t, logContent, `"level":"`+exp+`"`)
			}
			for _, exc := range tt.excluded {
				assert.NotContains(t, logContent, `"level":"`+exc+`"`)
			}
		})
	}
}

func TestEntriesCarryRunID(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 1}, false))

	Info("setup complete", zap.Int("vertices", 24))
	Named("renderer").Info("program linked")
	Sync()

	f, err := os.Open(logFile)
	require.NoError(t, err)
	defer f.Close()

	_, err = uuid.Parse(RunID)
	require.NoError(t, err)

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		assert.Equal(t, RunID, entry["run"])
		if n, ok := entry["logger"].(string); ok {
			names = append(names, n)
		}
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"renderer"}, names)
}

func TestCallerPointsAtCallSite(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "caller.log")
	require.NoError(t, InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 1}, false))

	Info("wrapped")
	Sugar.Info("sugared")
	Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), "logger/logger_test.go"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("ERROR"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	assert.Equal(t, "/tmp/test.log", cfg.Path)
	assert.Equal(t, 20, cfg.MaxSizeMB)
	assert.Equal(t, 3, cfg.MaxBackups)
	assert.Equal(t, 7, cfg.MaxAgeDays)
	assert.True(t, cfg.Compress)
}
