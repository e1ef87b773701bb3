package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		name  string
		quiet bool
		debug bool
		want  zerolog.Level
	}{
		{"default", false, false, zerolog.InfoLevel},
		{"quiet", true, false, zerolog.ErrorLevel},
		{"debug", false, true, zerolog.DebugLevel},
		{"debug wins", true, true, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Level(tt.quiet, tt.debug); got != tt.want {
				t.Errorf("Level(%v, %v) = %v, want %v", tt.quiet, tt.debug, got, tt.want)
			}
		})
	}
}

func TestOpenWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hucha.log")

	logger, closeFn, err := Open(path, zerolog.InfoLevel, false)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	componentLogger := Component(logger, "store")
	componentLogger.Info().Str("key", "savings.target").Msg("slot repaired")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var line map[string]any
	if err := json.Unmarshal(data, &line); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, data)
	}
	if line["component"] != "store" {
		t.Errorf("component = %v, want store", line["component"])
	}
	if line["message"] != "slot repaired" {
		t.Errorf("message = %v, want slot repaired", line["message"])
	}
	if _, ok := line["time"]; !ok {
		t.Error("log line missing timestamp")
	}
}

func TestOpenBelowLevelDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hucha.log")

	logger, closeFn, err := Open(path, zerolog.ErrorLevel, false)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	logger.Info().Msg("should not appear")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("log file = %q, want empty", data)
	}
}
