package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/sanaresoma/sanaresoma-backend/internal/config"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "debug", Format: "json"}, "sanaresoma-test", &buf)

	logger.WithField("task", "motivational_message").Debug("dispatched")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["task"] != "motivational_message" {
		t.Fatalf("missing task field in %v", entry)
	}
	if entry["level"] != "debug" {
		t.Fatalf("unexpected level %v", entry["level"])
	}
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "loud"}, "sanaresoma-test", &buf)

	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", logger.GetLevel())
	}
	logger.Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("expected text formatted line, got %q", buf.String())
	}
}
