package obs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"stays/internal/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		wantDebug bool
		wantJSON  bool
	}{
		{name: "Default json info", cfg: config.LoggingConfig{Level: "info", Format: "json"}, wantJSON: true},
		{name: "Text debug", cfg: config.LoggingConfig{Level: "debug", Format: "text"}, wantDebug: true},
		{name: "Unknown level", cfg: config.LoggingConfig{Level: "chatty"}, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.cfg, &buf)

			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("debug enabled = %t, want %t", got, tt.wantDebug)
			}

			logger.Info("hello", "k", "v")
			if got := strings.HasPrefix(buf.String(), "{"); got != tt.wantJSON {
				t.Errorf("json output = %t, want %t: %s", got, tt.wantJSON, buf.String())
			}
		})
	}
}
