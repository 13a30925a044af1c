package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
		wantWarn  bool
	}{
		{name: "quiet", verbose: false, wantDebug: false, wantWarn: true},
		{name: "verbose", verbose: true, wantDebug: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.verbose, &buf)

			l.Debug("tier selected", "tier", "pipe")
			l.Info("document read")
			l.Warn("section missing", "section", "education")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("tier=pipe")))
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("document read")))
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("section=education")), out)
		})
	}
}

func TestSetup_InstallsDefault(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	Setup(true, &buf)
	slog.Debug("from default", "key", "value")

	assert.Contains(t, buf.String(), "key=value")
}
