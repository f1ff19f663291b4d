package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewModes(t *testing.T) {
	tests := []struct {
		mode  string
		debug bool
	}{
		{mode: "production", debug: false},
		{mode: "PROD", debug: false},
		{mode: "development", debug: true},
		{mode: "", debug: true},
	}
	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			l, err := New(tc.mode)
			if err != nil {
				t.Fatalf("New(%q): %v", tc.mode, err)
			}
			got := l.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel)
			if got != tc.debug {
				t.Errorf("debug enabled = %v, want %v", got, tc.debug)
			}
		})
	}
}

func TestNopWith(t *testing.T) {
	l := Nop().With("request_id", "abc")
	l.Info("ignored", "price", 1.5)
}
