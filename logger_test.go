package main

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	info := NewLogger(slog.LevelInfo)
	if info.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("info logger should drop debug records")
	}
	dbg := NewLogger(slog.LevelDebug)
	if !dbg.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("debug logger should accept debug records")
	}
}
