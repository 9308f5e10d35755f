// File path: internal/common/log_test.go
package common

import (
	"fmt"
	"log/slog"
	"testing"
	"time"
)

func TestLoggerCapturesHistory(t *testing.T) {
	Logger().Info("workflow: test entry recorded", "files", 3)
	entries := LogEntries()
	if len(entries) == 0 {
		t.Fatalf("expected captured entries")
	}
	last := entries[len(entries)-1]
	if last.Message != "workflow: test entry recorded" || last.Level != "info" {
		t.Fatalf("unexpected entry: %+v", last)
	}
	if last.Component != "workflow" {
		t.Fatalf("component prefix not extracted: %+v", last)
	}
	if last.Attributes["files"].(int64) != 3 {
		t.Fatalf("attributes not captured: %+v", last.Attributes)
	}
}

func TestBuildLogEntryComponent(t *testing.T) {
	record := slog.NewRecord(time.Time{}, slog.LevelWarn, "gateway: convert failed", 0)
	record.AddAttrs(slog.String("target", "dotnet"))
	entry := buildLogEntry(record)
	if entry.Component != "gateway" || entry.Level != "warn" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Time.IsZero() || entry.Time.Location() != time.UTC {
		t.Fatalf("time should be filled in as UTC: %v", entry.Time)
	}
	if entry.Attributes["target"] != "dotnet" {
		t.Fatalf("attributes not captured: %+v", entry.Attributes)
	}

	// An explicit component attribute wins over the message prefix.
	record = slog.NewRecord(time.Now(), slog.LevelInfo, "plain message", 0)
	record.AddAttrs(slog.String("component", "archive"))
	if entry := buildLogEntry(record); entry.Component != "archive" {
		t.Fatalf("component attribute ignored: %+v", entry)
	}

	// A prefix with spaces is prose, not a subsystem name.
	record = slog.NewRecord(time.Now(), slog.LevelInfo, "not a prefix: detail", 0)
	if entry := buildLogEntry(record); entry.Component != "" {
		t.Fatalf("prose prefix misread as component: %+v", entry)
	}
}

func TestLogSinkBoundsHistory(t *testing.T) {
	sink := newLogSink(3)
	for i := 0; i < 5; i++ {
		sink.capture(slog.NewRecord(time.Now(), slog.LevelInfo, fmt.Sprintf("entry %d", i), 0))
	}
	entries := sink.entries()
	if len(entries) != 3 {
		t.Fatalf("history should be bounded at 3, got %d", len(entries))
	}
	if entries[0].Message != "entry 2" || entries[2].Message != "entry 4" {
		t.Fatalf("oldest entries should be dropped: %+v", entries)
	}
}
