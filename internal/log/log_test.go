package log

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogHTTPRequest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))
	defer Use(zap.NewNop())

	LogHTTPRequest(HTTPLogEntry{
		RequestID: "abc",
		Method:    "GET",
		Path:      "/daylight",
		Query:     "lat=45&day=171",
		Status:    200,
		Duration:  3 * time.Millisecond,
		Size:      120,
	})
	LogHTTPRequest(HTTPLogEntry{
		Method: "GET",
		Path:   "/daylight/year",
		Status: 500,
		Error:  errors.New("boom"),
	})

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}

	ok := entries[0]
	if ok.Level != zapcore.InfoLevel {
		t.Errorf("first entry level = %v, want info", ok.Level)
	}
	fields := ok.ContextMap()
	if fields["request_id"] != "abc" || fields["status"] != int64(200) || fields["query"] != "lat=45&day=171" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if _, present := fields["user_agent"]; present {
		t.Error("empty user agent should be omitted")
	}

	failed := entries[1]
	if failed.Level != zapcore.ErrorLevel {
		t.Errorf("second entry level = %v, want error", failed.Level)
	}
	if failed.ContextMap()["error"] != "boom" {
		t.Errorf("error field = %v", failed.ContextMap()["error"])
	}
}

func TestFallbackLogger(t *testing.T) {
	log, baseLogger = nil, nil
	if GetSugaredLogger() == nil || GetZapLogger() == nil {
		t.Fatal("fallback logger not installed")
	}
	Infof("no panic on %s", "uninitialized logger")
}
