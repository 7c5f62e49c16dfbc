package log

import (
	"time"
)

// HTTPLogEntry describes one served request.
type HTTPLogEntry struct {
	RequestID  string
	Method     string
	Path       string
	Query      string
	Status     int
	Duration   time.Duration
	Size       int
	RemoteAddr string
	UserAgent  string
	Error      error
}

// LogHTTPRequest writes a structured access log line. Requests that failed
// with a server error are logged at error level.
func LogHTTPRequest(e HTTPLogEntry) {
	fields := []interface{}{
		"request_id", e.RequestID,
		"method", e.Method,
		"path", e.Path,
		"status", e.Status,
		"duration_ms", e.Duration.Milliseconds(),
		"size", e.Size,
		"remote_addr", e.RemoteAddr,
	}
	if e.Query != "" {
		fields = append(fields, "query", e.Query)
	}
	if e.UserAgent != "" {
		fields = append(fields, "user_agent", e.UserAgent)
	}

	if e.Error != nil || e.Status >= 500 {
		if e.Error != nil {
			fields = append(fields, "error", e.Error.Error())
		}
		Errorw("http request", fields...)
		return
	}
	Infow("http request", fields...)
}
