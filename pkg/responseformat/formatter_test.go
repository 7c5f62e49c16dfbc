package responseformat

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

type payload struct {
	Latitude float64 `json:"latitude"`
	Hours    float64 `json:"hours"`
}

func TestWriteResponseJSON(t *testing.T) {
	f := NewFormatter()
	req := httptest.NewRequest(http.MethodGet, "/daylight", nil)
	rec := httptest.NewRecorder()

	if err := f.WriteResponse(rec, req, payload{45, 15.35}, map[string]string{"X-Request-ID": "abc"}); err != nil {
		t.Fatalf("WriteResponse() error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentTypeJSON {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("X-Request-ID") != "abc" {
		t.Error("custom header not set")
	}

	var got payload
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got != (payload{45, 15.35}) {
		t.Errorf("body = %+v", got)
	}
}

func TestWriteResponseMsgPack(t *testing.T) {
	f := NewFormatter()
	req := httptest.NewRequest(http.MethodGet, "/daylight?format=msgpack", nil)
	rec := httptest.NewRecorder()

	if err := f.WriteResponse(rec, req, payload{-45, 8.6}, nil); err != nil {
		t.Fatalf("WriteResponse() error = %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentTypeMsgPack {
		t.Errorf("Content-Type = %q", ct)
	}

	var got map[string]any
	if err := msgpack.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["latitude"] != -45.0 || got["hours"] != 8.6 {
		t.Errorf("body = %v", got)
	}
}

func TestWriteError(t *testing.T) {
	f := NewFormatter()
	req := httptest.NewRequest(http.MethodGet, "/daylight", nil)
	rec := httptest.NewRecorder()

	_ = f.WriteError(rec, req, http.StatusBadRequest, errors.New("invalid latitude"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "Bad Request" || body.Message != "invalid latitude" {
		t.Errorf("body = %+v", body)
	}
}
