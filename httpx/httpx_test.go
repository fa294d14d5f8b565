/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/mapper"
	"dirpx.dev/errcode/path"
)

var users = path.X(0, "shop").Y(1, "accounts").Z(3, "users")

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not JSON: %v\n%s", err, rec.Body.String())
	}
	return got
}

func TestWriter_Write(t *testing.T) {
	e := errcode.E(code.NotFound.Declare(users), errcode.WithDetailOption("user_id", 7))
	rec := httptest.NewRecorder()

	Writer{}.Write(rec, e, Meta{
		Correlation:       "req-1",
		TraceID:           "trace",
		RetryAfterSeconds: 5,
		Links:             []Link{{Rel: "help", Href: "https://example.com/E1004"}},
		Fields:            []Violation{{Field: "id", Description: "unknown"}},
	})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != ContentType {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Retry-After"); got != "5" {
		t.Fatalf("Retry-After = %q, want 5", got)
	}

	want := map[string]any{
		"error": map[string]any{
			"code":    float64(1004000103),
			"message": "Some requested entity was not found.",
			"path":    "X00(shop)/Y01(accounts)/Z03(users)",
			"details": map[string]any{"user_id": float64(7)},
			"fields":  []any{map[string]any{"field": "id", "description": "unknown"}},
		},
		"meta": map[string]any{
			"correlation":       "req-1",
			"traceId":           "trace",
			"retryAfterSeconds": float64(5),
			"links":             []any{map[string]any{"rel": "help", "href": "https://example.com/E1004"}},
		},
	}
	if diff := cmp.Diff(want, decode(t, rec)); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestWriter_NilErrorWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, nil, Meta{})
	if rec.Body.Len() != 0 || rec.Header().Get("Content-Type") != "" {
		t.Fatalf("nil error must not write a response")
	}
}

func TestWriter_TypedNilErrorIsInternal(t *testing.T) {
	var e *errcode.Error
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, e, Meta{})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	got := decode(t, rec)["error"].(map[string]any)
	if got["code"] != float64(adapter.UnclassifiedCode) {
		t.Fatalf("error.code = %v, want %d", got["code"], adapter.UnclassifiedCode)
	}
}

func TestWriter_HidePathAndCustomMapper(t *testing.T) {
	m, err := mapper.New(mapper.WithHTTPPrefix(code.Unavailable, "00.01", http.StatusBadGateway))
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	rec := httptest.NewRecorder()
	Writer{Mapper: m, HidePath: true}.Write(rec, errcode.E(code.Unavailable.Declare(users)), Meta{})

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	body := decode(t, rec)
	if _, ok := body["error"].(map[string]any)["path"]; ok {
		t.Fatal("path must be hidden")
	}
	if _, ok := body["meta"]; ok {
		t.Fatal("empty meta must be omitted")
	}
}

func TestWriter_PlainErrorIsInternalAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rec := httptest.NewRecorder()
	w := Writer{Logger: zap.New(core)}

	w.Write(rec, errors.New("dial tcp: secret"), Meta{})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("internal message leaked: %s", rec.Body.String())
	}
	entries := logs.FilterMessage("request failed").All()
	if len(entries) != 1 || entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected one error log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(500) {
		t.Fatalf("logged status = %v", got)
	}
}

func TestWriter_UnsupportedDetailIsStringified(t *testing.T) {
	type point struct{ X, Y int }
	e := errcode.E(code.InvalidArgument.Declare(users), errcode.WithDetailOption("at", point{1, 2}))
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, e, Meta{})

	details := decode(t, rec)["error"].(map[string]any)["details"].(map[string]any)
	if details["at"] != "{1 2}" {
		t.Fatalf("details.at = %v", details["at"])
	}
}

func TestHandle(t *testing.T) {
	h := Writer{}.Handle(func(rw http.ResponseWriter, r *http.Request) error {
		if r.URL.Path == "/ok" {
			rw.WriteHeader(http.StatusNoContent)
			return nil
		}
		return fmt.Errorf("handler: %w", errcode.E(code.PermissionDenied.Declare(users)))
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("ok status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/denied", nil)
	req.Header.Set("X-Request-Id", "abc")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("denied status = %d", rec.Code)
	}
	if got := decode(t, rec)["meta"].(map[string]any)["correlation"]; got != "abc" {
		t.Fatalf("correlation = %v", got)
	}
}

func TestRead_RoundTrip(t *testing.T) {
	e := errcode.E(code.NotFound.Declare(users), errcode.WithDetailOption("user_id", 7))
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, e, Meta{})

	got, err := Read(rec.Body)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Code != e.Code || got.Message != e.Message || got.Path != e.Path {
		t.Fatalf("Read = %+v, want %+v", got, e)
	}
	if got.Details["user_id"] != float64(7) {
		t.Fatalf("details = %v", got.Details)
	}
	if !errors.Is(got, e) {
		t.Fatal("round-tripped error must match by code")
	}
}

func TestRead_Errors(t *testing.T) {
	for _, body := range []string{`not json`, `{"meta":{}}`, `{"error":{"code":-1}}`, `{"error":{"code":1.5}}`} {
		if _, err := Read(strings.NewReader(body)); err == nil {
			t.Fatalf("Read(%s) expected error", body)
		}
	}
}
