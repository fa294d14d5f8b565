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

// Package httpx writes errcode errors as JSON HTTP responses and reads them
// back on the client side.
//
// The body has the shape
//
//	{
//	  "error": {"code": 1004000103, "message": "...", "path": "...", "details": {...}, "fields": [...]},
//	  "meta":  {"correlation": "...", "traceId": "...", "spanId": "...", "retryAfterSeconds": 5, "links": [...]}
//	}
//
// and is serialized with protojson over a structpb.Struct.
package httpx

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/mapper"
)

// ContentType is the media type of error bodies.
const ContentType = "application/json"

// Link points the client to related documentation or resources.
type Link struct {
	Rel  string
	Href string
}

// Violation describes one invalid request field.
type Violation struct {
	Field       string
	Description string
}

// Meta carries extra context that the HTTP layer can add on top of an error.
// All fields are optional and typically come from request context, headers,
// rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
	Links             []Link
	Fields            []Violation
}

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper.
type Writer struct {
	// Mapper resolves the status. Nil means mapper.Default().
	Mapper apis.Mapper

	// HidePath drops the classification path from responses.
	HidePath bool

	// Logger, when set, receives one entry per written error: Error level
	// for 5xx, Debug otherwise.
	Logger *zap.Logger
}

// Write serializes err and meta and writes them to the response writer. The
// HTTP status is resolved via the Mapper from the error code; errors without
// a code are reported as adapter.UnclassifiedCode.
//
// No automatic redaction or filtering of details is performed here.
// Higher-level handlers should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	view := adapter.ToView(err)
	if w.HidePath {
		view.Path = ""
	}
	status := w.mapper().HTTPStatus(view.Code)

	body, mErr := Marshal(view, meta)
	if mErr != nil {
		// Details that structpb cannot carry are stringified in Marshal, so
		// this only happens for broken protobuf state.
		body = []byte(`{"error":{"code":` + strconv.FormatUint(uint64(view.Code), 10) + `}}`)
	}

	rw.Header().Set("Content-Type", ContentType)
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(status)
	_, _ = rw.Write(body)

	w.log(err, view.Code, status)
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts h to http.Handler, writing any returned error with w.
// Correlation is taken from the X-Request-Id header.
func (w Writer) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, err, Meta{Correlation: r.Header.Get("X-Request-Id")})
		}
	})
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper != nil {
		return w.Mapper
	}
	return mapper.Default()
}

func (w Writer) log(err error, c uint32, status int) {
	if w.Logger == nil {
		return
	}
	fields := []zap.Field{zap.Uint32("code", c), zap.Int("status", status), zap.Error(err)}
	if status >= http.StatusInternalServerError {
		w.Logger.Error("request failed", fields...)
		return
	}
	w.Logger.Debug("request rejected", fields...)
}

// Marshal renders the response body for view and meta.
func Marshal(view apis.ErrorView, meta Meta) ([]byte, error) {
	errObj := map[string]any{
		"code":    view.Code,
		"message": view.Message,
	}
	if view.Path != "" {
		errObj["path"] = view.Path
	}
	if len(view.Details) > 0 {
		details := make(map[string]any, len(view.Details))
		for _, d := range view.Details {
			details[d.Key] = structValue(d.Value)
		}
		errObj["details"] = details
	}
	if len(meta.Fields) > 0 {
		fields := make([]any, len(meta.Fields))
		for i, f := range meta.Fields {
			fields[i] = map[string]any{"field": f.Field, "description": f.Description}
		}
		errObj["fields"] = fields
	}

	root := map[string]any{"error": errObj}
	if m := metaObject(meta); len(m) > 0 {
		root["meta"] = m
	}

	s, err := structpb.NewStruct(root)
	if err != nil {
		return nil, fmt.Errorf("httpx: build body: %w", err)
	}
	return protojson.Marshal(s)
}

func metaObject(meta Meta) map[string]any {
	m := make(map[string]any)
	if meta.Correlation != "" {
		m["correlation"] = meta.Correlation
	}
	if meta.TraceID != "" {
		m["traceId"] = meta.TraceID
	}
	if meta.SpanID != "" {
		m["spanId"] = meta.SpanID
	}
	if meta.RetryAfterSeconds > 0 {
		m["retryAfterSeconds"] = meta.RetryAfterSeconds
	}
	if len(meta.Links) > 0 {
		links := make([]any, len(meta.Links))
		for i, l := range meta.Links {
			links[i] = map[string]any{"rel": l.Rel, "href": l.Href}
		}
		m["links"] = links
	}
	return m
}

// structValue returns v when structpb can represent it, and its fmt
// rendering otherwise.
func structValue(v any) any {
	if _, err := structpb.NewValue(v); err != nil {
		return fmt.Sprint(v)
	}
	return v
}

// Read parses an error body written by Writer back into an *errcode.Error.
// Details come back as structpb-decoded values (numbers are float64).
func Read(r io.Reader) (*errcode.Error, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("httpx: read body: %w", err)
	}
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("httpx: decode body: %w", err)
	}
	obj := s.GetFields()["error"].GetStructValue()
	if obj == nil {
		return nil, fmt.Errorf("httpx: decode body: missing \"error\" object")
	}
	f := obj.GetFields()
	n := f["code"].GetNumberValue()
	if n < 0 || n > float64(^uint32(0)) || n != float64(uint32(n)) {
		return nil, fmt.Errorf("httpx: decode body: invalid code %v", n)
	}
	e := errcode.FromCode(uint32(n), f["message"].GetStringValue())
	e.Path = f["path"].GetStringValue()
	if d := f["details"].GetStructValue(); d != nil {
		e = e.WithDetails(d.AsMap())
	}
	return e, nil
}
