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

// Package errcode provides an error type carrying a hierarchical numeric
// error code.
//
// Codes are composed by the code package from a category and a three-level
// path (see packages segment, path and code) and cataloged by package
// registry. This package ties them together:
//
//	var (
//	    users  = path.X(0, "shop").Y(1, "accounts").Z(3, "users")
//	    NoUser = errcode.Declare(code.NotFound, users) // submitted to registry.Default()
//	)
//
//	return errcode.E(NoUser, errcode.WithDetailOption("user_id", id))
package errcode

import (
	"errors"
	"maps"
	"runtime"
	"slices"
	"sync"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/path"
	"dirpx.dev/errcode/registry"
	"dirpx.dev/errcode/segment"
)

// Error is the canonical rich error type.
//
// It carries:
//   - Code: the wire-visible numeric code (required);
//   - Message: human-oriented description, by default the category text;
//   - Path: rendered classification path of the declaration;
//   - Details: arbitrary key/value payload (for logging / HTTP body);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Code is the ten-digit code, e.g. 1004000103.
	Code uint32

	// Message is a human-readable explanation. This is what should end up
	// in logs or in the "message" field of an HTTP error response.
	Message string

	// Path is the rendered path, e.g. "X00(shop)/Y01(accounts)/Z03(users)".
	// It may be empty for errors built from a bare code.
	Path string

	// Details is an optional, shallow map of extra fields.
	// The map is treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.PathedError   = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.ViewProvider  = (*Error)(nil)
)

// E builds an Error from a declaration's brief and path, then applies opts
// in order. It always returns a new Error.
func E(d code.Declaration, opts ...Option) *Error {
	b := d.Brief()
	return apply(&Error{Code: b.Code(), Message: b.Message(), Path: d.Path().String()}, opts)
}

// callSite identifies one Err call site and the declaration it produced.
type callSite struct {
	pc   uintptr
	decl string
}

// errSites records which call sites already submitted their declaration.
var errSites sync.Map // map[callSite]struct{}

// Err builds an Error from cat.Declare(leaf) and submits the declaration to
// registry.Default() once per call site. Calling Err repeatedly from the
// same line, e.g. on a request path, does not grow the catalog.
func Err(cat code.Category, leaf path.Leaf, opts ...Option) *Error {
	d := cat.Declare(leaf)
	pc, _, _, _ := runtime.Caller(1)
	if _, seen := errSites.LoadOrStore(callSite{pc: pc, decl: d.String()}, struct{}{}); !seen {
		registry.Submit(d)
	}
	return E(d, opts...)
}

// Declare submits cat.Declare(leaf) to registry.Default() and returns it.
// It is meant for package-level var blocks so that the catalog is complete
// once initialization finishes. Every call submits, so use Err instead on
// paths that run more than once.
func Declare(cat code.Category, leaf path.Leaf) code.Declaration {
	return registry.Declare(cat, leaf)
}

// FromCode builds an Error from a bare numeric code, e.g. one received from
// a remote peer. The path is left empty.
func FromCode(c uint32, msg string, opts ...Option) *Error {
	return apply(&Error{Code: c, Message: msg}, opts)
}

func apply(e *Error, opts []Option) *Error {
	for _, opt := range opts {
		if opt != nil {
			e = opt(e)
		}
	}
	return e
}

// Error implements the built-in error interface.
//
// The format matches code.Brief, with the path appended when present:
//
//	<message> ErrCode(<code>)[, <path>]
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Message + " " + code.CodeTag(e.Code)
	if e.Path != "" {
		s += ", " + e.Path
	}
	return s
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is an *Error with the same code. It lets callers
// compare against declared sentinels:
//
//	errors.Is(err, errcode.E(NoUser))
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && t.Code == e.Code
}

// ErrorCode implements apis.CodedError. A nil *Error reports 0.
func (e *Error) ErrorCode() uint32 {
	if e == nil {
		return 0
	}
	return e.Code
}

// ErrorPath implements apis.PathedError.
func (e *Error) ErrorPath() string {
	if e == nil {
		return ""
	}
	return e.Path
}

// ErrorDetails implements apis.DetailedError. Details are ordered by key.
func (e *Error) ErrorDetails() []apis.Detail {
	if e == nil || len(e.Details) == 0 {
		return nil
	}
	out := make([]apis.Detail, 0, len(e.Details))
	for _, k := range slices.Sorted(maps.Keys(e.Details)) {
		out = append(out, apis.Detail{Key: k, Value: e.Details[k]})
	}
	return out
}

// ErrorView implements apis.ViewProvider. A nil *Error yields the zero view.
func (e *Error) ErrorView() apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Code:    e.Code,
		Message: e.Message,
		Path:    e.Path,
		Details: e.ErrorDetails(),
	}
}

// Category decodes the category flag from Code.
func (e *Error) Category() (segment.CategoryValue, error) {
	flag, _, err := code.Decode(e.ErrorCode())
	return flag, err
}

// WithMessage returns a shallow copy of e with a replaced human message.
// The code is unchanged.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	maps.Copy(m, cp.Details)
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details, kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	maps.Copy(m, cp.Details)
	maps.Copy(m, kv)
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the first apis.CodedError in err's chain.
func CodeOf(err error) (uint32, bool) {
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return ce.ErrorCode(), true
	}
	return 0, false
}
