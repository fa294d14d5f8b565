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

package code

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Built-in categories modelled on gRPC status codes.
//
// Flags start at 1000 and follow the gRPC numbering, so the flag of each
// category is 999 + its gRPC code (codes.OK has no category).
var (
	// Cancelled: the caller gave up. HTTP 499 (client closed request).
	Cancelled = T(1000, "The operation was cancelled.")

	// Unknown: server exception or a client-side status parse error. HTTP 520.
	Unknown = T(1001, "Server internal exception or client-side parsing status error.")

	// InvalidArgument: the request is malformed regardless of system state. HTTP 400.
	InvalidArgument = T(1002, "Invalid request argument.")

	// DeadlineExceeded: no response before the deadline. HTTP 504.
	DeadlineExceeded = T(1003, "No response received before Deadline expires.")

	// NotFound: HTTP 404.
	NotFound = T(1004, "Some requested entity was not found.")

	// AlreadyExists: HTTP 409.
	AlreadyExists = T(1005, "The entity that is attempting to be created already exists.")

	// PermissionDenied: the caller is known but not allowed. HTTP 403.
	PermissionDenied = T(1006, "No permission to execute the request.")

	// ResourceExhausted: quota, memory or message size limits. HTTP 507.
	ResourceExhausted = T(1007, "Insufficient memory or message size exceeds the limit.")

	// FailedPrecondition: the system is not in the required state. HTTP 412.
	FailedPrecondition = T(1008, "Operation rejected, system not in required state.")

	// Aborted: concurrency conflict, usually retryable at a higher level. HTTP 409.
	Aborted = T(1009, "Operation aborted due to concurrency issues")

	// OutOfRange: HTTP 416.
	OutOfRange = T(1010, "The operation was attempted past the valid range.")

	// Unimplemented: HTTP 501.
	Unimplemented = T(1011, "The received request/response is not supported.")

	// Internal: broken invariants. HTTP 500. This is also the fallback for
	// unmapped statuses.
	Internal = T(1012, "Internal errors indicate broken invariants.")

	// Unavailable: transient, retry with backoff. HTTP 503.
	Unavailable = T(1013, "The service is currently unavailable or there is a connection error.")

	// DataLoss: HTTP 410.
	DataLoss = T(1014, "Unrecoverable data loss or corruption.")

	// Unauthenticated: HTTP 401.
	Unauthenticated = T(1015, "The request does not have valid authentication credentials for the operation.")
)

// StatusClientClosedRequest is the non-standard status used for Cancelled.
const StatusClientClosedRequest = 499

// StatusUnknownError is the non-standard status used for Unknown.
const StatusUnknownError = 520

type transport struct {
	http int
	grpc codes.Code
}

var builtin = []Category{
	Cancelled, Unknown, InvalidArgument, DeadlineExceeded,
	NotFound, AlreadyExists, PermissionDenied, ResourceExhausted,
	FailedPrecondition, Aborted, OutOfRange, Unimplemented,
	Internal, Unavailable, DataLoss, Unauthenticated,
}

var transports = map[uint32]transport{
	1000: {StatusClientClosedRequest, codes.Canceled},
	1001: {StatusUnknownError, codes.Unknown},
	1002: {http.StatusBadRequest, codes.InvalidArgument},
	1003: {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	1004: {http.StatusNotFound, codes.NotFound},
	1005: {http.StatusConflict, codes.AlreadyExists},
	1006: {http.StatusForbidden, codes.PermissionDenied},
	1007: {http.StatusInsufficientStorage, codes.ResourceExhausted},
	1008: {http.StatusPreconditionFailed, codes.FailedPrecondition},
	1009: {http.StatusConflict, codes.Aborted},
	1010: {http.StatusRequestedRangeNotSatisfiable, codes.OutOfRange},
	1011: {http.StatusNotImplemented, codes.Unimplemented},
	1012: {http.StatusInternalServerError, codes.Internal},
	1013: {http.StatusServiceUnavailable, codes.Unavailable},
	1014: {http.StatusGone, codes.DataLoss},
	1015: {http.StatusUnauthorized, codes.Unauthenticated},
}

// httpReverse resolves ambiguous statuses (409) to the first category that
// claims them, matching the order in builtin.
var httpReverse = func() map[int]Category {
	m := make(map[int]Category, len(builtin))
	for _, c := range builtin {
		st := transports[c.flag.Uint()].http
		if _, ok := m[st]; !ok {
			m[st] = c
		}
	}
	return m
}()

// Builtin returns the built-in categories in flag order.
// The returned slice is a copy and may be modified by the caller.
func Builtin() []Category {
	out := make([]Category, len(builtin))
	copy(out, builtin)
	return out
}

// Lookup returns the built-in category with the given flag.
func Lookup(flag uint32) (Category, bool) {
	if _, ok := transports[flag]; !ok {
		return Category{}, false
	}
	return builtin[flag-builtin[0].flag.Uint()], true
}

// HTTPStatus returns the HTTP status of a built-in category flag.
func HTTPStatus(flag uint32) (int, bool) {
	t, ok := transports[flag]
	return t.http, ok
}

// GRPCCode returns the gRPC code of a built-in category flag.
func GRPCCode(flag uint32) (codes.Code, bool) {
	t, ok := transports[flag]
	return t.grpc, ok
}

// FromHTTPStatus maps an HTTP status back to a built-in category.
// Unmapped statuses yield Internal.
func FromHTTPStatus(status int) Category {
	if c, ok := httpReverse[status]; ok {
		return c
	}
	return Internal
}

// FromGRPC maps a gRPC code to a built-in category.
// codes.OK and unmapped codes yield Internal.
func FromGRPC(c codes.Code) Category {
	if c == codes.OK || c > codes.Unauthenticated {
		return Internal
	}
	return builtin[int(c)-1]
}
