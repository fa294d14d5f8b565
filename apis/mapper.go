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

package apis

import (
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of transport mapping rules.
// It resolves a numeric errcode code into HTTP and gRPC statuses.
//
// Rules are selected by the category digits of the code and refined by its
// path digits. Codes that do not decode resolve to the fallback statuses.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the code. Never zero.
	HTTPStatus(code uint32) int

	// GRPCStatus returns the gRPC status code for the code.
	GRPCStatus(code uint32) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same matching logic.
	Status(code uint32) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(code uint32) string
}

// Status represents a resolved pair of transport statuses for a single error.
// It is the final output of the mapper and can be written directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
