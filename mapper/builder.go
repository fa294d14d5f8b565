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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw path prefix ("00.01", "X00/*/Z20").
	// It is validated and canonicalized when the per-category trie is built.
	prefix string
	// val is the numeric transport status to apply when this prefix matches.
	// For HTTP this is the final value; for gRPC we store ints in the builder
	// and convert to codes.Code later.
	val int
}

type builder struct {
	// httpDefaults holds per-category HTTP defaults, keyed by category flag.
	httpDefaults map[uint32]int
	// grpcDefaults holds per-category gRPC defaults as ints.
	grpcDefaults map[uint32]int

	// httpOverride holds exact HTTP overrides keyed by full code.
	httpOverride map[uint32]int
	// grpcOverride holds exact gRPC overrides keyed by full code.
	grpcOverride map[uint32]int

	// httpPrefixes holds per-category path prefix rules for HTTP, compiled
	// into a pathtrie by New.
	httpPrefixes map[uint32][]prefixRule
	// grpcPrefixes holds per-category path prefix rules for gRPC.
	grpcPrefixes map[uint32][]prefixRule

	// global fallbacks used when a category has no default at all, or the
	// code does not decode.
	fallbackHTTP int
	fallbackGRPC int
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[uint32]int, len(defaultHTTP)),
		grpcDefaults: make(map[uint32]int, len(defaultGRPC)),

		httpOverride: make(map[uint32]int),
		grpcOverride: make(map[uint32]int),
		httpPrefixes: make(map[uint32][]prefixRule),
		grpcPrefixes: make(map[uint32][]prefixRule),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: int(codes.Internal),
	}
}
