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
	"dirpx.dev/errcode/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for every code of
// the given category.
func WithHTTPDefault(c code.Category, http int) Option {
	return func(b *builder) { b.httpDefaults[c.Flag().Uint()] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for every code of
// the given category.
func WithGRPCDefault(c code.Category, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c.Flag().Uint()] = grpc }
}

// WithHTTPOverride registers an HTTP status for one exact code, typically
// d.Code() of a declaration. Overrides take precedence over everything else.
func WithHTTPOverride(c uint32, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers a gRPC status for one exact code.
func WithGRPCOverride(c uint32, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule on the path digits of
// codes of the given category. A more specific prefix wins. Use "*" to match
// a single segment.
func WithHTTPPrefix(c code.Category, prefix string, http int) Option {
	return func(b *builder) {
		flag := c.Flag().Uint()
		b.httpPrefixes[flag] = append(b.httpPrefixes[flag], prefixRule{prefix, http})
	}
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule on the path digits of
// codes of the given category.
func WithGRPCPrefix(c code.Category, prefix string, grpc int) Option {
	return func(b *builder) {
		flag := c.Flag().Uint()
		b.grpcPrefixes[flag] = append(b.grpcPrefixes[flag], prefixRule{prefix, grpc})
	}
}

// WithFallback replaces the statuses used for codes that match nothing or do
// not decode. The library fallback is 500 / codes.Internal.
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
