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
	"fmt"
	"maps"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/mapper/internal/pathtrie"
	"dirpx.dev/errcode/path"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults for the built-in categories.
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Validate statuses and override codes.
//  4. Build per-category path tries (HTTP & gRPC) supporting
//     longest-prefix-match with '*' as a single-segment wildcard.
//  5. Freeze all maps and tries into immutable copies (fresh allocations).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults, copied into builder-owned maps.
	maps.Copy(b.httpDefaults, defaultHTTP)
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	// (3) Reject statuses no transport can carry.
	if err := b.validate(); err != nil {
		return nil, err
	}

	// (4) Compile prefix rules.
	httpTrie, err := buildTries("HTTP", b.httpPrefixes, asInt)
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries("gRPC", b.grpcPrefixes, asGRPC)
	if err != nil {
		return nil, err
	}

	// (5) Freeze into a read-only snapshot.
	return &mapper{
		http: table[int]{
			defaults:  freeze(b.httpDefaults, asInt),
			overrides: freeze(b.httpOverride, asInt),
			tries:     httpTrie,
			fallback:  b.fallbackHTTP,
		},
		grpc: table[codes.Code]{
			defaults:  freeze(b.grpcDefaults, asGRPC),
			overrides: freeze(b.grpcOverride, asGRPC),
			tries:     grpcTrie,
			fallback:  codes.Code(b.fallbackGRPC),
		},
	}, nil
}

// source names the tier that resolved a status.
type source string

const (
	sourceOverride source = "override"
	sourcePrefix   source = "prefix"
	sourceDefault  source = "default"
	sourceFallback source = "fallback"
)

// table holds the rules for one transport. Lookups are O(depth) and safe
// for concurrent use once constructed.
type table[T any] struct {
	// defaults is keyed by category flag.
	defaults map[uint32]T
	// overrides is keyed by full code.
	overrides map[uint32]T
	// tries is keyed by category flag and indexed by path segments.
	tries    map[uint32]*pathtrie.Trie[T]
	fallback T
}

// resolve applies the resolution order:
//  1. exact per-code override;
//  2. per-category longest-prefix-match on the path digits;
//  3. per-category default;
//  4. fallback, also used for codes that do not decode.
func (t *table[T]) resolve(c uint32) (v T, src source, pattern string) {
	if v, ok := t.overrides[c]; ok {
		return v, sourceOverride, ""
	}
	flag, pathFlag, err := code.Decode(c)
	if err != nil {
		return t.fallback, sourceFallback, ""
	}
	if tr, ok := t.tries[flag.Uint()]; ok {
		r, p, l, _ := path.Split(pathFlag)
		if v, ok, pat := tr.MatchWithPattern([]uint32{r, p, l}); ok {
			return v, sourcePrefix, pat
		}
	}
	if v, ok := t.defaults[flag.Uint()]; ok {
		return v, sourceDefault, ""
	}
	return t.fallback, sourceFallback, ""
}

// mapper is the immutable apis.Mapper implementation.
type mapper struct {
	http table[int]
	grpc table[codes.Code]
}

// HTTPStatus resolves an HTTP status for the given code.
func (m *mapper) HTTPStatus(c uint32) int {
	v, _, _ := m.http.resolve(c)
	return v
}

// GRPCStatus resolves a gRPC status for the given code, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c uint32) codes.Code {
	v, _, _ := m.grpc.resolve(c)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(c uint32) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a code.
//
// Example output:
//
//	code=1013000201 category=E1013 path=00.02.01
//	http: source=prefix pattern="00.02" -> 502
//	grpc: source=default -> UNAVAILABLE(14)
//
// This is intended for inspection and logging, not for stable machine parsing.
func (m *mapper) Explain(c uint32) string {
	var b strings.Builder
	if flag, pathFlag, err := code.Decode(c); err != nil {
		_, _ = fmt.Fprintf(&b, "code=%d category=invalid\n", c)
	} else {
		_, _ = fmt.Fprintf(&b, "code=%d category=%s path=%s\n", c, flag.Tagged(), path.FormatFlag(pathFlag))
	}

	hv, hsrc, hpat := m.http.resolve(c)
	_, _ = fmt.Fprintln(&b, explainLine("http", hsrc, hpat, fmt.Sprint(hv)))

	gv, gsrc, gpat := m.grpc.resolve(c)
	_, _ = fmt.Fprintln(&b, explainLine("grpc", gsrc, gpat, fmt.Sprintf("%s(%d)", grpcName(gv), int(gv))))

	return strings.TrimSuffix(b.String(), "\n")
}

func explainLine(transport string, src source, pattern, value string) string {
	if src == sourcePrefix {
		return fmt.Sprintf("%s: source=%s pattern=%q -> %s", transport, src, pattern, value)
	}
	return fmt.Sprintf("%s: source=%s -> %s", transport, src, value)
}
