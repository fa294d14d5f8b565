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
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/mapper/internal/pathtrie"
)

// freeze makes an immutable copy of a builder map, converting values with
// conv. Empty maps become nil to simplify lookups.
func freeze[V any](src map[uint32]int, conv func(int) V) map[uint32]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[uint32]V, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

func asInt(v int) int { return v }

func asGRPC(v int) codes.Code { return codes.Code(v) }

// buildTries compiles per-category prefix rules into tries.
func buildTries[V any](kind string, rules map[uint32][]prefixRule, conv func(int) V) (map[uint32]*pathtrie.Trie[V], error) {
	out := make(map[uint32]*pathtrie.Trie[V], len(rules))
	for flag, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := pathtrie.New[V]()
		for _, r := range rs {
			if err := t.Insert(r.prefix, conv(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: invalid %s path prefix %q for category E%d: %w", kind, r.prefix, flag, err)
			}
		}
		out[flag] = t
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func validateHTTP(where string, v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("mapper: %s: HTTP status %d out of range [100, 599]", where, v)
	}
	return nil
}

func validateGRPC(where string, v int) error {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return fmt.Errorf("mapper: %s: gRPC code %d out of range [0, 16]", where, v)
	}
	return nil
}

// validate checks every status in b and every override key.
func (b *builder) validate() error {
	if err := validateHTTP("fallback", b.fallbackHTTP); err != nil {
		return err
	}
	if err := validateGRPC("fallback", b.fallbackGRPC); err != nil {
		return err
	}
	for flag, v := range b.httpDefaults {
		if err := validateHTTP(fmt.Sprintf("default for E%d", flag), v); err != nil {
			return err
		}
	}
	for flag, v := range b.grpcDefaults {
		if err := validateGRPC(fmt.Sprintf("default for E%d", flag), v); err != nil {
			return err
		}
	}
	for c, v := range b.httpOverride {
		if _, _, err := code.Decode(c); err != nil {
			return fmt.Errorf("mapper: HTTP override: %w", err)
		}
		if err := validateHTTP(fmt.Sprintf("override for %d", c), v); err != nil {
			return err
		}
	}
	for c, v := range b.grpcOverride {
		if _, _, err := code.Decode(c); err != nil {
			return fmt.Errorf("mapper: gRPC override: %w", err)
		}
		if err := validateGRPC(fmt.Sprintf("override for %d", c), v); err != nil {
			return err
		}
	}
	for flag, rs := range b.httpPrefixes {
		for _, r := range rs {
			if err := validateHTTP(fmt.Sprintf("prefix %q for E%d", r.prefix, flag), r.val); err != nil {
				return err
			}
		}
	}
	for flag, rs := range b.grpcPrefixes {
		for _, r := range rs {
			if err := validateGRPC(fmt.Sprintf("prefix %q for E%d", r.prefix, flag), r.val); err != nil {
				return err
			}
		}
	}
	return nil
}

// grpcName renders a gRPC code in its canonical upper snake form,
// e.g. DEADLINE_EXCEEDED.
func grpcName(c codes.Code) string {
	s := c.String()
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if i > 0 && ch >= 'A' && ch <= 'Z' && s[i-1] >= 'a' && s[i-1] <= 'z' {
			b.WriteByte('_')
		}
		b.WriteByte(ch)
	}
	return strings.ToUpper(b.String())
}
