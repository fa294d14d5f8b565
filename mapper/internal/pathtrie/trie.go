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

// Package pathtrie is a prefix index over numeric path segments.
//
// Keys are the segment values of a path (root, parent, leaf). Prefix
// patterns are written as dotted two-digit segments ("00.01") or in tagged
// form ("X00/Y01"); "*" matches exactly one segment.
package pathtrie

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/errcode/path"
	"dirpx.dev/errcode/segment"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned when a prefix is empty, too deep, contains an
// invalid segment, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("pathtrie: invalid prefix")

// Trie is a segment-aware prefix index. Each node represents one segment.
// Lookups perform longest-prefix-match, so a more specific rule wins over a
// shorter one, and an exact segment wins over "*" at the same depth.
type Trie[T any] struct {
	children map[uint32]*Trie[T]
	wild     *Trie[T]
	hasVal   bool
	val      T
	// pattern is the canonical prefix of this node, set only when hasVal.
	pattern string
}

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[uint32]*Trie[T])}
}

// Insert adds a prefix and associates it with val. Inserting the same
// canonical prefix twice replaces the value.
//
// Examples:
//
//	"00"         every path under root 00
//	"00.01"      every path under X00/Y01
//	"X00/*/Z20"  leaf 20 under any parent of root 00
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, err := Parse(prefix)
	if err != nil {
		return err
	}
	cur := t
	for _, s := range segs {
		if s < 0 {
			if cur.wild == nil {
				cur.wild = New[T]()
			}
			cur = cur.wild
			continue
		}
		child, ok := cur.children[uint32(s)]
		if !ok {
			child = New[T]()
			cur.children[uint32(s)] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = Format(segs)
	return nil
}

// Match finds the deepest prefix matching key (segment values from root to
// leaf). It returns the zero value and false when nothing matches.
func (t *Trie[T]) Match(key []uint32) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the canonical pattern of the
// matched rule, for diagnostics.
func (t *Trie[T]) MatchWithPattern(key []uint32) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	var best *Trie[T]
	bestDepth := -1

	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			best, bestDepth = n, depth
		}
		if depth >= len(key) {
			return
		}
		if next, ok := n.children[key[depth]]; ok {
			dfs(next, depth+1)
		}
		if n.wild != nil {
			dfs(n.wild, depth+1)
		}
	}
	dfs(t, 0)

	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// Len returns the number of stored prefixes.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	if t.hasVal {
		n++
	}
	for _, c := range t.children {
		n += c.Len()
	}
	return n + t.wild.Len()
}

// Parse validates a prefix and returns its segments, -1 standing for "*".
//
// Segments are separated by "." or "/". Each segment is "*", one or two
// digits, or the tagged form with the letter of its level (X, Y, Z).
func Parse(prefix string) ([]int, error) {
	p := strings.TrimSpace(prefix)
	if p == "" {
		return nil, fmt.Errorf("%w: empty prefix", ErrInvalidPrefix)
	}
	raw := strings.FieldsFunc(p, func(r rune) bool { return r == '.' || r == '/' })
	if len(raw) != strings.Count(p, ".")+strings.Count(p, "/")+1 {
		return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPrefix, prefix)
	}
	if len(raw) > path.Depth {
		return nil, fmt.Errorf("%w: %q is deeper than %d levels", ErrInvalidPrefix, prefix, path.Depth)
	}

	segs := make([]int, len(raw))
	allWild := true
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == Wildcard {
			segs[i] = -1
			continue
		}
		allWild = false
		v, err := parseLevel(i, s)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %q: %w", ErrInvalidPrefix, s, err)
		}
		segs[i] = int(v)
	}
	if allWild {
		return nil, fmt.Errorf("%w: %q consists of wildcards only", ErrInvalidPrefix, prefix)
	}
	return segs, nil
}

// Normalize returns the canonical form of prefix, e.g. "X0/y1" -> "00.01".
func Normalize(prefix string) (string, error) {
	segs, err := Parse(prefix)
	if err != nil {
		return "", err
	}
	return Format(segs), nil
}

// Format renders parsed segments as "00.01.*".
func Format(segs []int) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		if s < 0 {
			parts[i] = Wildcard
			continue
		}
		parts[i] = fmt.Sprintf("%02d", s)
	}
	return strings.Join(parts, ".")
}

func parseLevel(level int, s string) (uint32, error) {
	switch level {
	case 0:
		return parseSegment[segment.Root](s)
	case 1:
		return parseSegment[segment.Parent](s)
	default:
		return parseSegment[segment.Leaf](s)
	}
}

func parseSegment[D segment.Domain](s string) (uint32, error) {
	var v segment.Value[D]
	if err := v.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return v.Uint(), nil
}
