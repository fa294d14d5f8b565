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

package registry

import (
	"maps"
	"slices"

	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/path"
	"dirpx.dev/errcode/segment"
)

// Set is a set of declarations.
type Set map[code.Declaration]struct{}

// Sorted returns the members of s ordered by Declaration.Compare.
func (s Set) Sorted() []code.Declaration {
	return slices.SortedFunc(maps.Keys(s), code.Declaration.Compare)
}

// Tree is the structured catalog: root -> parent -> leaf -> category flag ->
// declarations.
//
// Cells are keyed by category flag, so one cell may hold several
// declarations whose category text was overridden with WithText.
type Tree map[path.Root]map[path.Parent]map[path.Leaf]map[segment.CategoryValue]Set

// TextTree is Tree with every key rendered ("X00(product)", "Y01(system)",
// "Z20(module)", "ErrCode(1000000120)") and every cell reduced to a sorted,
// deduplicated list of messages.
type TextTree map[string]map[string]map[string]map[string][]string

// Tree inserts every unique declaration of s.
func (s Snapshot) Tree() Tree {
	t := make(Tree)
	for _, d := range s.Unique() {
		leaf := d.Path()
		parent := leaf.Parent()
		root := parent.Root()

		parents, ok := t[root]
		if !ok {
			parents = make(map[path.Parent]map[path.Leaf]map[segment.CategoryValue]Set)
			t[root] = parents
		}
		leaves, ok := parents[parent]
		if !ok {
			leaves = make(map[path.Leaf]map[segment.CategoryValue]Set)
			parents[parent] = leaves
		}
		cells, ok := leaves[leaf]
		if !ok {
			cells = make(map[segment.CategoryValue]Set)
			leaves[leaf] = cells
		}
		flag := d.Category().Flag()
		set, ok := cells[flag]
		if !ok {
			set = make(Set)
			cells[flag] = set
		}
		set[d] = struct{}{}
	}
	return t
}

// TextTree renders the tree of s.
func (s Snapshot) TextTree() TextTree {
	return s.Tree().Text()
}

// Text renders t.
func (t Tree) Text() TextTree {
	out := make(TextTree, len(t))
	for root, parents := range t {
		rp := ensure(out, root.Label())
		for parent, leaves := range parents {
			pl := ensure(rp, parent.Label())
			for leaf, cells := range leaves {
				lc := ensure(pl, leaf.Label())
				for _, set := range cells {
					for d := range set {
						b := d.Brief()
						lc[b.Tag()] = append(lc[b.Tag()], b.Message())
					}
				}
			}
		}
	}
	for _, parents := range out {
		for _, leaves := range parents {
			for _, cells := range leaves {
				for tag, msgs := range cells {
					slices.Sort(msgs)
					cells[tag] = slices.Compact(msgs)
				}
			}
		}
	}
	return out
}

// Len returns the number of declarations in t.
func (t Tree) Len() int {
	n := 0
	for _, parents := range t {
		for _, leaves := range parents {
			for _, cells := range leaves {
				for _, set := range cells {
					n += len(set)
				}
			}
		}
	}
	return n
}

func ensure[V any](m map[string]map[string]V, key string) map[string]V {
	v, ok := m[key]
	if !ok {
		v = make(map[string]V)
		m[key] = v
	}
	return v
}

// KV is one entry of the flattened catalog.
type KV[T any] struct {
	Key   string `json:"key" yaml:"key" xml:"key,attr"`
	Value T      `json:"value" yaml:"value" xml:"value"`
}

// Levels of the flattened catalog.
type (
	CodeEntry   = KV[[]string]
	LeafEntry   = KV[[]CodeEntry]
	ParentEntry = KV[[]LeafEntry]
	RootEntry   = KV[[]ParentEntry]
)

// Flatten renders the tree of s as nested key/value lists with keys in
// lexicographic order at every level.
func (s Snapshot) Flatten() []RootEntry {
	return s.TextTree().Flatten()
}

// Flatten converts t into nested key/value lists with sorted keys.
func (t TextTree) Flatten() []RootEntry {
	roots := make([]RootEntry, 0, len(t))
	for _, rk := range slices.Sorted(maps.Keys(t)) {
		parents := t[rk]
		pes := make([]ParentEntry, 0, len(parents))
		for _, pk := range slices.Sorted(maps.Keys(parents)) {
			leaves := parents[pk]
			les := make([]LeafEntry, 0, len(leaves))
			for _, lk := range slices.Sorted(maps.Keys(leaves)) {
				cells := leaves[lk]
				ces := make([]CodeEntry, 0, len(cells))
				for _, ck := range slices.Sorted(maps.Keys(cells)) {
					ces = append(ces, CodeEntry{Key: ck, Value: cells[ck]})
				}
				les = append(les, LeafEntry{Key: lk, Value: ces})
			}
			pes = append(pes, ParentEntry{Key: pk, Value: les})
		}
		roots = append(roots, RootEntry{Key: rk, Value: pes})
	}
	return roots
}
