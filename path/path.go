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

package path

import (
	"cmp"
	"errors"
	"fmt"

	"dirpx.dev/errcode/segment"
)

const (
	// Depth is the fixed number of levels in a path.
	Depth = 3

	// Digits is the number of decimal digits a full path occupies in a code.
	Digits = 2 * Depth

	// MaxFlag is the largest possible Leaf.Flag (99 99 99).
	MaxFlag = 999999

	// base is the positional multiplier for one two-digit level.
	base = 100
)

// ErrInvalidFlag is returned by Split when a flag has more than Digits digits.
var ErrInvalidFlag = errors.New("errcode: invalid path flag")

// Root is the outermost path level.
type Root struct {
	seg  segment.RootValue
	name string
}

// Parent is the middle path level. It owns a copy of its Root.
type Parent struct {
	root Root
	seg  segment.ParentValue
	name string
}

// Leaf is the innermost path level. It owns a copy of its full ancestry.
type Leaf struct {
	parent Parent
	seg    segment.LeafValue
	name   string
}

// NewRoot builds a Root from an already validated segment.
func NewRoot(seg segment.RootValue, name string) Root {
	return Root{seg: seg, name: name}
}

// ParseRoot validates raw and builds a Root.
func ParseRoot(raw int, name string) (Root, error) {
	seg, err := segment.Of[segment.Root](raw)
	if err != nil {
		return Root{}, err
	}
	return NewRoot(seg, name), nil
}

// X is the panic-on-error variant of ParseRoot for package-level declarations.
func X(raw int, name string) Root {
	return NewRoot(segment.Must[segment.Root](raw), name)
}

// Segment returns the root segment.
func (r Root) Segment() segment.RootValue { return r.seg }

// Name returns the free-text label.
func (r Root) Name() string { return r.name }

// Flag returns the root segment as an integer.
func (r Root) Flag() uint32 { return r.seg.Uint() }

// Label renders this level only, e.g. "X00(product)".
func (r Root) Label() string { return label(r.seg.Tagged(), r.name) }

// String renders the full path, which for a Root is its Label.
func (r Root) String() string { return r.Label() }

// Compare orders roots by segment, then by name.
func (r Root) Compare(o Root) int {
	if c := r.seg.Compare(o.seg); c != 0 {
		return c
	}
	return cmp.Compare(r.name, o.name)
}

// Child builds a Parent under r from an already validated segment.
func (r Root) Child(seg segment.ParentValue, name string) Parent {
	return Parent{root: r, seg: seg, name: name}
}

// ChildOf validates raw and builds a Parent under r.
func (r Root) ChildOf(raw int, name string) (Parent, error) {
	seg, err := segment.Of[segment.Parent](raw)
	if err != nil {
		return Parent{}, err
	}
	return r.Child(seg, name), nil
}

// Y is the panic-on-error variant of ChildOf.
func (r Root) Y(raw int, name string) Parent {
	return r.Child(segment.Must[segment.Parent](raw), name)
}

// Root returns the parent's root.
func (p Parent) Root() Root { return p.root }

// Segment returns the parent segment.
func (p Parent) Segment() segment.ParentValue { return p.seg }

// Name returns the free-text label.
func (p Parent) Name() string { return p.name }

// Flag returns root*100 + parent.
func (p Parent) Flag() uint32 { return p.root.Flag()*base + p.seg.Uint() }

// Label renders this level only, e.g. "Y01(system)".
func (p Parent) Label() string { return label(p.seg.Tagged(), p.name) }

// String renders the ancestry, e.g. "X00(product)/Y01(system)".
func (p Parent) String() string { return p.root.String() + "/" + p.Label() }

// Compare orders parents by root first, then by own segment and name.
func (p Parent) Compare(o Parent) int {
	if c := p.root.Compare(o.root); c != 0 {
		return c
	}
	if c := p.seg.Compare(o.seg); c != 0 {
		return c
	}
	return cmp.Compare(p.name, o.name)
}

// Child builds a Leaf under p from an already validated segment.
func (p Parent) Child(seg segment.LeafValue, name string) Leaf {
	return Leaf{parent: p, seg: seg, name: name}
}

// ChildOf validates raw and builds a Leaf under p.
func (p Parent) ChildOf(raw int, name string) (Leaf, error) {
	seg, err := segment.Of[segment.Leaf](raw)
	if err != nil {
		return Leaf{}, err
	}
	return p.Child(seg, name), nil
}

// Z is the panic-on-error variant of ChildOf.
func (p Parent) Z(raw int, name string) Leaf {
	return p.Child(segment.Must[segment.Leaf](raw), name)
}

// Parent returns the leaf's parent.
func (l Leaf) Parent() Parent { return l.parent }

// Root returns the leaf's root.
func (l Leaf) Root() Root { return l.parent.root }

// Segment returns the leaf segment.
func (l Leaf) Segment() segment.LeafValue { return l.seg }

// Name returns the free-text label.
func (l Leaf) Name() string { return l.name }

// Flag returns the positional concatenation root*10000 + parent*100 + leaf.
func (l Leaf) Flag() uint32 { return l.parent.Flag()*base + l.seg.Uint() }

// Segments returns the three segment values from root to leaf.
func (l Leaf) Segments() [Depth]uint32 {
	return [Depth]uint32{l.parent.root.seg.Uint(), l.parent.seg.Uint(), l.seg.Uint()}
}

// Label renders this level only, e.g. "Z20(module)".
func (l Leaf) Label() string { return label(l.seg.Tagged(), l.name) }

// String renders the full ancestry, e.g. "X00(product)/Y01(system)/Z20(module)".
func (l Leaf) String() string { return l.parent.String() + "/" + l.Label() }

// Compare orders leaves by ancestry first, then by own segment and name.
func (l Leaf) Compare(o Leaf) int {
	if c := l.parent.Compare(o.parent); c != 0 {
		return c
	}
	if c := l.seg.Compare(o.seg); c != 0 {
		return c
	}
	return cmp.Compare(l.name, o.name)
}

// Split is the inverse of Leaf.Flag: it recovers the three segment values
// from a path flag.
func Split(flag uint32) (root, parent, leaf uint32, err error) {
	if flag > MaxFlag {
		return 0, 0, 0, fmt.Errorf("%w: %d has more than %d digits", ErrInvalidFlag, flag, Digits)
	}
	return flag / (base * base), flag / base % base, flag % base, nil
}

// FormatFlag renders a path flag as dotted two-digit segments, e.g. "00.01.20".
func FormatFlag(flag uint32) string {
	r, p, l, err := Split(flag)
	if err != nil {
		return fmt.Sprintf("!%d", flag)
	}
	return fmt.Sprintf("%02d.%02d.%02d", r, p, l)
}

func label(tag, name string) string {
	return tag + "(" + name + ")"
}
